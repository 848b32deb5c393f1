package namer

import (
	"github.com/cockroachdb/errors"

	"github.com/clrdecl/clrdecl/ir"
)

// AssignOptions configures the name-assignment walk.
type AssignOptions struct {
	// IncludeInternal also names internal types; otherwise only the
	// public surface is assigned.
	IncludeInternal bool
}

// Assign is the name-reservation phase: it walks the shaped graph in
// deterministic order, reserves every identifier that will reach
// output through the Renamer, and freezes the results into TsEmitName
// and view property names. After Assign returns, no name in the graph
// changes again.
func Assign(g *ir.SymbolGraph, r *Renamer, opts AssignOptions) error {
	for _, ns := range g.Namespaces {
		for _, t := range ns.Types {
			if err := assignType(ns, t, r, opts); err != nil {
				return err
			}
		}
	}
	return nil
}

// Emittable reports whether a type participates in output under the
// given options.
func Emittable(t *ir.TypeSymbol, includeInternal bool) bool {
	switch t.Visibility {
	case ir.Public:
		return true
	case ir.Internal, ir.Protected:
		return includeInternal
	default:
		return false
	}
}

func assignType(ns *ir.NamespaceSymbol, t *ir.TypeSymbol, r *Renamer, opts AssignOptions) error {
	if !Emittable(t, opts.IncludeInternal) {
		return nil
	}

	scope := NamespaceScope(ns.Name, t.Visibility != ir.Public)
	requested := typeRequestedName(t)
	final, err := r.ReserveTypeName(t.ID, requested, scope, "type declaration", "namer/assign")
	if err != nil {
		return errors.Wrapf(err, "naming type %s", t.ID.ClrFullName)
	}
	t.TsEmitName = final

	if err := assignMembers(t, r); err != nil {
		return err
	}
	if err := assignViews(t, r); err != nil {
		return err
	}

	for _, nested := range t.Nested {
		if err := assignType(ns, nested, r, opts); err != nil {
			return err
		}
	}
	return nil
}

// typeRequestedName flattens nesting markers and strips generic arity
// from the CLR name ("Outer+Inner`1" -> "Outer_Inner").
func typeRequestedName(t *ir.TypeSymbol) string {
	return t.ID.ShortNestedName()
}

func assignMembers(t *ir.TypeSymbol, r *Renamer) error {
	surface := SurfaceScope(t.ID)
	for _, m := range t.Members() {
		b := m.Base()
		var (
			final string
			err   error
		)
		switch b.EmitScope {
		case ir.ScopeClassSurface, ir.ScopeStaticSurface:
			final, err = r.ReserveMemberName(b.ID, requestedMemberName(m), surface,
				"class-surface member", b.Static, "namer/assign")
		case ir.ScopeViewOnly:
			if b.SourceInterface == nil {
				// Structurally invalid; the validation gate reports it.
				continue
			}
			view := ViewScope(t.ID, b.SourceInterface.TypeID())
			final, err = r.ReserveMemberName(b.ID, requestedMemberName(m), view,
				"view member for "+b.SourceInterface.ShortName(), b.Static, "namer/assign")
		default:
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "naming member %s", b.ID.Key())
		}
		b.TsEmitName = final
	}
	return nil
}

// requestedMemberName maps a member to its requested identifier.
// Constructors use the fixed "ctor" base; everything else requests its
// CLR name (qualified names keep their prefix so collision handling
// can prefer the interface suffix).
func requestedMemberName(m ir.Member) string {
	if m.MemberKind() == ir.MemberCtor {
		return "ctor"
	}
	return m.Base().ClrName
}

// assignViews names each explicit view's surface property
// ("asIDisposable"). The property lives on the instance surface, so it
// is reserved in the class-surface instance scope alongside ordinary
// members.
func assignViews(t *ir.TypeSymbol, r *Renamer) error {
	surface := SurfaceScope(t.ID)
	for _, v := range t.ExplicitViews {
		id := ir.MemberStableID{
			Assembly:      t.ID.Assembly,
			DeclaringType: t.ID.ClrFullName,
			Name:          "view:" + v.Source.TypeID().Key(),
		}
		final, err := r.ReserveExactMemberName(id, "as"+v.Source.ShortName(), surface,
			"explicit view property for "+v.Source.ShortName(), false, "namer/assign")
		if err != nil {
			return errors.Wrapf(err, "naming view %s", v.Key())
		}
		v.PropertyName = final
	}
	return nil
}
