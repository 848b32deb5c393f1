package shape

import (
	"strings"

	"github.com/clrdecl/clrdecl/ir"
)

// conformancePass determines, for every concrete type and every
// interface it implements, whether the existing class surface
// structurally satisfies that interface. Where it does not — signature
// mismatch, missing member, or a member whose only form is an
// explicit-interface qualified name — the pass produces a ViewOnly
// candidate tagged with its source interface.
//
// Must run before interface inlining: it walks the original,
// unflattened hierarchy to attribute each requirement to the interface
// that declared it.
type conformancePass struct{}

func (conformancePass) Name() string { return "structural-conformance" }

func (conformancePass) Run(ctx *Context) error {
	ctx.Graph.EachType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		if t.Kind != ir.KindClass && t.Kind != ir.KindStruct && t.Kind != ir.KindStaticClass {
			return
		}
		for _, ifaceRef := range interfaceClosureOf(ctx, t) {
			required := declaredMembersOf(ctx, ifaceRef)
			if len(required) == 0 {
				continue
			}
			for _, key := range unsatisfiedMembers(ctx, t, ifaceRef, required) {
				r := findRequired(required, key)
				if r == nil {
					continue
				}
				src := ifaceRef.Clone()
				if existing := explicitImplOf(t, ifaceRef, r); existing != nil {
					b := existing.Base()
					if b.SetScope(ir.ScopeViewOnly) {
						b.SourceInterface = &src
						b.Provenance = ir.ProvExplicitImpl
					}
					continue
				}
				synthesizeViewMember(t, ifaceRef, r)
			}
		}
	})
	return nil
}

// unsatisfiedMembers returns the stable keys of required interface
// members the type's surface does not structurally satisfy. Results
// are memoized per (type, interface); the cache is bounded and safe to
// evict because entries are recomputable.
func unsatisfiedMembers(ctx *Context, t *ir.TypeSymbol, iface ir.TypeRef, required []ir.Member) []string {
	cacheKey := t.ID.Key() + "|" + iface.TypeID().Key()
	if cached, ok := ctx.conformance.Get(cacheKey); ok {
		return cached
	}

	surface := t.Members()
	var missing []string
	for _, r := range required {
		if r.MemberKind() == ir.MemberCtor {
			continue
		}
		satisfied := false
		for _, m := range surface {
			if ir.QualifiedMemberName(m.Base().ClrName) {
				// Explicit-interface form never satisfies the surface.
				continue
			}
			if m.Base().Static != r.Base().Static {
				continue
			}
			if matches(m, r) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			missing = append(missing, r.Base().ID.Key())
		}
	}
	ctx.conformance.Add(cacheKey, missing)
	return missing
}

func findRequired(required []ir.Member, key string) ir.Member {
	for _, r := range required {
		if r.Base().ID.Key() == key {
			return r
		}
	}
	return nil
}

// explicitImplOf finds an existing explicit-interface-style member of t
// implementing required for the given interface, nil if none exists.
func explicitImplOf(t *ir.TypeSymbol, iface ir.TypeRef, required ir.Member) ir.Member {
	want := unqualName(required)
	sig := memberSignature(required)
	for _, m := range t.Members() {
		name := m.Base().ClrName
		if !ir.QualifiedMemberName(name) || unqualName(m) != want {
			continue
		}
		if m.MemberKind() != required.MemberKind() || memberSignature(m) != sig {
			continue
		}
		prefix := strings.TrimSuffix(name, "."+want)
		if prefix == arityFree(iface.FullName) || prefix == iface.ShortName() {
			return m
		}
	}
	return nil
}

// synthesizeViewMember clones the required interface member onto t as a
// ViewOnly candidate with an interface-qualified name.
func synthesizeViewMember(t *ir.TypeSymbol, iface ir.TypeRef, required ir.Member) {
	qualified := arityFree(iface.FullName) + "." + unqualName(required)
	clone := reID(required, t.ID, qualified)
	b := clone.Base()
	b.Provenance = ir.ProvViewSynthesized
	b.EmitScope = ir.ScopeViewOnly
	src := iface.Clone()
	b.SourceInterface = &src
	appendMember(t, clone)
}

// arityFree strips the generic arity marker from a CLR full name.
func arityFree(fullName string) string {
	if i := strings.IndexByte(fullName, '`'); i >= 0 {
		return fullName[:i]
	}
	return fullName
}
