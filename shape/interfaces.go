package shape

import (
	"github.com/cockroachdb/errors"

	"github.com/clrdecl/clrdecl/ir"
)

// interfaceIndexPass builds the two auxiliary interface indices the
// later passes consume: a global transitive-inheritance closure per
// interface, and a per-interface declared-members-only snapshot.
//
// Must run first: flattening destroys the distinction between "declared
// on this interface" and "inherited into this interface", and both
// conformance analysis and diamond resolution need the original
// hierarchy.
type interfaceIndexPass struct{}

func (interfaceIndexPass) Name() string { return "interface-index" }

func (interfaceIndexPass) Run(ctx *Context) error {
	ctx.ifaceClosure = make(map[string][]ir.TypeRef)
	ctx.declared = make(map[string][]ir.Member)

	g := ctx.Graph
	g.EachType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		if !t.IsInterface() {
			return
		}
		members := t.Members()
		snapshot := make([]ir.Member, len(members))
		for i, m := range members {
			snapshot[i] = m.CloneMember()
		}
		ctx.declared[t.ID.Key()] = snapshot
	})

	// Closure construction walks the declared extends lists; a broken
	// reference to a missing local interface is a malformed graph.
	var buildClosure func(t *ir.TypeSymbol, seen map[string]bool) ([]ir.TypeRef, error)
	buildClosure = func(t *ir.TypeSymbol, seen map[string]bool) ([]ir.TypeRef, error) {
		key := t.ID.Key()
		if cached, ok := ctx.ifaceClosure[key]; ok {
			return cached, nil
		}
		if seen[key] {
			return nil, errors.AssertionFailedf("interface inheritance cycle at %s", t.ID.ClrFullName)
		}
		seen[key] = true
		defer delete(seen, key)

		var closure []ir.TypeRef
		appended := make(map[string]bool)
		add := func(ref ir.TypeRef) {
			k := ref.TypeID().Key()
			if !appended[k] {
				appended[k] = true
				closure = append(closure, ref)
			}
		}
		for _, ref := range t.Interfaces {
			add(ref)
			parent := g.ResolveRef(ref)
			if parent == nil {
				// Foreign assembly interface; closure stops at the
				// reference.
				continue
			}
			inherited, err := buildClosure(parent, seen)
			if err != nil {
				return nil, err
			}
			for _, ref := range inherited {
				add(ref)
			}
		}
		ctx.ifaceClosure[key] = closure
		return closure, nil
	}

	var firstErr error
	g.EachType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		if firstErr != nil || !t.IsInterface() {
			return
		}
		if _, err := buildClosure(t, make(map[string]bool)); err != nil {
			firstErr = err
		}
	})
	return firstErr
}

// interfaceClosureOf returns the transitive interface set a type
// implements, in declaration order: each directly declared interface
// followed by its inherited interfaces.
func interfaceClosureOf(ctx *Context, t *ir.TypeSymbol) []ir.TypeRef {
	var out []ir.TypeRef
	appended := make(map[string]bool)
	add := func(ref ir.TypeRef) {
		k := ref.TypeID().Key()
		if !appended[k] {
			appended[k] = true
			out = append(out, ref)
		}
	}
	for _, ref := range t.Interfaces {
		add(ref)
		for _, inherited := range ctx.ifaceClosure[ref.TypeID().Key()] {
			add(inherited)
		}
	}
	return out
}

// declaredMembersOf returns the snapshot of an interface's declared
// members, nil for foreign interfaces.
func declaredMembersOf(ctx *Context, ref ir.TypeRef) []ir.Member {
	return ctx.declared[ref.TypeID().Key()]
}
