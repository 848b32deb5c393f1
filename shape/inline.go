package shape

import (
	"github.com/clrdecl/clrdecl/ir"
)

// inlineInterfacesPass flattens every interface's member set to include
// all transitively inherited members directly. TypeScript consumers
// then never depend on multi-level extends resolution; an interface
// carries its full surface.
//
// Runs after conformance analysis (which needed the unflattened
// hierarchy) and before deduplication.
type inlineInterfacesPass struct{}

func (inlineInterfacesPass) Name() string { return "interface-inlining" }

func (inlineInterfacesPass) Run(ctx *Context) error {
	ctx.Graph.EachType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		if !t.IsInterface() {
			return
		}

		// Local members by slot; inherited members matching a local
		// slot are skipped.
		local := make(map[string]bool)
		for _, m := range t.Members() {
			local[slotKey(m)] = true
		}

		for _, parentRef := range interfaceClosureOf(ctx, t) {
			for _, inherited := range declaredMembersOf(ctx, parentRef) {
				if inherited.MemberKind() == ir.MemberCtor {
					continue
				}
				key := slotKey(inherited)
				if local[key] {
					continue
				}
				local[key] = true

				clone := reID(inherited, t.ID, unqualName(inherited))
				b := clone.Base()
				b.Provenance = ir.ProvInterfaceCopied
				src := parentRef.Clone()
				b.SourceInterface = &src
				appendMember(t, clone)
			}
		}
	})
	return nil
}
