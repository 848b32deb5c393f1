package shape

import (
	"sort"

	"github.com/clrdecl/clrdecl/ir"
)

// returnConflictPass places the method families surface dedup deferred:
// overloads whose parameter lists are identical after erasure but whose
// return types differ. TypeScript cannot express such a pair as one
// overload set, so one overload keeps the surface and the rest are
// demoted to their contributing interface's view with a disambiguating
// note.
type returnConflictPass struct{}

func (returnConflictPass) Name() string { return "return-conflict-resolution" }

func (returnConflictPass) Run(ctx *Context) error {
	ctx.Graph.EachType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		groups := make(map[string][]*ir.Method)
		var order []string
		for _, m := range t.Methods {
			if m.EmitScope != ir.ScopeUnspecified {
				continue
			}
			key := paramSlotKey(m)
			if _, seen := groups[key]; !seen {
				order = append(order, key)
			}
			groups[key] = append(groups[key], m)
		}

		for _, key := range order {
			group := groups[key]
			if len(distinctReturns(group)) < 2 {
				// Deferred by a sibling's conflict or simply unplaced;
				// everything here can take the surface.
				for _, m := range group {
					assignSurface(m)
				}
				continue
			}

			// Originally declared overloads outrank contributed ones;
			// declaration order breaks remaining ties.
			sort.SliceStable(group, func(i, j int) bool {
				return provenancePreference(group[i].Provenance) < provenancePreference(group[j].Provenance)
			})
			winner := group[0]
			assignSurface(winner)
			for _, m := range group[1:] {
				if m.Provenance == ir.ProvOriginal {
					m.Provenance = ir.ProvOverloadDemoted
				}
				demoteToView(m, "return type conflicts with surface overload "+winner.Signature())
				ctx.Log.Debugw("return-type conflict demoted",
					"type", t.ID.ClrFullName,
					"method", unqualName(m),
					"kept", winner.Signature(),
					"demoted", m.Signature())
			}
		}
	})
	return nil
}

// paramSlotKey groups method overloads by erased parameter list,
// ignoring return type.
func paramSlotKey(m *ir.Method) string {
	side := "i"
	if m.Static {
		side = "s"
	}
	return ir.UnqualifyMemberName(m.ClrName) + "#" + m.ErasedParams() + "#" + side
}

// returnConflictSlots identifies the param-slot keys of unplaced method
// families with more than one distinct return type.
func returnConflictSlots(t *ir.TypeSymbol) map[string]bool {
	returns := make(map[string]map[string]bool)
	for _, m := range t.Methods {
		if m.EmitScope != ir.ScopeUnspecified {
			continue
		}
		key := paramSlotKey(m)
		if returns[key] == nil {
			returns[key] = make(map[string]bool)
		}
		returns[key][m.ReturnType.Erased()] = true
	}
	conflicts := make(map[string]bool)
	for key, rets := range returns {
		if len(rets) > 1 {
			conflicts[key] = true
		}
	}
	return conflicts
}

func distinctReturns(group []*ir.Method) map[string]bool {
	rets := make(map[string]bool)
	for _, m := range group {
		rets[m.ReturnType.Erased()] = true
	}
	return rets
}
