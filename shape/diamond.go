package shape

import (
	"sort"

	"github.com/clrdecl/clrdecl/ir"
)

// diamondPass resolves diamond inheritance: when a member reaches a
// type through more than one interface path (two declared interfaces
// sharing a common ancestor), multiple view candidates for the same
// slot exist. Exactly one canonical origin survives.
//
// Tie-break contract: the candidate whose source interface appears
// first in the type's declared interface order wins; remaining ties
// fall back to interface full-name order. This ordering is part of the
// tool's determinism guarantee and is covered by tests.
type diamondPass struct{}

func (diamondPass) Name() string { return "diamond-resolution" }

func (diamondPass) Run(ctx *Context) error {
	ctx.Graph.EachType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		if t.IsInterface() {
			return
		}

		rank := declarationRanks(ctx, t)
		groups := make(map[string][]ir.Member)
		var order []string
		for _, m := range t.Members() {
			b := m.Base()
			if b.EmitScope != ir.ScopeViewOnly || b.SourceInterface == nil {
				continue
			}
			key := slotKey(m)
			if _, seen := groups[key]; !seen {
				order = append(order, key)
			}
			groups[key] = append(groups[key], m)
		}

		drop := make(map[string]bool)
		for _, key := range order {
			group := groups[key]
			if len(group) < 2 {
				continue
			}
			sort.SliceStable(group, func(i, j int) bool {
				ri, rj := sourceRank(rank, group[i]), sourceRank(rank, group[j])
				if ri != rj {
					return ri < rj
				}
				return group[i].Base().SourceInterface.FullName < group[j].Base().SourceInterface.FullName
			})
			winner := group[0]
			wb := winner.Base()
			if wb.Provenance == ir.ProvViewSynthesized || wb.Provenance == ir.ProvInterfaceCopied {
				wb.Provenance = ir.ProvDiamondResolved
			}
			wb.Note = "diamond: canonical origin " + wb.SourceInterface.ShortName()
			for _, loser := range group[1:] {
				drop[loser.Base().ID.Key()] = true
			}
			ctx.Log.Debugw("diamond resolved",
				"type", t.ID.ClrFullName,
				"member", unqualName(winner),
				"origin", wb.SourceInterface.FullName,
				"dropped", len(group)-1)
		}
		removeMembers(t, drop)
	})
	return nil
}

// declarationRanks maps interface type keys to their position in the
// type's declaration-order transitive closure.
func declarationRanks(ctx *Context, t *ir.TypeSymbol) map[string]int {
	ranks := make(map[string]int)
	for i, ref := range interfaceClosureOf(ctx, t) {
		ranks[ref.TypeID().Key()] = i
	}
	return ranks
}

func sourceRank(ranks map[string]int, m ir.Member) int {
	src := m.Base().SourceInterface
	if src == nil {
		return int(^uint(0) >> 1)
	}
	if r, ok := ranks[src.TypeID().Key()]; ok {
		return r
	}
	return int(^uint(0) >> 1)
}
