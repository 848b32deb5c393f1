package shape

import (
	"github.com/clrdecl/clrdecl/ir"
)

// surfaceDedupPass assigns class-surface placements. After flattening
// and synthesis, several members can legitimately claim the same slot
// (an interface-inlined member and an original member with the same
// erased signature). Exactly one winner survives per slot — preference
// order: originally declared, then interface-inlined, then synthesized
// — and every loser is demoted to a view rather than dropped.
//
// Method families whose overloads conflict only on return type are left
// unplaced here; the return-conflict pass owns that decision.
type surfaceDedupPass struct{}

func (surfaceDedupPass) Name() string { return "class-surface-dedup" }

func (surfaceDedupPass) Run(ctx *Context) error {
	ctx.Graph.EachType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		deferred := returnConflictSlots(t)

		groups := make(map[string][]ir.Member)
		var order []string
		for _, m := range t.Members() {
			b := m.Base()
			if b.EmitScope != ir.ScopeUnspecified {
				continue
			}
			if mm, ok := m.(*ir.Method); ok && deferred[paramSlotKey(mm)] {
				continue
			}
			key := slotKey(m)
			if _, seen := groups[key]; !seen {
				order = append(order, key)
			}
			groups[key] = append(groups[key], m)
		}

		for _, key := range order {
			group := groups[key]
			winner := pickWinner(group)
			assignSurface(winner)
			for _, m := range group {
				if m != winner {
					demoteToView(m, "lost class-surface slot to "+winner.Base().ID.Key())
				}
			}
		}
	})
	return nil
}

// provenancePreference orders slot candidates: lower wins.
func provenancePreference(p ir.Provenance) int {
	switch p {
	case ir.ProvOriginal:
		return 0
	case ir.ProvInterfaceCopied:
		return 1
	default:
		return 2
	}
}

func pickWinner(group []ir.Member) ir.Member {
	winner := group[0]
	best := provenancePreference(winner.Base().Provenance)
	for _, m := range group[1:] {
		if p := provenancePreference(m.Base().Provenance); p < best {
			winner, best = m, p
		}
	}
	return winner
}

// assignSurface gives a winner its surface placement.
func assignSurface(m ir.Member) {
	if m.Base().Static {
		m.Base().SetScope(ir.ScopeStaticSurface)
	} else {
		m.Base().SetScope(ir.ScopeClassSurface)
	}
}

// demoteToView moves a slot loser into its source interface's view. A
// loser with no contributing interface cannot be a view member, so it
// is omitted with a tracked reason instead — never silently dropped.
func demoteToView(m ir.Member, note string) {
	b := m.Base()
	if b.SourceInterface != nil {
		b.SetScope(ir.ScopeViewOnly)
		if b.Note == "" {
			b.Note = note
		}
		return
	}
	b.SetScope(ir.ScopeOmitted)
	b.OmitReason = "duplicate class-surface member with no contributing interface"
	if b.Note == "" {
		b.Note = note
	}
}

// memberDedupPass is the final safety sweep: any byte-identical stable
// ID duplicates introduced by earlier passes' side effects are removed,
// keeping the first occurrence.
type memberDedupPass struct{}

func (memberDedupPass) Name() string { return "member-dedup" }

func (memberDedupPass) Run(ctx *Context) error {
	ctx.Graph.EachType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		seen := make(map[string]bool)
		duplicate := false
		for _, m := range t.Members() {
			key := m.Base().ID.Key()
			if seen[key] {
				duplicate = true
				break
			}
			seen[key] = true
		}
		if duplicate {
			// Duplicates are removed positionally (first occurrence
			// wins); removeMembers would drop the kept copy too.
			dedupeInPlace(t)
			ctx.Log.Debugw("duplicate members removed", "type", t.ID.ClrFullName)
		}
	})
	return nil
}

// dedupeInPlace removes positional duplicates, keeping first
// occurrences, within each kind-specific collection.
func dedupeInPlace(t *ir.TypeSymbol) {
	seen := make(map[string]bool)

	methods := t.Methods[:0]
	for _, m := range t.Methods {
		if !seen[m.ID.Key()] {
			seen[m.ID.Key()] = true
			methods = append(methods, m)
		}
	}
	t.Methods = methods

	props := t.Properties[:0]
	for _, p := range t.Properties {
		if !seen[p.ID.Key()] {
			seen[p.ID.Key()] = true
			props = append(props, p)
		}
	}
	t.Properties = props

	fields := t.Fields[:0]
	for _, f := range t.Fields {
		if !seen[f.ID.Key()] {
			seen[f.ID.Key()] = true
			fields = append(fields, f)
		}
	}
	t.Fields = fields

	events := t.Events[:0]
	for _, e := range t.Events {
		if !seen[e.ID.Key()] {
			seen[e.ID.Key()] = true
			events = append(events, e)
		}
	}
	t.Events = events

	ctors := t.Ctors[:0]
	for _, c := range t.Ctors {
		if !seen[c.ID.Key()] {
			seen[c.ID.Key()] = true
			ctors = append(ctors, c)
		}
	}
	t.Ctors = ctors
}
