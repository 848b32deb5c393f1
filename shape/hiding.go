package shape

import (
	"github.com/clrdecl/clrdecl/ir"
	"github.com/clrdecl/clrdecl/namer"
)

// hiddenMemberPass handles CLR `new`-style member hiding. A member that
// intentionally hides a base member of the same name gets its surface
// name reserved now, ahead of the general name-reservation phase, so
// the hiding member's claim on the clean name is deterministic rather
// than dependent on reservation ordering.
type hiddenMemberPass struct{}

func (hiddenMemberPass) Name() string { return "hidden-member-planning" }

func (hiddenMemberPass) Run(ctx *Context) error {
	var firstErr error
	ctx.Graph.EachType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		if firstErr != nil {
			return
		}
		scope := namer.SurfaceScope(t.ID)
		for _, m := range t.Members() {
			b := m.Base()
			if !isHiding(m) || ir.QualifiedMemberName(b.ClrName) {
				continue
			}
			clean := ctx.Renamer.StyledMemberName(b.ClrName)
			final, err := ctx.Renamer.ReserveMemberName(
				b.ID, b.ClrName, scope,
				"pre-reserved: hides base member "+b.ClrName,
				b.Static, "shape/hidden-member")
			if err != nil {
				firstErr = err
				return
			}
			if final != clean && b.Provenance == ir.ProvOriginal {
				// The clean name was already claimed; the member keeps
				// its disambiguated reservation.
				b.Provenance = ir.ProvHidingResolved
			}
			if b.Note == "" {
				b.Note = "hides base member"
			}
		}
	})
	return firstErr
}

func isHiding(m ir.Member) bool {
	switch v := m.(type) {
	case *ir.Method:
		return v.Hiding
	case *ir.Property:
		return v.Hiding
	default:
		return false
	}
}
