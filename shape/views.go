package shape

import (
	"github.com/clrdecl/clrdecl/ir"
)

// viewPlanPass finalizes the explicit views of every type: one view per
// interface that contributed at least one ViewOnly member. The at-
// least-one-member and at-most-one-view-per-interface invariants hold
// by construction here; the validation gate re-proves them.
//
// A ViewOnly member missing its source interface is a structurally
// impossible state this pass cannot place; it is left outside every
// view for the finalization sweep to report.
type viewPlanPass struct{}

func (viewPlanPass) Name() string { return "view-planning" }

func (viewPlanPass) Run(ctx *Context) error {
	ctx.Graph.EachType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		t.ExplicitViews = nil

		views := make(map[string]*ir.ExplicitView)
		var order []string
		claimed := make(map[string]bool)

		for _, m := range t.Members() {
			b := m.Base()
			if b.EmitScope != ir.ScopeViewOnly || b.SourceInterface == nil {
				continue
			}
			memberKey := b.ID.Key()
			if claimed[memberKey] {
				continue
			}
			claimed[memberKey] = true

			srcKey := b.SourceInterface.TypeID().Key()
			v, ok := views[srcKey]
			if !ok {
				v = &ir.ExplicitView{
					Owner:  t.ID,
					Source: b.SourceInterface.Clone(),
				}
				views[srcKey] = v
				order = append(order, srcKey)
			}
			v.Members = append(v.Members, b.ID)
		}

		for _, key := range order {
			t.ExplicitViews = append(t.ExplicitViews, views[key])
		}
		if len(order) > 0 {
			ctx.Log.Debugw("views planned",
				"type", t.ID.ClrFullName, "views", len(order))
		}
	})
	return nil
}
