package shape

import (
	"github.com/clrdecl/clrdecl/ir"
)

// staticCollisionPass detects names shared between a type's static and
// instance surfaces. The split static/instance naming scopes make the
// overlap legal in output, so this pass is informational only: it
// records the collisions for logging and leaves the graph untouched.
type staticCollisionPass struct{}

func (staticCollisionPass) Name() string { return "static-collision-analysis" }

func (staticCollisionPass) Run(ctx *Context) error {
	ctx.staticCollisions = nil
	ctx.Graph.EachType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		instance := make(map[string]bool)
		static := make(map[string]bool)
		for _, m := range t.Members() {
			if m.MemberKind() == ir.MemberCtor {
				continue
			}
			name := unqualName(m)
			if m.Base().Static {
				static[name] = true
			} else {
				instance[name] = true
			}
		}
		for name := range static {
			if instance[name] {
				ctx.staticCollisions = append(ctx.staticCollisions, StaticCollision{
					TypeKey: t.ID.Key(),
					Name:    name,
				})
				ctx.Log.Debugw("static/instance name overlap",
					"type", t.ID.ClrFullName, "name", name)
			}
		}
	})
	return nil
}
