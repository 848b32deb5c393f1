package validate

import "github.com/clrdecl/clrdecl/ir"

// checkFinalization is the broadest family: it proves the shape engine
// actually finished. Every member has a placement, every ViewOnly
// member has exactly one source interface and belongs to exactly one
// view, no view claims a member twice, and every omission carries a
// recorded reason. Violations here are pipeline bugs, never input
// conditions, so everything in this family is an ERROR.
func checkFinalization(c *Context) {
	c.eachEmittedType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		typeKey := t.ID.Key()

		claims := make(map[string]int)
		for _, v := range t.ExplicitViews {
			for _, id := range v.Members {
				claims[id.Key()]++
			}
		}

		members := make(map[string]ir.Member)
		for _, m := range t.Members() {
			b := m.Base()
			memberKey := b.ID.Key()
			members[memberKey] = m

			switch b.EmitScope {
			case ir.ScopeUnspecified:
				c.Errorf(CodeUnspecifiedScope, typeKey, memberKey,
					"member %s reached validation without a placement", b.ClrName)
			case ir.ScopeViewOnly:
				if b.SourceInterface == nil {
					c.Errorf(CodeViewOnlyNoSource, typeKey, memberKey,
						"view-only member %s has no source interface", b.ClrName)
				}
				switch claims[memberKey] {
				case 0:
					c.Errorf(CodeViewOnlyOrphan, typeKey, memberKey,
						"view-only member %s belongs to no explicit view", b.ClrName)
				case 1:
				default:
					c.Errorf(CodeDuplicateViewMember, typeKey, memberKey,
						"member %s is claimed by %d explicit views", b.ClrName, claims[memberKey])
				}
			case ir.ScopeOmitted:
				if b.OmitReason == "" {
					c.Errorf(CodeOmittedNoReason, typeKey, memberKey,
						"omitted member %s carries no omission reason", b.ClrName)
				}
			}
		}

		for _, v := range t.ExplicitViews {
			for _, id := range v.Members {
				m, ok := members[id.Key()]
				if !ok {
					c.Errorf(CodeViewMemberMissing, typeKey, id.Key(),
						"view %s references a member the type does not have", v.Key())
					continue
				}
				if m.Base().EmitScope != ir.ScopeViewOnly {
					c.Errorf(CodeViewMemberMissing, typeKey, id.Key(),
						"view %s claims member %s whose placement is %s",
						v.Key(), m.Base().ClrName, m.Base().EmitScope)
				}
			}
		}
	})
}
