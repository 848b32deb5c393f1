package validate

import "github.com/clrdecl/clrdecl/ir"

// checkConstraints audits generic parameters after the closure pass.
// Constructor constraints have no TypeScript equivalent; losing one is
// an ERROR unless the policy explicitly accepts the loss, in which case
// it is reported as a WARNING instead. This is the only family whose
// severity is policy-configurable.
func checkConstraints(c *Context) {
	sev := Error
	if c.Opts.AllowConstructorConstraintLoss {
		sev = Warning
	}

	c.eachEmittedType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		auditParams(c, sev, t.ID.Key(), "", t.GenericParams)
		for _, m := range t.Methods {
			if m.EmitScope == ir.ScopeOmitted {
				continue
			}
			auditParams(c, sev, t.ID.Key(), m.ID.Key(), m.GenericParams)
		}
	})
}

func auditParams(c *Context, ctorSev Severity, typeKey, memberKey string, params []ir.GenericParam) {
	for i := range params {
		p := &params[i]
		if p.DefaultCtorConstraint {
			c.Severityf(ctorSev, CodeCtorConstraintLoss, typeKey, memberKey,
				"generic parameter %s requires new() which the output cannot express", p.Name)
		}
		if !p.ConstraintsResolved {
			c.Errorf(CodeUnresolvedConstraints, typeKey, memberKey,
				"generic parameter %s reached validation with unresolved constraints", p.Name)
			continue
		}
		for _, ref := range p.Resolved {
			if containsCycleBreak(ref) {
				c.Infof(CodeConstraintCycle, typeKey, memberKey,
					"constraint on %s was cycle-broken at %s", p.Name, ref.Erased())
			}
		}
	}
}

func containsCycleBreak(ref ir.TypeRef) bool {
	if ref.Kind == ir.RefCycleBreak {
		return true
	}
	if ref.Elem != nil && containsCycleBreak(*ref.Elem) {
		return true
	}
	for _, a := range ref.TypeArgs {
		if containsCycleBreak(a) {
			return true
		}
	}
	return false
}
