package validate

import (
	"strings"

	"github.com/clrdecl/clrdecl/ir"
)

// checkScopes proves each member's placement and the scope its name was
// actually reserved under agree, and that no stable ID carries both a
// class-surface and a view placement at once.
func checkScopes(c *Context) {
	c.eachEmittedType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		typeKey := t.ID.Key()
		roles := make(map[string]ir.EmitScope)

		for _, m := range t.Members() {
			b := m.Base()
			memberKey := b.ID.Key()

			switch b.EmitScope {
			case ir.ScopeClassSurface, ir.ScopeStaticSurface, ir.ScopeViewOnly:
				if prev, ok := roles[memberKey]; ok && surfaceRole(prev) != surfaceRole(b.EmitScope) {
					c.Errorf(CodeDualRole, typeKey, memberKey,
						"member %s carries both %s and %s placements", b.ClrName, prev, b.EmitScope)
				}
				roles[memberKey] = b.EmitScope
			default:
				continue
			}

			checkDecisionScope(c, t, m)
		}
	})
}

// surfaceRole collapses the two surface placements; dual-role exclusion
// distinguishes only surface from view.
func surfaceRole(s ir.EmitScope) bool {
	return s == ir.ScopeClassSurface || s == ir.ScopeStaticSurface
}

// checkDecisionScope finds the decision that produced the member's
// final name and verifies its recorded scope key belongs to the family
// the placement implies.
func checkDecisionScope(c *Context, t *ir.TypeSymbol, m ir.Member) {
	b := m.Base()
	if b.TsEmitName == "" {
		return // name completeness reports this
	}
	typeKey := t.ID.Key()
	memberKey := b.ID.Key()

	wantPrefix := "type:"
	if b.EmitScope == ir.ScopeViewOnly {
		wantPrefix = "view:"
	}

	for _, d := range c.Renamer.DecisionsFor(memberKey) {
		if d.Final != b.TsEmitName {
			continue
		}
		if d.ScopeKey == "" {
			c.Errorf(CodeEmptyScopeKey, typeKey, memberKey,
				"naming decision for %s records an empty scope key", b.ClrName)
			return
		}
		if !strings.HasPrefix(d.ScopeKey, wantPrefix) {
			c.Errorf(CodeScopeMismatch, typeKey, memberKey,
				"member %s placed %s but named under scope %s", b.ClrName, b.EmitScope, d.ScopeKey)
		}
		return
	}
}
