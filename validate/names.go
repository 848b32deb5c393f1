package validate

import (
	"github.com/clrdecl/clrdecl/ir"
	"github.com/clrdecl/clrdecl/namer"
)

// checkNameCompleteness proves every emitted entity carries a final
// name that the naming engine resolved in exactly the scope its
// placement implies. A decision found only in the wrong scope family is
// its own error; the lookup must fail cleanly, never fall through to
// another scope's answer.
func checkNameCompleteness(c *Context) {
	c.eachEmittedType(func(ns *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		typeKey := t.ID.Key()

		if t.TsEmitName == "" {
			c.Errorf(CodeTypeNameMissing, typeKey, "",
				"type %s has no final name", t.ID.ClrFullName)
		} else {
			scope := namer.NamespaceScope(ns.Name, t.Visibility != ir.Public)
			if !c.Renamer.HasDecision(typeKey, scope.Key()) {
				c.Errorf(CodeTypeNameMissing, typeKey, "",
					"type %s has no naming decision in namespace scope %s",
					t.ID.ClrFullName, scope.Key())
			}
		}

		for _, m := range t.Members() {
			checkMemberName(c, t, m)
		}
	})
}

func checkMemberName(c *Context, t *ir.TypeSymbol, m ir.Member) {
	b := m.Base()
	typeKey := t.ID.Key()
	memberKey := b.ID.Key()

	var want namer.Scope
	switch b.EmitScope {
	case ir.ScopeClassSurface, ir.ScopeStaticSurface:
		want = namer.SurfaceScope(t.ID)
	case ir.ScopeViewOnly:
		if b.SourceInterface == nil {
			return // finalization sweep reports this
		}
		want = namer.ViewScope(t.ID, b.SourceInterface.TypeID())
	default:
		return
	}

	if b.TsEmitName == "" {
		c.Errorf(CodeMemberNameMissing, typeKey, memberKey,
			"member %s has no final name", b.ClrName)
		return
	}
	if c.Renamer.HasDecision(memberKey, want.EffectiveKey(b.Static)) {
		return
	}
	if len(c.Renamer.DecisionsFor(memberKey)) > 0 {
		c.Errorf(CodeNameWrongScope, typeKey, memberKey,
			"member %s placed %s was named only outside scope %s",
			b.ClrName, b.EmitScope, want.EffectiveKey(b.Static))
		return
	}
	c.Errorf(CodeMemberNameMissing, typeKey, memberKey,
		"member %s has a final name but no recorded naming decision", b.ClrName)
}

// checkNameUniqueness re-proves collision avoidance from the graph
// side: no two emitted entities share a final name within one effective
// scope. This is defense in depth against a reservation bug; the
// naming engine already enforces it internally.
func checkNameUniqueness(c *Context) {
	owners := make(map[string]map[string]string)

	claim := func(effKey, name, stableKey, typeKey string) {
		scope, ok := owners[effKey]
		if !ok {
			scope = make(map[string]string)
			owners[effKey] = scope
		}
		if prev, taken := scope[name]; taken && prev != stableKey {
			code := CodeDuplicateName
			if len(effKey) > 3 && effKey[:3] == "ns:" {
				code = CodeDuplicateTypeName
			}
			c.Errorf(code, typeKey, stableKey,
				"final name %q in scope %s is claimed by both %s and %s",
				name, effKey, prev, stableKey)
			return
		}
		scope[name] = stableKey
	}

	c.eachEmittedType(func(ns *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		typeKey := t.ID.Key()
		if t.TsEmitName != "" {
			scope := namer.NamespaceScope(ns.Name, t.Visibility != ir.Public)
			claim(scope.Key(), t.TsEmitName, typeKey, typeKey)
		}

		surface := namer.SurfaceScope(t.ID)
		for _, m := range t.Members() {
			b := m.Base()
			if b.TsEmitName == "" {
				continue
			}
			switch b.EmitScope {
			case ir.ScopeClassSurface, ir.ScopeStaticSurface:
				claim(surface.EffectiveKey(b.Static), b.TsEmitName, b.ID.Key(), typeKey)
			case ir.ScopeViewOnly:
				if b.SourceInterface == nil {
					continue
				}
				view := namer.ViewScope(t.ID, b.SourceInterface.TypeID())
				claim(view.EffectiveKey(b.Static), b.TsEmitName, b.ID.Key(), typeKey)
			}
		}

		// View property names live on the instance surface alongside
		// ordinary members.
		for _, v := range t.ExplicitViews {
			if v.PropertyName != "" {
				claim(surface.EffectiveKey(false), v.PropertyName, "view:"+v.Key(), typeKey)
			}
		}
	})
}

// checkReservedWords proves no emitted identifier is a bare TypeScript
// reserved word and every identifier is syntactically valid. Sanitized
// forms carry the trailing disambiguator and pass both checks.
func checkReservedWords(c *Context) {
	ident := func(name, typeKey, memberKey, what string) {
		if name == "" {
			return
		}
		if namer.IsReservedWord(name) {
			c.Errorf(CodeBareReservedWord, typeKey, memberKey,
				"%s %q is a bare reserved word with no sanitization marker", what, name)
		}
		if !namer.ValidIdentifier(name) {
			c.Errorf(CodeInvalidIdentifier, typeKey, memberKey,
				"%s %q is not a valid identifier", what, name)
		}
	}

	c.eachEmittedType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		typeKey := t.ID.Key()
		ident(t.TsEmitName, typeKey, "", "type name")
		for _, m := range t.Members() {
			b := m.Base()
			if b.EmitScope == ir.ScopeOmitted {
				continue
			}
			ident(b.TsEmitName, typeKey, b.ID.Key(), "member name")
		}
		for _, v := range t.ExplicitViews {
			ident(v.PropertyName, typeKey, "", "view property name")
		}
	})
}
