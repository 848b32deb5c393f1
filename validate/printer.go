package validate

import (
	"github.com/clrdecl/clrdecl/ir"
	"github.com/clrdecl/clrdecl/namer"
)

// checkPrinter cross-checks what emission will print against the naming
// engine's stored decisions, and proves no unrepresentable construct
// survived shaping into a final signature. The printer itself never
// decides names; a disagreement here means a pass wrote TsEmitName
// outside the reservation path.
func checkPrinter(c *Context) {
	c.eachEmittedType(func(ns *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		typeKey := t.ID.Key()

		if t.TsEmitName != "" {
			scope := namer.NamespaceScope(ns.Name, t.Visibility != ir.Public)
			if final, err := c.Renamer.GetFinalTypeName(t.ID, scope); err == nil && final != t.TsEmitName {
				c.Errorf(CodeNamerDisagreement, typeKey, "",
					"type prints as %q but the naming decision says %q", t.TsEmitName, final)
			}
		}

		for _, m := range t.Members() {
			checkMemberAgreement(c, t, m)
		}

		for _, v := range t.ExplicitViews {
			id := ir.MemberStableID{
				Assembly:      t.ID.Assembly,
				DeclaringType: t.ID.ClrFullName,
				Name:          "view:" + v.Source.TypeID().Key(),
			}
			final, err := c.Renamer.GetFinalMemberName(id, namer.SurfaceScope(t.ID), false)
			if err == nil && final != v.PropertyName {
				c.Errorf(CodeNamerDisagreement, typeKey, "",
					"view %s prints property %q but the naming decision says %q",
					v.Key(), v.PropertyName, final)
			}
		}

		eachSignatureRef(t, func(memberKey string, ref ir.TypeRef) {
			if ref.Kind == ir.RefPointer || ref.Kind == ir.RefFunctionPtr {
				c.Errorf(CodeUnrepresentable, typeKey, memberKey,
					"%s reference survived into an emitted signature", ref.Kind)
			}
		})
	})
}

func checkMemberAgreement(c *Context, t *ir.TypeSymbol, m ir.Member) {
	b := m.Base()
	if b.TsEmitName == "" {
		return
	}

	var scope namer.Scope
	switch b.EmitScope {
	case ir.ScopeClassSurface, ir.ScopeStaticSurface:
		scope = namer.SurfaceScope(t.ID)
	case ir.ScopeViewOnly:
		if b.SourceInterface == nil {
			return
		}
		scope = namer.ViewScope(t.ID, b.SourceInterface.TypeID())
	default:
		return
	}

	final, err := c.Renamer.GetFinalMemberName(b.ID, scope, b.Static)
	if err != nil {
		return // name completeness reports the missing decision
	}
	if final != b.TsEmitName {
		c.Errorf(CodeNamerDisagreement, t.ID.Key(), b.ID.Key(),
			"member prints as %q but the naming decision says %q", b.TsEmitName, final)
	}
}
