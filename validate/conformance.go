package validate

import "github.com/clrdecl/clrdecl/ir"

// checkConformance proves that every interface a type claims without an
// explicit view is actually satisfied by its class surface. Missing
// members and incompatible method signatures are warnings; a property
// whose type merely differs is downgraded to INFO because structural
// typing tolerates the covariant read in practice, a documented
// unsoundness inherited from the CLR side.
func checkConformance(c *Context) {
	c.eachEmittedType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		switch t.Kind {
		case ir.KindClass, ir.KindStruct, ir.KindStaticClass:
		default:
			return
		}

		viewed := make(map[string]bool)
		for _, v := range t.ExplicitViews {
			viewed[v.Source.TypeID().Key()] = true
		}

		for _, ifaceRef := range t.Interfaces {
			if viewed[ifaceRef.TypeID().Key()] {
				continue
			}
			iface := c.Graph.ResolveRef(ifaceRef)
			if iface == nil {
				continue // foreign interface, import completeness covers the ref
			}
			checkInterfaceSatisfied(c, t, iface)
		}
	})
}

func checkInterfaceSatisfied(c *Context, t, iface *ir.TypeSymbol) {
	typeKey := t.ID.Key()

	surface := surfaceMembers(t)
	for _, req := range iface.Members() {
		rb := req.Base()
		if req.MemberKind() == ir.MemberCtor || rb.EmitScope == ir.ScopeOmitted {
			continue
		}
		name := ir.UnqualifyMemberName(rb.ClrName)

		candidates := surface[name]
		if len(candidates) == 0 {
			c.Warnf(CodeConformanceMissing, typeKey, rb.ID.Key(),
				"interface %s requires %s which the class surface does not provide",
				iface.ID.ShortName(), name)
			continue
		}

		switch want := req.(type) {
		case *ir.Method:
			checkMethodSatisfied(c, t, iface, want, candidates)
		case *ir.Property:
			checkPropertySatisfied(c, t, iface, want, candidates)
		}
	}
}

func checkMethodSatisfied(c *Context, t, iface *ir.TypeSymbol, want *ir.Method, candidates []ir.Member) {
	var sameParams *ir.Method
	for _, m := range candidates {
		got, ok := m.(*ir.Method)
		if !ok || got.Static != want.Static {
			continue
		}
		if got.ErasedParams() == want.ErasedParams() {
			sameParams = got
			break
		}
	}
	switch {
	case sameParams == nil:
		c.Warnf(CodeConformanceMismatch, t.ID.Key(), want.ID.Key(),
			"no surface overload of %s matches interface %s signature %s",
			ir.UnqualifyMemberName(want.ClrName), iface.ID.ShortName(), want.Signature())
	case !sameParams.ReturnType.Equal(want.ReturnType):
		c.Warnf(CodeConformanceMismatch, t.ID.Key(), want.ID.Key(),
			"surface method %s returns %s where interface %s requires %s",
			sameParams.TsEmitName, sameParams.ReturnType.Erased(),
			iface.ID.ShortName(), want.ReturnType.Erased())
	}
}

func checkPropertySatisfied(c *Context, t, iface *ir.TypeSymbol, want *ir.Property, candidates []ir.Member) {
	for _, m := range candidates {
		got, ok := m.(*ir.Property)
		if !ok || got.Static != want.Static {
			continue
		}
		if !got.Type.Equal(want.Type) {
			c.Infof(CodePropertyCovariant, t.ID.Key(), want.ID.Key(),
				"property %s type %s differs from interface %s declaration %s",
				got.TsEmitName, got.Type.Erased(), iface.ID.ShortName(), want.Type.Erased())
		}
		return
	}
	c.Warnf(CodeConformanceMissing, t.ID.Key(), want.ID.Key(),
		"interface %s requires property %s on the %s side",
		iface.ID.ShortName(), ir.UnqualifyMemberName(want.ClrName), sideName(want.Static))
}

func sideName(static bool) string {
	if static {
		return "static"
	}
	return "instance"
}

// surfaceMembers indexes a type's surfaced members by unqualified name.
func surfaceMembers(t *ir.TypeSymbol) map[string][]ir.Member {
	out := make(map[string][]ir.Member)
	for _, m := range t.Members() {
		b := m.Base()
		if b.EmitScope != ir.ScopeClassSurface && b.EmitScope != ir.ScopeStaticSurface {
			continue
		}
		name := ir.UnqualifyMemberName(b.ClrName)
		out[name] = append(out[name], m)
	}
	return out
}
