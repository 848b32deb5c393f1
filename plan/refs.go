package plan

import "github.com/clrdecl/clrdecl/ir"

// RefSite locates one type reference inside an emitted declaration.
type RefSite struct {
	Namespace string
	Type      ir.TypeStableID

	// Member is the referencing member's stable key, empty for
	// type-level references (base, interface list, constraints).
	Member string

	// Where names the syntactic position ("base", "interface",
	// "constraint", "param", "return", "field", "event", "index").
	Where string

	Ref ir.TypeRef
}

// collector walks the references of emitted declarations, splitting
// them into cross-namespace import edges and escapes from the emitted
// set.
type collector struct {
	emitted  map[string]emittedType
	external []RefSite
}

func (c *collector) collectType(ns string, t *ir.TypeSymbol, imports map[string]map[string]bool) {
	if t.BaseType != nil {
		c.record(ns, t.ID, "", "base", *t.BaseType, imports)
	}
	for _, iface := range t.Interfaces {
		c.record(ns, t.ID, "", "interface", iface, imports)
	}
	c.collectGenericParams(ns, t.ID, "", t.GenericParams, imports)

	for _, m := range t.Members() {
		b := m.Base()
		if b.EmitScope == ir.ScopeOmitted || b.EmitScope == ir.ScopeUnspecified {
			continue
		}
		c.collectMember(ns, t.ID, m, imports)
	}
}

func (c *collector) collectMember(ns string, owner ir.TypeStableID, m ir.Member, imports map[string]map[string]bool) {
	key := m.Base().ID.Key()
	switch mm := m.(type) {
	case *ir.Method:
		for _, p := range mm.Params {
			c.record(ns, owner, key, "param", p.Type, imports)
		}
		c.record(ns, owner, key, "return", mm.ReturnType, imports)
		c.collectGenericParams(ns, owner, key, mm.GenericParams, imports)
	case *ir.Property:
		c.record(ns, owner, key, "return", mm.Type, imports)
		for _, p := range mm.IndexParams {
			c.record(ns, owner, key, "index", p.Type, imports)
		}
	case *ir.Field:
		c.record(ns, owner, key, "field", mm.Type, imports)
	case *ir.Event:
		c.record(ns, owner, key, "event", mm.HandlerType, imports)
	case *ir.Ctor:
		for _, p := range mm.Params {
			c.record(ns, owner, key, "param", p.Type, imports)
		}
	}
}

func (c *collector) collectGenericParams(ns string, owner ir.TypeStableID, member string, params []ir.GenericParam, imports map[string]map[string]bool) {
	for i := range params {
		for _, ref := range params[i].Resolved {
			c.record(ns, owner, member, "constraint", ref, imports)
		}
	}
}

// record registers every named type mentioned anywhere inside ref:
// targets emitted in a sibling namespace become import edges, targets
// outside the emitted set become external escapes. Generic parameters,
// cycle sentinels, and unrepresentable kinds carry no dependency here;
// the printer checks cover the latter.
func (c *collector) record(ns string, owner ir.TypeStableID, member, where string, ref ir.TypeRef, imports map[string]map[string]bool) {
	switch ref.Kind {
	case ir.RefNamed:
		target, ok := c.emitted[ref.TypeID().Key()]
		switch {
		case !ok:
			c.external = append(c.external, RefSite{
				Namespace: ns, Type: owner, Member: member, Where: where, Ref: ref.Clone(),
			})
		case target.namespace != ns:
			if imports[target.namespace] == nil {
				imports[target.namespace] = make(map[string]bool)
			}
			imports[target.namespace][target.emitName] = true
		}
		for _, arg := range ref.TypeArgs {
			c.record(ns, owner, member, where, arg, imports)
		}
	case ir.RefArray, ir.RefPointer:
		if ref.Elem != nil {
			c.record(ns, owner, member, where, *ref.Elem, imports)
		}
	}
}
