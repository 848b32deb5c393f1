package validate

import (
	"github.com/clrdecl/clrdecl/ir"
	"github.com/clrdecl/clrdecl/typescript"
)

// checkImports proves the plan's import/export graph is complete:
// every cross-namespace reference in an emitted signature has an import
// edge, every import edge names a real export, and no emitted surface
// leaks a type the run does not emit. References that escape to
// well-known BCL types must have a builtin lowering; an escape with no
// lowering degrades to `unknown` at print time and is flagged.
func checkImports(c *Context) {
	emitted := make(map[string]string) // type key -> namespace
	c.eachEmittedType(func(ns *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		emitted[t.ID.Key()] = ns.Name
	})

	importedNames := make(map[string]map[string]bool) // from ns -> "to/name"
	for _, np := range c.Plan.Namespaces {
		names := make(map[string]bool)
		for _, imp := range np.Imports {
			exports := exportSet(c.Plan.Exports[imp.To])
			for _, name := range imp.Names {
				names[imp.To+"/"+name] = true
				if !exports[name] {
					c.Errorf(CodeUnknownExport, "", "",
						"namespace %s imports %q which %s does not export",
						imp.From, name, imp.To)
				}
			}
		}
		importedNames[np.Name] = names
	}

	c.eachEmittedType(func(ns *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		eachSignatureRef(t, func(memberKey string, ref ir.TypeRef) {
			if ref.Kind != ir.RefNamed {
				return
			}
			targetNS, ok := emitted[ref.TypeID().Key()]
			if !ok || targetNS == ns.Name {
				return
			}
			target := c.Graph.FindType(ref.TypeID())
			if target == nil || target.TsEmitName == "" {
				return
			}
			if !importedNames[ns.Name][targetNS+"/"+target.TsEmitName] {
				c.Errorf(CodeMissingImport, t.ID.Key(), memberKey,
					"signature references %s.%s without an import edge",
					targetNS, target.TsEmitName)
			}
		})
	})

	for _, site := range c.Plan.External {
		key := site.Ref.TypeID().Key()
		if c.Graph.FindType(site.Ref.TypeID()) != nil {
			c.Errorf(CodeNonPublicLeak, site.Type.Key(), site.Member,
				"emitted %s surface references %s, which this run does not emit",
				site.Where, key)
			continue
		}
		if _, ok := typescript.BuiltinType(site.Ref.FullName); !ok {
			c.Warnf(CodeUnmappedExternal, site.Type.Key(), site.Member,
				"foreign type %s has no builtin lowering; it prints as unknown",
				site.Ref.FullName)
		}
	}
}

func exportSet(names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = true
	}
	return out
}

// eachSignatureRef visits every type reference that reaches an emitted
// signature of t: base and interface lists, resolved constraints, and
// the types of every non-omitted member. Nested arguments and array
// elements are visited too.
func eachSignatureRef(t *ir.TypeSymbol, fn func(memberKey string, ref ir.TypeRef)) {
	walk := func(memberKey string, ref ir.TypeRef) {
		walkRef(memberKey, ref, fn)
	}

	if t.BaseType != nil {
		walk("", *t.BaseType)
	}
	for _, iface := range t.Interfaces {
		walk("", iface)
	}
	for i := range t.GenericParams {
		for _, ref := range t.GenericParams[i].Resolved {
			walk("", ref)
		}
	}

	for _, m := range t.Members() {
		b := m.Base()
		if b.EmitScope == ir.ScopeOmitted || b.EmitScope == ir.ScopeUnspecified {
			continue
		}
		key := b.ID.Key()
		switch mm := m.(type) {
		case *ir.Method:
			for _, p := range mm.Params {
				walk(key, p.Type)
			}
			walk(key, mm.ReturnType)
			for i := range mm.GenericParams {
				for _, ref := range mm.GenericParams[i].Resolved {
					walk(key, ref)
				}
			}
		case *ir.Property:
			walk(key, mm.Type)
			for _, p := range mm.IndexParams {
				walk(key, p.Type)
			}
		case *ir.Field:
			walk(key, mm.Type)
		case *ir.Event:
			walk(key, mm.HandlerType)
		case *ir.Ctor:
			for _, p := range mm.Params {
				walk(key, p.Type)
			}
		}
	}
}

func walkRef(memberKey string, ref ir.TypeRef, fn func(string, ir.TypeRef)) {
	fn(memberKey, ref)
	if ref.Elem != nil {
		walkRef(memberKey, *ref.Elem, fn)
	}
	for _, a := range ref.TypeArgs {
		walkRef(memberKey, a, fn)
	}
}
