package shape

import (
	"github.com/clrdecl/clrdecl/ir"
)

// baseOverloadPass keeps TypeScript overload sets complete. TypeScript
// resolves overloads per name, all-or-nothing: a derived class that
// redeclares one overload of a base method family hides the remaining
// base overloads. For every method name a type declares, the pass
// copies down the base-chain overloads of that name the type does not
// itself declare.
type baseOverloadPass struct{}

func (baseOverloadPass) Name() string { return "base-overload-addition" }

func (baseOverloadPass) Run(ctx *Context) error {
	g := ctx.Graph
	g.EachType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		if t.Kind != ir.KindClass {
			return
		}

		declared := make(map[string]bool) // method names this type declares
		have := make(map[string]bool)     // full slot keys present
		for _, m := range t.Methods {
			if !ir.QualifiedMemberName(m.ClrName) {
				declared[m.ClrName] = true
			}
			have[slotKey(m)] = true
		}
		if len(declared) == 0 {
			return
		}

		for base := resolveBase(g, t); base != nil; base = resolveBase(g, base) {
			for _, bm := range base.Methods {
				if !declared[bm.ClrName] || ir.QualifiedMemberName(bm.ClrName) {
					continue
				}
				key := slotKey(bm)
				if have[key] {
					continue
				}
				have[key] = true

				clone := reID(bm, t.ID, bm.ClrName).(*ir.Method)
				clone.Provenance = ir.ProvBaseOverload
				clone.Note = "overload pulled down from " + base.ID.ClrFullName
				t.Methods = append(t.Methods, clone)
			}
		}
	})
	return nil
}

func resolveBase(g *ir.SymbolGraph, t *ir.TypeSymbol) *ir.TypeSymbol {
	if t.BaseType == nil {
		return nil
	}
	return g.ResolveRef(*t.BaseType)
}
