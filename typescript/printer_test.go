package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clrdecl/clrdecl/ir"
)

func printerGraph() *ir.SymbolGraph {
	g := &ir.SymbolGraph{Namespaces: []*ir.NamespaceSymbol{{
		Name: "Acme",
		Types: []*ir.TypeSymbol{
			{
				ID:         ir.TypeStableID{Assembly: "Acme", ClrFullName: "Acme.Widget"},
				ClrName:    "Acme.Widget",
				Kind:       ir.KindClass,
				Visibility: ir.Public,
				TsEmitName: "Widget",
			},
			{
				ID:         ir.TypeStableID{Assembly: "Acme", ClrFullName: "Acme.Node`1"},
				ClrName:    "Acme.Node`1",
				Kind:       ir.KindClass,
				Visibility: ir.Public,
				TsEmitName: "Node",
			},
		},
	}}}
	g.Sort()
	return g
}

func sys(name string, args ...ir.TypeRef) ir.TypeRef {
	return ir.NamedRef("System.Runtime", name, args...)
}

func TestPrinterRef(t *testing.T) {
	p := &printer{graph: printerGraph()}

	str := sys("System.String")
	tests := []struct {
		name string
		ref  ir.TypeRef
		want string
	}{
		{"builtin string", str, "string"},
		{"builtin int64", sys("System.Int64"), "bigint"},
		{"emitted type", ir.NamedRef("Acme", "Acme.Widget"), "Widget"},
		{"unknown foreign", sys("ThirdParty.Thing"), "unknown"},
		{"generic param", ir.ParamRef("T"), "T"},
		{"cycle sentinel", ir.TypeRef{Kind: ir.RefCycleBreak, FullName: "$T"}, "T"},
		{"pointer", ir.TypeRef{Kind: ir.RefPointer}, "never"},
		{"fnptr", ir.TypeRef{Kind: ir.RefFunctionPtr}, "never"},
		{"array", ir.ArrayRef(str, 1), "string[]"},
		{"matrix", ir.ArrayRef(str, 2), "string[][]"},
		{"nullable", sys("System.Nullable`1", sys("System.Int32")), "number | null"},
		{"nullable array parenthesized",
			ir.ArrayRef(sys("System.Nullable`1", sys("System.Int32")), 1),
			"(number | null)[]"},
		{"key value pair",
			sys("System.Collections.Generic.KeyValuePair`2", str, sys("System.Int32")),
			"[string, number]"},
		{"bare task", sys("System.Threading.Tasks.Task"), "Promise<void>"},
		{"task of", sys("System.Threading.Tasks.Task`1", str), "Promise<string>"},
		{"list", sys("System.Collections.Generic.List`1", ir.NamedRef("Acme", "Acme.Widget")), "Array<Widget>"},
		{"dictionary",
			sys("System.Collections.Generic.Dictionary`2", str, ir.ParamRef("V")),
			"Map<string, V>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ref(tt.ref))
		})
	}
}

func TestPrinterParams(t *testing.T) {
	p := &printer{graph: printerGraph()}

	params := []ir.Param{
		{Name: "count", Type: sys("System.Int32")},
		{Name: "", Type: sys("System.String")},
		{Name: "tag", Type: sys("System.String"), Optional: true},
	}
	assert.Equal(t, "count: number, arg1: string, tag?: string", p.params(params))
	assert.Equal(t, "", p.params(nil))
}

func TestPrinterTypeParams(t *testing.T) {
	p := &printer{graph: printerGraph()}

	assert.Equal(t, "", p.typeParams(nil))

	params := []ir.GenericParam{
		{Name: "T", Resolved: []ir.TypeRef{ir.NamedRef("Acme", "Acme.Widget")}, ConstraintsResolved: true},
		{Name: "U", ConstraintsResolved: true},
	}
	assert.Equal(t, "<T extends Widget, U>", p.typeParams(params))

	// A cycle-broken constraint argument prints as the bare parameter.
	cyclic := []ir.GenericParam{{
		Name: "T",
		Resolved: []ir.TypeRef{
			ir.NamedRef("Acme", "Acme.Node`1", ir.TypeRef{Kind: ir.RefCycleBreak, FullName: "$T"}),
		},
		ConstraintsResolved: true,
	}}
	assert.Equal(t, "<T extends Node<T>>", p.typeParams(cyclic))
}
