package typescript

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clrdecl/clrdecl/ir"
	"github.com/clrdecl/clrdecl/namer"
	"github.com/clrdecl/clrdecl/plan"
	"github.com/clrdecl/clrdecl/provider"
	"github.com/clrdecl/clrdecl/shape"
	"github.com/clrdecl/clrdecl/typescript/sink"
)

func emitterGraph() *ir.SymbolGraph {
	voidRef := ir.NamedRef("System.Runtime", "System.Void")
	stringRef := ir.NamedRef("System.Runtime", "System.String")

	disposable := &ir.TypeSymbol{
		ID:         ir.TypeStableID{Assembly: "Acme", ClrFullName: "Acme.IDisposable"},
		ClrName:    "Acme.IDisposable",
		Kind:       ir.KindInterface,
		Visibility: ir.Public,
		Methods: []*ir.Method{{
			MemberBase: ir.MemberBase{
				ID: ir.MemberStableID{
					Assembly: "Acme", DeclaringType: "Acme.IDisposable",
					Name: "Dispose", Signature: ir.MethodSignature(nil, voidRef.Erased()),
				},
				ClrName: "Dispose",
			},
			ReturnType: voidRef,
		}},
	}

	widgetRef := ir.NamedRef("Acme", "Acme.Widget")
	widget := &ir.TypeSymbol{
		ID:         ir.TypeStableID{Assembly: "Acme", ClrFullName: "Acme.Widget"},
		ClrName:    "Acme.Widget",
		Kind:       ir.KindClass,
		Visibility: ir.Public,
		Interfaces: []ir.TypeRef{ir.NamedRef("Acme", "Acme.IDisposable")},
		Methods: []*ir.Method{{
			MemberBase: ir.MemberBase{
				ID: ir.MemberStableID{
					Assembly: "Acme", DeclaringType: "Acme.Widget",
					Name: "Create", Signature: ir.MethodSignature([]string{"System.String"}, "Acme.Widget"),
				},
				ClrName: "Create",
				Static:  true,
			},
			Params:     []ir.Param{{Name: "label", Type: stringRef, Optional: true}},
			ReturnType: widgetRef,
		}},
		Properties: []*ir.Property{{
			MemberBase: ir.MemberBase{
				ID: ir.MemberStableID{
					Assembly: "Acme", DeclaringType: "Acme.Widget", Name: "Name",
				},
				ClrName: "Name",
			},
			Type:      stringRef,
			HasGetter: true,
		}},
		Ctors: []*ir.Ctor{{
			MemberBase: ir.MemberBase{
				ID: ir.MemberStableID{
					Assembly: "Acme", DeclaringType: "Acme.Widget",
					Name: ".ctor", Signature: ir.CtorSignature(nil),
				},
				ClrName: ".ctor",
			},
		}},
	}

	color := &ir.TypeSymbol{
		ID:          ir.TypeStableID{Assembly: "Acme", ClrFullName: "Acme.Color"},
		ClrName:     "Acme.Color",
		Kind:        ir.KindEnum,
		Visibility:  ir.Public,
		EnumMembers: []ir.EnumMember{{Name: "Red", Value: 0}, {Name: "Green", Value: 1}},
	}

	g := &ir.SymbolGraph{Namespaces: []*ir.NamespaceSymbol{
		{Name: "Acme", Types: []*ir.TypeSymbol{widget, disposable, color}},
	}}
	g.Sort()
	return g
}

func emitAll(t *testing.T, format string) *sink.MemorySink {
	t.Helper()
	rn := namer.New(namer.Options{MemberTransform: namer.TransformCamel})
	shaped, err := shape.NewEngine(nil).Run(emitterGraph(), rn)
	require.NoError(t, err)
	require.NoError(t, namer.Assign(shaped, rn, namer.AssignOptions{}))
	p, err := plan.Build(shaped, plan.Options{})
	require.NoError(t, err)

	out := sink.NewMemorySink()
	manifest := &provider.Manifest{
		FormatVersion: "1.1.0",
		Assemblies:    []provider.AssemblyInfo{{Name: "Acme", Version: "1.0.0"}},
	}
	err = Emit(context.Background(), shaped, p, rn, manifest, out, EmitOptions{
		RunID:         "test-run",
		SidecarFormat: format,
	})
	require.NoError(t, err)
	return out
}

func TestEmitWritesFullOutputSet(t *testing.T) {
	out := emitAll(t, "json")
	files := out.Files()
	require.Len(t, files, 3)
	assert.Contains(t, files, "Acme.d.ts")
	assert.Contains(t, files, "index.d.ts")
	assert.Contains(t, files, "clrdecl.meta.json")
}

func TestEmitNamespaceFile(t *testing.T) {
	out := emitAll(t, "json")

	want := `// Code generated by clrdecl. DO NOT EDIT.

export declare enum Color {
    Red = 0,
    Green = 1,
}

export interface IDisposable {
    dispose(): void;
}

export declare class Widget implements IDisposable {
    constructor();
    static create(label?: string): Widget;
    readonly name: string;
    readonly asIDisposable: {
        dispose(): void;
    };
}
`
	assert.Equal(t, want, string(out.Get("Acme.d.ts")))
}

func TestEmitBarrel(t *testing.T) {
	out := emitAll(t, "json")
	assert.Equal(t,
		"// Code generated by clrdecl. DO NOT EDIT.\n\nexport * from \"./Acme\";\n",
		string(out.Get("index.d.ts")))
}

func TestEmitSidecarJSON(t *testing.T) {
	out := emitAll(t, "json")

	var sc Sidecar
	require.NoError(t, json.Unmarshal(out.Get("clrdecl.meta.json"), &sc))

	assert.Equal(t, "test-run", sc.RunID)
	assert.Equal(t, "1.1.0", sc.FormatVersion)
	require.Len(t, sc.Assemblies, 1)

	var bound []string
	for _, b := range sc.Bindings {
		bound = append(bound, b.TsName)
	}
	assert.ElementsMatch(t, []string{"Color", "IDisposable", "Widget"}, bound)

	require.Len(t, sc.Views, 1)
	assert.Equal(t, "asIDisposable", sc.Views[0].Property)
	require.Len(t, sc.Views[0].Members, 1)

	assert.NotEmpty(t, sc.Renames, "every reservation lands in the audit trail")
}

func TestEmitSidecarYAML(t *testing.T) {
	out := emitAll(t, "yaml")
	files := out.Files()
	assert.Contains(t, files, "clrdecl.meta.yaml")
	assert.NotContains(t, files, "clrdecl.meta.json")
	assert.Contains(t, string(out.Get("clrdecl.meta.yaml")), "runId: test-run")
}
