package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clrdecl/clrdecl/ir"
	"github.com/clrdecl/clrdecl/namer"
	"github.com/clrdecl/clrdecl/plan"
	"github.com/clrdecl/clrdecl/shape"
)

func testClass(fullName string, ifaces ...ir.TypeRef) *ir.TypeSymbol {
	return &ir.TypeSymbol{
		ID:         ir.TypeStableID{Assembly: "Lib", ClrFullName: fullName},
		ClrName:    fullName,
		Kind:       ir.KindClass,
		Visibility: ir.Public,
		Interfaces: ifaces,
	}
}

func testInterface(fullName string) *ir.TypeSymbol {
	t := testClass(fullName)
	t.Kind = ir.KindInterface
	return t
}

func withMethod(t *ir.TypeSymbol, name string) *ir.TypeSymbol {
	ret := ir.NamedRef("System.Runtime", "System.Void")
	t.Methods = append(t.Methods, &ir.Method{
		MemberBase: ir.MemberBase{
			ID: ir.MemberStableID{
				Assembly:      "Lib",
				DeclaringType: t.ID.ClrFullName,
				Name:          name,
				Signature:     ir.MethodSignature(nil, ret.Erased()),
			},
			ClrName: name,
		},
		ReturnType: ret,
	})
	return t
}

// runPipeline shapes, names, and plans a raw graph so the gate sees the
// same state it would in production.
func runPipeline(t *testing.T, types ...*ir.TypeSymbol) (*ir.SymbolGraph, *namer.Renamer, *plan.Plan) {
	t.Helper()
	g := &ir.SymbolGraph{Namespaces: []*ir.NamespaceSymbol{{Name: "My.Ns", Types: types}}}
	g.Sort()

	rn := namer.New(namer.Options{MemberTransform: namer.TransformCamel})
	shaped, err := shape.NewEngine(nil).Run(g, rn)
	require.NoError(t, err)
	require.NoError(t, namer.Assign(shaped, rn, namer.AssignOptions{}))

	p, err := plan.Build(shaped, plan.Options{})
	require.NoError(t, err)
	return shaped, rn, p
}

func TestCleanGraphPasses(t *testing.T) {
	baz := withMethod(testInterface("My.Ns.IBaz"), "Qux")
	foo := withMethod(testClass("My.Ns.Foo", ir.NamedRef("Lib", "My.Ns.IBaz")), "Bar")

	g, rn, p := runPipeline(t, foo, baz)
	report := Run(g, rn, p, Options{})

	assert.Zero(t, report.Errors, "diagnostics: %v", report.Diagnostics)
	assert.Zero(t, report.Warnings)
	assert.False(t, report.Blocked())
}

func TestViewOnlyWithoutSourceBlocks(t *testing.T) {
	foo := withMethod(testClass("My.Ns.Foo"), "Bar")
	g, rn, p := runPipeline(t, foo)

	// Corrupt the placement after naming: a view-only member with no
	// source interface is a state no pass sequence can produce.
	bar := g.Namespaces[0].Types[0].Methods[0]
	bar.EmitScope = ir.ScopeViewOnly
	bar.SourceInterface = nil

	report := Run(g, rn, p, Options{})
	assert.True(t, report.Blocked())
	assert.Positive(t, report.ByCode[CodeViewOnlyNoSource])
	assert.Positive(t, report.ByCode[CodeViewOnlyOrphan])
}

func TestOmittedWithoutReasonBlocks(t *testing.T) {
	foo := withMethod(testClass("My.Ns.Foo"), "Bar")
	g, rn, p := runPipeline(t, foo)

	bar := g.Namespaces[0].Types[0].Methods[0]
	bar.EmitScope = ir.ScopeOmitted
	bar.OmitReason = ""

	report := Run(g, rn, p, Options{})
	assert.True(t, report.Blocked())
	assert.Positive(t, report.ByCode[CodeOmittedNoReason])
}

func TestCtorConstraintSeverityFollowsPolicy(t *testing.T) {
	maker := withMethod(testClass("My.Ns.Maker`1"), "Make")
	maker.GenericParams = []ir.GenericParam{{Name: "T", DefaultCtorConstraint: true}}

	g, rn, p := runPipeline(t, maker)

	strict := Run(g, rn, p, Options{})
	assert.True(t, strict.Blocked())
	assert.Equal(t, 1, strict.ByCode[CodeCtorConstraintLoss])

	lenient := Run(g, rn, p, Options{AllowConstructorConstraintLoss: true})
	assert.False(t, lenient.Blocked())
	assert.Equal(t, 1, lenient.ByCode[CodeCtorConstraintLoss])
	assert.Equal(t, 1, lenient.Warnings)
}

func TestConstraintCycleReportedAsInfo(t *testing.T) {
	node := withMethod(testClass("My.Ns.Node`1"), "Touch")
	node.GenericParams = []ir.GenericParam{{
		Name: "T",
		RawConstraints: []ir.TypeRef{
			ir.NamedRef("System.Runtime", "System.IComparable`1", ir.ParamRef("T")),
		},
	}}

	g, rn, p := runPipeline(t, node)
	report := Run(g, rn, p, Options{})

	assert.False(t, report.Blocked())
	assert.Positive(t, report.ByCode[CodeConstraintCycle])
	assert.Positive(t, report.Infos)
}

func TestReportGroupsConformanceFindings(t *testing.T) {
	report := (&Context{diags: []Diagnostic{
		{Code: CodePropertyCovariant, Severity: Info, Type: "Lib|My.Ns.B"},
		{Code: CodePropertyCovariant, Severity: Info, Type: "Lib|My.Ns.A"},
		{Code: CodeDuplicateName, Severity: Error, Type: "Lib|My.Ns.A"},
	}}).buildReport()

	assert.Equal(t, 1, report.Errors)
	assert.Equal(t, 2, report.Infos)
	assert.Equal(t, []string{"Lib|My.Ns.A", "Lib|My.Ns.B"}, report.ConformanceTypes)
	assert.Len(t, report.ConformanceByType["Lib|My.Ns.A"], 1)
}
