package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clrdecl/clrdecl/ir"
	"github.com/clrdecl/clrdecl/namer"
)

const testAssembly = "Lib"

func voidRef() ir.TypeRef   { return ir.NamedRef("System.Runtime", "System.Void") }
func int32Ref() ir.TypeRef  { return ir.NamedRef("System.Runtime", "System.Int32") }
func stringRef() ir.TypeRef { return ir.NamedRef("System.Runtime", "System.String") }

func localRef(fullName string) ir.TypeRef { return ir.NamedRef(testAssembly, fullName) }

func newType(kind ir.TypeKind, fullName string, ifaces ...ir.TypeRef) *ir.TypeSymbol {
	return &ir.TypeSymbol{
		ID:         ir.TypeStableID{Assembly: testAssembly, ClrFullName: fullName},
		ClrName:    fullName,
		Kind:       kind,
		Visibility: ir.Public,
		Interfaces: ifaces,
	}
}

func addMethod(t *ir.TypeSymbol, name string, ret ir.TypeRef, params ...ir.Param) *ir.Method {
	m := &ir.Method{
		MemberBase: ir.MemberBase{
			ID: ir.MemberStableID{
				Assembly:      testAssembly,
				DeclaringType: t.ID.ClrFullName,
				Name:          name,
				Signature:     ir.MethodSignature(ir.ParamTypeNames(params), ret.Erased()),
			},
			ClrName: name,
		},
		Params:     params,
		ReturnType: ret,
	}
	t.Methods = append(t.Methods, m)
	return m
}

func addCtor(t *ir.TypeSymbol, params ...ir.Param) *ir.Ctor {
	c := &ir.Ctor{
		MemberBase: ir.MemberBase{
			ID: ir.MemberStableID{
				Assembly:      testAssembly,
				DeclaringType: t.ID.ClrFullName,
				Name:          ".ctor",
				Signature:     ir.CtorSignature(ir.ParamTypeNames(params)),
			},
			ClrName: ".ctor",
		},
		Params: params,
	}
	t.Ctors = append(t.Ctors, c)
	return c
}

func addIndexer(t *ir.TypeSymbol, indexType ir.TypeRef, valueType ir.TypeRef) *ir.Property {
	params := []ir.Param{{Name: "index", Type: indexType}}
	p := &ir.Property{
		MemberBase: ir.MemberBase{
			ID: ir.MemberStableID{
				Assembly:      testAssembly,
				DeclaringType: t.ID.ClrFullName,
				Name:          "Item",
				Signature:     ir.IndexerSignature(ir.ParamTypeNames(params)),
			},
			ClrName: "Item",
		},
		Type:        valueType,
		IndexParams: params,
		HasGetter:   true,
	}
	t.Properties = append(t.Properties, p)
	return p
}

func buildGraph(types ...*ir.TypeSymbol) *ir.SymbolGraph {
	g := &ir.SymbolGraph{Namespaces: []*ir.NamespaceSymbol{{Name: "My.Ns", Types: types}}}
	g.Sort()
	return g
}

func runEngine(t *testing.T, g *ir.SymbolGraph) (*ir.SymbolGraph, *namer.Renamer) {
	t.Helper()
	rn := namer.New(namer.Options{MemberTransform: namer.TransformCamel})
	shaped, err := NewEngine(nil).Run(g, rn)
	require.NoError(t, err)
	assertNoOrphans(t, shaped)
	return shaped, rn
}

// assertNoOrphans proves the no-orphan invariant: every member placed,
// every ViewOnly member sourced and claimed by exactly one view, every
// view non-empty.
func assertNoOrphans(t *testing.T, g *ir.SymbolGraph) {
	t.Helper()
	g.EachType(func(_ *ir.NamespaceSymbol, ty *ir.TypeSymbol) {
		claims := make(map[string]int)
		for _, v := range ty.ExplicitViews {
			assert.NotEmpty(t, v.Members, "view %s has no members", v.Key())
			for _, id := range v.Members {
				claims[id.Key()]++
			}
		}
		for _, m := range ty.Members() {
			b := m.Base()
			assert.NotEqual(t, ir.ScopeUnspecified, b.EmitScope,
				"%s.%s left unplaced", ty.ClrName, b.ClrName)
			if b.EmitScope == ir.ScopeViewOnly {
				assert.NotNil(t, b.SourceInterface, "%s.%s has no source interface", ty.ClrName, b.ClrName)
				assert.Equal(t, 1, claims[b.ID.Key()],
					"%s.%s not claimed by exactly one view", ty.ClrName, b.ClrName)
			}
		}
	})
}

func findType(g *ir.SymbolGraph, fullName string) *ir.TypeSymbol {
	return g.FindType(ir.TypeStableID{Assembly: testAssembly, ClrFullName: fullName})
}

func findMethod(ty *ir.TypeSymbol, clrName string) *ir.Method {
	for _, m := range ty.Methods {
		if m.ClrName == clrName {
			return m
		}
	}
	return nil
}

func TestPlainMethodStaysOnClassSurface(t *testing.T) {
	foo := newType(ir.KindClass, "My.Ns.Foo")
	addMethod(foo, "Bar", voidRef())

	shaped, _ := runEngine(t, buildGraph(foo))

	got := findMethod(findType(shaped, "My.Ns.Foo"), "Bar")
	require.NotNil(t, got)
	assert.Equal(t, ir.ScopeClassSurface, got.EmitScope)
	assert.Equal(t, ir.ProvOriginal, got.Provenance)
	assert.Empty(t, findType(shaped, "My.Ns.Foo").ExplicitViews)
}

func TestConstructorsStayOnClassSurface(t *testing.T) {
	disposable := newType(ir.KindInterface, "My.Ns.IDisposable")
	addMethod(disposable, "Dispose", voidRef())

	// The ".ctor" special name must never be read as an
	// explicit-interface qualification.
	res := newType(ir.KindClass, "My.Ns.Resource", localRef("My.Ns.IDisposable"))
	addCtor(res)
	addCtor(res, ir.Param{Name: "name", Type: stringRef()})

	shaped, _ := runEngine(t, buildGraph(res, disposable))

	shapedRes := findType(shaped, "My.Ns.Resource")
	require.Len(t, shapedRes.Ctors, 2)
	for _, c := range shapedRes.Ctors {
		assert.Equal(t, ir.ScopeClassSurface, c.EmitScope, "ctor %s", c.ID.Signature)
		assert.Empty(t, c.OmitReason)
		assert.Nil(t, c.SourceInterface)
	}
}

func TestUnsatisfiedInterfaceSynthesizesView(t *testing.T) {
	baz := newType(ir.KindInterface, "My.Ns.IBaz")
	addMethod(baz, "Qux", voidRef())

	foo := newType(ir.KindClass, "My.Ns.Foo", localRef("My.Ns.IBaz"))

	shaped, _ := runEngine(t, buildGraph(foo, baz))

	shapedFoo := findType(shaped, "My.Ns.Foo")
	synth := findMethod(shapedFoo, "My.Ns.IBaz.Qux")
	require.NotNil(t, synth, "expected a synthesized qualified member")
	assert.Equal(t, ir.ScopeViewOnly, synth.EmitScope)
	assert.Equal(t, ir.ProvViewSynthesized, synth.Provenance)
	require.NotNil(t, synth.SourceInterface)
	assert.Equal(t, "My.Ns.IBaz", synth.SourceInterface.FullName)

	require.Len(t, shapedFoo.ExplicitViews, 1)
	view := shapedFoo.ExplicitViews[0]
	assert.Equal(t, "My.Ns.IBaz", view.Source.FullName)
	require.Len(t, view.Members, 1)
	assert.Equal(t, synth.ID, view.Members[0])
}

func TestSatisfiedInterfaceNeedsNoView(t *testing.T) {
	baz := newType(ir.KindInterface, "My.Ns.IBaz")
	addMethod(baz, "Qux", voidRef())

	foo := newType(ir.KindClass, "My.Ns.Foo", localRef("My.Ns.IBaz"))
	addMethod(foo, "Qux", voidRef())

	shaped, _ := runEngine(t, buildGraph(foo, baz))

	shapedFoo := findType(shaped, "My.Ns.Foo")
	assert.Empty(t, shapedFoo.ExplicitViews)
	got := findMethod(shapedFoo, "Qux")
	require.NotNil(t, got)
	assert.Equal(t, ir.ScopeClassSurface, got.EmitScope)
}

func TestExistingExplicitImplClaimedForView(t *testing.T) {
	disposable := newType(ir.KindInterface, "My.Ns.IDisposable")
	addMethod(disposable, "Dispose", voidRef())

	res := newType(ir.KindClass, "My.Ns.Resource", localRef("My.Ns.IDisposable"))
	addMethod(res, "My.Ns.IDisposable.Dispose", voidRef())

	shaped, _ := runEngine(t, buildGraph(res, disposable))

	shapedRes := findType(shaped, "My.Ns.Resource")
	explicit := findMethod(shapedRes, "My.Ns.IDisposable.Dispose")
	require.NotNil(t, explicit)
	assert.Equal(t, ir.ScopeViewOnly, explicit.EmitScope)
	assert.Equal(t, ir.ProvExplicitImpl, explicit.Provenance)
	require.Len(t, shapedRes.ExplicitViews, 1)

	// No second synthesized copy of Dispose.
	count := 0
	for _, m := range shapedRes.Methods {
		if unqualName(m) == "Dispose" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestDiamondFirstDeclaredInterfaceWins(t *testing.T) {
	left := newType(ir.KindInterface, "My.Ns.ILeft")
	addMethod(left, "Describe", stringRef())
	right := newType(ir.KindInterface, "My.Ns.IRight")
	addMethod(right, "Describe", stringRef())

	c := newType(ir.KindClass, "My.Ns.Impl", localRef("My.Ns.ILeft"), localRef("My.Ns.IRight"))

	shaped, _ := runEngine(t, buildGraph(c, left, right))

	impl := findType(shaped, "My.Ns.Impl")
	var survivors []*ir.Method
	for _, m := range impl.Methods {
		if unqualName(m) == "Describe" {
			survivors = append(survivors, m)
		}
	}
	require.Len(t, survivors, 1, "diamond must leave one canonical member")

	winner := survivors[0]
	assert.Equal(t, ir.ProvDiamondResolved, winner.Provenance)
	require.NotNil(t, winner.SourceInterface)
	assert.Equal(t, "My.Ns.ILeft", winner.SourceInterface.FullName)

	require.Len(t, impl.ExplicitViews, 1)
	assert.Equal(t, "My.Ns.ILeft", impl.ExplicitViews[0].Source.FullName)
}

func TestDiamondSharedAncestorWinsByClosureOrder(t *testing.T) {
	base := newType(ir.KindInterface, "My.Ns.IBase")
	addMethod(base, "Close", voidRef())
	right := newType(ir.KindInterface, "My.Ns.IRight", localRef("My.Ns.IBase"))
	left := newType(ir.KindInterface, "My.Ns.ILeft")
	addMethod(left, "Close", voidRef())

	// IBase is reached only through IRight, the first declared
	// interface; its closure position beats the directly declared ILeft.
	c := newType(ir.KindClass, "My.Ns.Impl", localRef("My.Ns.IRight"), localRef("My.Ns.ILeft"))

	shaped, _ := runEngine(t, buildGraph(c, base, right, left))

	impl := findType(shaped, "My.Ns.Impl")
	var survivors []*ir.Method
	for _, m := range impl.Methods {
		if unqualName(m) == "Close" {
			survivors = append(survivors, m)
		}
	}
	require.Len(t, survivors, 1, "diamond must leave one canonical member")

	winner := survivors[0]
	assert.Equal(t, ir.ProvDiamondResolved, winner.Provenance)
	require.NotNil(t, winner.SourceInterface)
	assert.Equal(t, "My.Ns.IBase", winner.SourceInterface.FullName)

	require.Len(t, impl.ExplicitViews, 1)
	assert.Equal(t, "My.Ns.IBase", impl.ExplicitViews[0].Source.FullName)
}

func TestIndexerIsOmittedWithReason(t *testing.T) {
	box := newType(ir.KindClass, "My.Ns.Box")
	addIndexer(box, int32Ref(), stringRef())
	addMethod(box, "Clear", voidRef())

	shaped, _ := runEngine(t, buildGraph(box))

	shapedBox := findType(shaped, "My.Ns.Box")
	require.Len(t, shapedBox.Properties, 1)
	indexer := shapedBox.Properties[0]
	assert.Equal(t, ir.ScopeOmitted, indexer.EmitScope)
	assert.NotEmpty(t, indexer.OmitReason)

	clear := findMethod(shapedBox, "Clear")
	require.NotNil(t, clear)
	assert.Equal(t, ir.ScopeClassSurface, clear.EmitScope)
}

func TestReturnTypeConflictDemotesLoser(t *testing.T) {
	iface := newType(ir.KindInterface, "My.Ns.ICounter")
	addMethod(iface, "Count", int32Ref())

	c := newType(ir.KindClass, "My.Ns.Counter", localRef("My.Ns.ICounter"))
	addMethod(c, "Count", stringRef()) // same params, different return

	shaped, _ := runEngine(t, buildGraph(c, iface))

	counter := findType(shaped, "My.Ns.Counter")
	var surface, demoted *ir.Method
	for _, m := range counter.Methods {
		if unqualName(m) != "Count" {
			continue
		}
		switch m.EmitScope {
		case ir.ScopeClassSurface:
			surface = m
		case ir.ScopeViewOnly:
			demoted = m
		}
	}
	require.NotNil(t, surface)
	require.NotNil(t, demoted)
	assert.Equal(t, "System.String", surface.ReturnType.FullName)
	assert.Equal(t, "System.Int32", demoted.ReturnType.FullName)
	require.NotNil(t, demoted.SourceInterface)
	assert.Equal(t, "My.Ns.ICounter", demoted.SourceInterface.FullName)
}

func TestInterfaceInliningCopiesInheritedMembers(t *testing.T) {
	base := newType(ir.KindInterface, "My.Ns.IBase")
	addMethod(base, "Close", voidRef())
	derived := newType(ir.KindInterface, "My.Ns.IDerived", localRef("My.Ns.IBase"))
	addMethod(derived, "Open", voidRef())

	shaped, _ := runEngine(t, buildGraph(base, derived))

	shapedDerived := findType(shaped, "My.Ns.IDerived")
	inherited := findMethod(shapedDerived, "Close")
	require.NotNil(t, inherited, "inherited member must be inlined")
	assert.Equal(t, ir.ProvInterfaceCopied, inherited.Provenance)
	require.NotNil(t, inherited.SourceInterface)
	assert.Equal(t, "My.Ns.IBase", inherited.SourceInterface.FullName)

	own := findMethod(shapedDerived, "Open")
	require.NotNil(t, own)
	assert.Equal(t, ir.ProvOriginal, own.Provenance)
}

func TestConstraintCycleBreaks(t *testing.T) {
	node := newType(ir.KindClass, "My.Ns.Node`1")
	node.GenericParams = []ir.GenericParam{{
		Name: "T",
		RawConstraints: []ir.TypeRef{
			ir.NamedRef("System.Runtime", "System.IComparable`1", ir.ParamRef("T")),
		},
	}}
	addMethod(node, "Touch", voidRef())

	shaped, _ := runEngine(t, buildGraph(node))

	shapedNode := findType(shaped, "My.Ns.Node`1")
	require.Len(t, shapedNode.GenericParams, 1)
	p := shapedNode.GenericParams[0]
	assert.True(t, p.ConstraintsResolved)
	require.Len(t, p.Resolved, 1)
	resolved := p.Resolved[0]
	assert.Equal(t, "System.IComparable`1", resolved.FullName)
	require.Len(t, resolved.TypeArgs, 1)
	assert.Equal(t, ir.RefCycleBreak, resolved.TypeArgs[0].Kind)
}

func TestEngineDoesNotMutateInput(t *testing.T) {
	foo := newType(ir.KindClass, "My.Ns.Foo")
	addMethod(foo, "Bar", voidRef())
	g := buildGraph(foo)

	_, _ = runEngine(t, g)

	original := findMethod(findType(g, "My.Ns.Foo"), "Bar")
	require.NotNil(t, original)
	assert.Equal(t, ir.ScopeUnspecified, original.EmitScope)
}

func TestEngineIsDeterministic(t *testing.T) {
	build := func() *ir.SymbolGraph {
		left := newType(ir.KindInterface, "My.Ns.ILeft")
		addMethod(left, "Describe", stringRef())
		right := newType(ir.KindInterface, "My.Ns.IRight")
		addMethod(right, "Describe", stringRef())
		c := newType(ir.KindClass, "My.Ns.Impl", localRef("My.Ns.ILeft"), localRef("My.Ns.IRight"))
		addMethod(c, "Own", voidRef())
		return buildGraph(c, left, right)
	}

	first, _ := runEngine(t, build())
	second, _ := runEngine(t, build())

	var a, b []string
	first.EachType(func(_ *ir.NamespaceSymbol, ty *ir.TypeSymbol) {
		for _, m := range ty.Members() {
			a = append(a, m.Base().ID.Key()+"="+m.Base().EmitScope.String())
		}
	})
	second.EachType(func(_ *ir.NamespaceSymbol, ty *ir.TypeSymbol) {
		for _, m := range ty.Members() {
			b = append(b, m.Base().ID.Key()+"="+m.Base().EmitScope.String())
		}
	})
	assert.Equal(t, a, b)
}
