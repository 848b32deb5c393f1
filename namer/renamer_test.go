package namer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clrdecl/clrdecl/ir"
)

func testTypeID(name string) ir.TypeStableID {
	return ir.TypeStableID{Assembly: "Lib", ClrFullName: "My.Ns." + name}
}

func testMemberID(owner, name, sig string) ir.MemberStableID {
	return ir.MemberStableID{
		Assembly:      "Lib",
		DeclaringType: "My.Ns." + owner,
		Name:          name,
		Signature:     sig,
	}
}

func TestReserveMemberNameCollisionMonotonic(t *testing.T) {
	r := New(Options{MemberTransform: TransformCamel})
	scope := SurfaceScope(testTypeID("Sorter"))

	ids := []ir.MemberStableID{
		testMemberID("Sorter", "Compare", "(System.Int32)->System.Int32"),
		testMemberID("Sorter", "Compare", "(System.String)->System.Int32"),
		testMemberID("Sorter", "Compare", "(System.Object)->System.Int32"),
	}

	var finals []string
	for _, id := range ids {
		final, err := r.ReserveMemberName(id, "Compare", scope, "overload", false, "test")
		require.NoError(t, err)
		finals = append(finals, final)
	}
	assert.Equal(t, []string{"compare", "compare2", "compare3"}, finals)

	second := r.DecisionsFor(ids[1].Key())
	require.Len(t, second, 1)
	assert.Equal(t, StrategyNumericSuffix, second[0].Strategy)
	assert.Equal(t, 2, second[0].SuffixIndex)

	third := r.DecisionsFor(ids[2].Key())
	require.Len(t, third, 1)
	assert.Equal(t, 3, third[0].SuffixIndex)
}

func TestReserveIdempotent(t *testing.T) {
	r := New(Options{MemberTransform: TransformCamel})
	scope := SurfaceScope(testTypeID("Widget"))
	id := testMemberID("Widget", "Render", "()->System.Void")

	first, err := r.ReserveMemberName(id, "Render", scope, "surface", false, "test")
	require.NoError(t, err)
	second, err := r.ReserveMemberName(id, "Render", scope, "surface", false, "test")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, r.DecisionsFor(id.Key()), 1)
}

func TestReserveConflictingRequestedFails(t *testing.T) {
	r := New(Options{})
	scope := SurfaceScope(testTypeID("Widget"))
	id := testMemberID("Widget", "Render", "()->System.Void")

	_, err := r.ReserveMemberName(id, "Render", scope, "surface", false, "test")
	require.NoError(t, err)
	_, err = r.ReserveMemberName(id, "Draw", scope, "surface", false, "test")
	require.Error(t, err)
}

func TestScopeIndependence(t *testing.T) {
	r := New(Options{MemberTransform: TransformCamel})
	owner := testTypeID("FileStore")
	iface := testTypeID("IDisposable")

	surface := SurfaceScope(owner)
	view := ViewScope(owner, iface)

	surfaceID := testMemberID("FileStore", "Dispose", "()->System.Void")
	viewID := testMemberID("FileStore", "System.IDisposable.Dispose", "()->System.Void")

	surfaceName, err := r.ReserveMemberName(surfaceID, "Dispose", surface, "surface", false, "test")
	require.NoError(t, err)
	viewName, err := r.ReserveMemberName(viewID, "System.IDisposable.Dispose", view, "view", false, "test")
	require.NoError(t, err)

	// Same ideal name in both scopes; neither collides with the other.
	assert.Equal(t, "dispose", surfaceName)
	assert.Equal(t, "dispose", viewName)

	// Wrong-scope lookups fail cleanly instead of returning the other
	// scope's answer.
	_, err = r.GetFinalMemberName(surfaceID, view, false)
	require.Error(t, err)
	_, err = r.GetFinalMemberName(viewID, surface, false)
	require.Error(t, err)

	got, err := r.GetFinalMemberName(surfaceID, surface, false)
	require.NoError(t, err)
	assert.Equal(t, "dispose", got)
}

func TestStaticInstanceSplit(t *testing.T) {
	r := New(Options{MemberTransform: TransformCamel})
	scope := SurfaceScope(testTypeID("Parser"))

	instID := testMemberID("Parser", "Parse", "(System.String)->System.Object")
	statID := testMemberID("Parser", "Parse", "(System.String,System.Boolean)->System.Object")

	instName, err := r.ReserveMemberName(instID, "Parse", scope, "surface", false, "test")
	require.NoError(t, err)
	statName, err := r.ReserveMemberName(statID, "Parse", scope, "surface", true, "test")
	require.NoError(t, err)

	assert.Equal(t, "parse", instName)
	assert.Equal(t, "parse", statName)
}

func TestQualifiedNamePrefersInterfaceSuffix(t *testing.T) {
	r := New(Options{MemberTransform: TransformCamel})
	scope := SurfaceScope(testTypeID("Buffer"))

	plainID := testMemberID("Buffer", "Dispose", "()->System.Void")
	explicitID := testMemberID("Buffer", "System.IDisposable.Dispose", "()->System.Void")

	_, err := r.ReserveMemberName(plainID, "Dispose", scope, "surface", false, "test")
	require.NoError(t, err)

	final, err := r.ReserveMemberName(explicitID, "System.IDisposable.Dispose", scope, "explicit", false, "test")
	require.NoError(t, err)
	assert.Equal(t, "dispose_IDisposable", final)

	decisions := r.DecisionsFor(explicitID.Key())
	require.Len(t, decisions, 1)
	assert.Equal(t, StrategyInterfaceSuffix, decisions[0].Strategy)
}

func TestExplicitOverrideBypassesTransform(t *testing.T) {
	id := testMemberID("Widget", "RENDER_ALL", "()->System.Void")
	r := New(Options{
		MemberTransform: TransformCamel,
		Overrides:       map[string]string{id.Key(): "paintEverything"},
	})
	scope := SurfaceScope(testTypeID("Widget"))

	final, err := r.ReserveMemberName(id, "RENDER_ALL", scope, "surface", false, "test")
	require.NoError(t, err)
	assert.Equal(t, "paintEverything", final)
}

func TestReserveExactMemberNameSkipsTransform(t *testing.T) {
	r := New(Options{MemberTransform: TransformCamel})
	scope := SurfaceScope(testTypeID("Widget"))
	id := testMemberID("Widget", "view:Lib|My.Ns.IDisposable", "")

	// View properties arrive already in final form; the camel transform
	// would mangle the embedded interface name.
	final, err := r.ReserveExactMemberName(id, "asIDisposable", scope, "view property", false, "test")
	require.NoError(t, err)
	assert.Equal(t, "asIDisposable", final)
	assert.Equal(t, "asIdisposable", r.StyledMemberName("asIDisposable"))

	// Collision handling still applies on the exact path.
	other := testMemberID("Widget", "view:Lib.Impl|My.Ns.IDisposable", "")
	final, err = r.ReserveExactMemberName(other, "asIDisposable", scope, "view property", false, "test")
	require.NoError(t, err)
	assert.Equal(t, "asIDisposable2", final)
}

func TestReservedWordRequestGetsSanitized(t *testing.T) {
	r := New(Options{MemberTransform: TransformCamel})
	scope := SurfaceScope(testTypeID("Keywords"))
	id := testMemberID("Keywords", "Delete", "()->System.Void")

	final, err := r.ReserveMemberName(id, "Delete", scope, "surface", false, "test")
	require.NoError(t, err)
	assert.Equal(t, "delete_", final)
	assert.False(t, IsReservedWord(final))
}

func TestReserveTypeNameRequiresNamespaceScope(t *testing.T) {
	r := New(Options{})
	_, err := r.ReserveTypeName(testTypeID("Foo"), "Foo", SurfaceScope(testTypeID("Bar")), "type", "test")
	require.Error(t, err)
}

func TestTypeVisibilityScopesAreIndependent(t *testing.T) {
	r := New(Options{})

	pub, err := r.ReserveTypeName(testTypeID("Cache"), "Cache", NamespaceScope("My.Ns", false), "type", "test")
	require.NoError(t, err)
	internal, err := r.ReserveTypeName(
		ir.TypeStableID{Assembly: "Lib.Impl", ClrFullName: "My.Ns.Cache"},
		"Cache", NamespaceScope("My.Ns", true), "type", "test")
	require.NoError(t, err)

	assert.Equal(t, "Cache", pub)
	assert.Equal(t, "Cache", internal)
}

func TestPeekDoesNotCommit(t *testing.T) {
	r := New(Options{MemberTransform: TransformCamel})
	scope := SurfaceScope(testTypeID("Peek"))

	assert.Equal(t, "run", r.PeekFinalMemberName("Run", scope, false))
	assert.False(t, r.IsNameTaken(scope, "run", false))
	assert.Empty(t, r.Decisions())

	id := testMemberID("Peek", "Run", "()->System.Void")
	_, err := r.ReserveMemberName(id, "Run", scope, "surface", false, "test")
	require.NoError(t, err)

	assert.Equal(t, "run2", r.PeekFinalMemberName("Run", scope, false))
}
