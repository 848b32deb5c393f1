package namer

import "github.com/clrdecl/clrdecl/ir"

// ScopeKind identifies the family a reservation scope belongs to.
// Uniqueness is enforced only within one scope; the four families are
// deliberately independent so a class-surface name never falsely
// collides with a view name.
type ScopeKind int

const (
	// ScopeNamespace governs top-level type names, split by visibility.
	ScopeNamespace ScopeKind = iota

	// ScopeSurface governs members directly on a type body, split
	// static/instance.
	ScopeSurface

	// ScopeView governs members inside one explicit interface view,
	// keyed by (owner, source interface) and split static/instance.
	ScopeView
)

// String returns the string representation of the scope kind.
func (k ScopeKind) String() string {
	switch k {
	case ScopeNamespace:
		return "namespace"
	case ScopeSurface:
		return "surface"
	case ScopeView:
		return "view"
	default:
		return "unknown"
	}
}

// Scope is one reservation namespace. Scopes are values; equal keys
// mean the same scope.
type Scope struct {
	kind ScopeKind
	key  string
}

// NamespaceScope returns the scope governing top-level type names in a
// namespace, split by public/internal visibility.
func NamespaceScope(namespace string, internal bool) Scope {
	vis := "public"
	if internal {
		vis = "internal"
	}
	return Scope{kind: ScopeNamespace, key: "ns:" + namespace + "/" + vis}
}

// SurfaceScope returns the class-surface scope of a type. Member
// reservations derive the static/instance sub-scope from this base.
func SurfaceScope(owner ir.TypeStableID) Scope {
	return Scope{kind: ScopeSurface, key: "type:" + owner.Key()}
}

// ViewScope returns the scope of one explicit interface view.
func ViewScope(owner ir.TypeStableID, source ir.TypeStableID) Scope {
	return Scope{kind: ScopeView, key: "view:" + owner.Key() + "=>" + source.Key()}
}

// Kind returns the scope family.
func (s Scope) Kind() ScopeKind { return s.kind }

// Key returns the canonical scope key.
func (s Scope) Key() string { return s.key }

// IsZero reports whether the scope is empty.
func (s Scope) IsZero() bool { return s.key == "" }

// EffectiveKey returns the reservation key a member decision in this
// scope records, including the static/instance side. Validation uses it
// to cross-check a decision's scope against a member's placement.
func (s Scope) EffectiveKey(static bool) string { return s.side(static) }

// side derives the effective reservation key for a member scope.
// Namespace scopes have no static split and return the base key.
func (s Scope) side(static bool) string {
	if s.kind == ScopeNamespace {
		return s.key
	}
	if static {
		return s.key + "/static"
	}
	return s.key + "/instance"
}
