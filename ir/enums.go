package ir

// TypeKind identifies the category of a type symbol.
type TypeKind int

const (
	KindClass TypeKind = iota
	KindStruct
	KindInterface
	KindEnum
	KindDelegate
	KindStaticClass // static class used purely as a namespace for members
)

// String returns the string representation of the type kind.
func (k TypeKind) String() string {
	switch k {
	case KindClass:
		return "Class"
	case KindStruct:
		return "Struct"
	case KindInterface:
		return "Interface"
	case KindEnum:
		return "Enum"
	case KindDelegate:
		return "Delegate"
	case KindStaticClass:
		return "StaticClass"
	default:
		return "Unknown"
	}
}

// Visibility is CLR accessibility collapsed to what declaration output
// distinguishes.
type Visibility int

const (
	Public Visibility = iota
	Internal
	Protected
	Private
)

// String returns the lowercase visibility name.
func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Internal:
		return "internal"
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return "unknown"
	}
}

// EmitScope is the placement decision for a member. Every member must
// leave the shape engine with a value other than ScopeUnspecified; the
// validation gate rejects graphs where any member still carries the
// default.
type EmitScope int

const (
	// ScopeUnspecified is the load-time default. Illegal at emission.
	ScopeUnspecified EmitScope = iota

	// ScopeClassSurface places the member directly on the type body.
	ScopeClassSurface

	// ScopeStaticSurface places the member in the static section.
	ScopeStaticSurface

	// ScopeViewOnly places the member inside a synthesized per-interface
	// view object, never on the class surface.
	ScopeViewOnly

	// ScopeOmitted drops the member from text output while keeping it in
	// the binding sidecar with a recorded reason.
	ScopeOmitted
)

// String returns the string representation of the emit scope.
func (s EmitScope) String() string {
	switch s {
	case ScopeUnspecified:
		return "Unspecified"
	case ScopeClassSurface:
		return "ClassSurface"
	case ScopeStaticSurface:
		return "StaticSurface"
	case ScopeViewOnly:
		return "ViewOnly"
	case ScopeOmitted:
		return "Omitted"
	default:
		return "Unknown"
	}
}

// Provenance records why a member exists in the graph.
type Provenance int

const (
	// ProvOriginal marks members present in the raw metadata export.
	ProvOriginal Provenance = iota

	// ProvInterfaceCopied marks members copied onto an interface by
	// interface inlining.
	ProvInterfaceCopied

	// ProvExplicitImpl marks members synthesized from a CLR explicit
	// interface implementation.
	ProvExplicitImpl

	// ProvHidingResolved marks members added to resolve `new`-style
	// member hiding.
	ProvHidingResolved

	// ProvBaseOverload marks sibling overloads pulled down from a base
	// class to keep TypeScript overload sets complete.
	ProvBaseOverload

	// ProvDiamondResolved marks the canonical survivor of a diamond
	// inheritance conflict.
	ProvDiamondResolved

	// ProvViewSynthesized marks members synthesized for an interface
	// view by structural conformance analysis.
	ProvViewSynthesized

	// ProvOverloadDemoted marks members demoted to a view because their
	// return type conflicts with an overload sibling.
	ProvOverloadDemoted
)

// String returns the string representation of the provenance tag.
func (p Provenance) String() string {
	switch p {
	case ProvOriginal:
		return "Original"
	case ProvInterfaceCopied:
		return "InterfaceCopied"
	case ProvExplicitImpl:
		return "ExplicitImpl"
	case ProvHidingResolved:
		return "HidingResolved"
	case ProvBaseOverload:
		return "BaseOverload"
	case ProvDiamondResolved:
		return "DiamondResolved"
	case ProvViewSynthesized:
		return "ViewSynthesized"
	case ProvOverloadDemoted:
		return "OverloadDemoted"
	default:
		return "Unknown"
	}
}

// Variance is generic parameter variance.
type Variance int

const (
	Invariant Variance = iota
	Covariant         // out T
	Contravariant     // in T
)

// String returns the string representation of the variance.
func (v Variance) String() string {
	switch v {
	case Covariant:
		return "out"
	case Contravariant:
		return "in"
	default:
		return ""
	}
}
