package ir

// GenericParam describes one generic type parameter of a type or method.
//
// Constraint resolution is deferred past extraction because constraints
// can be self-referential (T : IComparable<T>). The loader stores the
// raw references in RawConstraints; the shape engine's constraint
// closure pass fills Resolved and sets ConstraintsResolved, breaking
// cycles with RefCycleBreak sentinels.
type GenericParam struct {
	Name     string
	Position int
	Variance Variance

	// Special constraints.
	ReferenceConstraint   bool // where T : class
	ValueConstraint       bool // where T : struct
	DefaultCtorConstraint bool // where T : new()

	// RawConstraints carries unresolved constraint references straight
	// from the export.
	RawConstraints []TypeRef

	// Resolved is the closure-pass output. Nil until resolution runs.
	Resolved []TypeRef

	// ConstraintsResolved is set once by the constraint closure pass.
	ConstraintsResolved bool
}

// Clone returns a deep copy.
func (p GenericParam) Clone() GenericParam {
	out := p
	out.RawConstraints = cloneRefs(p.RawConstraints)
	out.Resolved = cloneRefs(p.Resolved)
	return out
}

// cloneParams deep-copies a parameter slice.
func cloneParams(params []GenericParam) []GenericParam {
	if params == nil {
		return nil
	}
	out := make([]GenericParam, len(params))
	for i, p := range params {
		out[i] = p.Clone()
	}
	return out
}
