package ir

import "strings"

// RefKind identifies the category of a type reference.
type RefKind int

const (
	RefNamed        RefKind = iota // reference to a named type
	RefGenericParam                // reference to a generic parameter in scope
	RefArray                       // T[] (possibly multi-dimensional)
	RefPointer                     // unmanaged pointer, unrepresentable
	RefFunctionPtr                 // function pointer, unrepresentable
	RefCycleBreak                  // sentinel substituted when constraint resolution hits a cycle
)

// String returns the string representation of the reference kind.
func (k RefKind) String() string {
	switch k {
	case RefNamed:
		return "Named"
	case RefGenericParam:
		return "GenericParam"
	case RefArray:
		return "Array"
	case RefPointer:
		return "Pointer"
	case RefFunctionPtr:
		return "FunctionPtr"
	case RefCycleBreak:
		return "CycleBreak"
	default:
		return "Unknown"
	}
}

// TypeRef is a reference to a type as it appears in a signature, base
// list, or constraint. References are value types; copying a TypeRef
// deep-copies its element and arguments.
type TypeRef struct {
	Kind RefKind

	// Assembly and FullName locate the target for RefNamed references.
	Assembly string
	FullName string

	// TypeArgs holds generic arguments for instantiated RefNamed
	// references (e.g. List`1<string> carries one argument).
	TypeArgs []TypeRef

	// ParamName is the generic parameter name for RefGenericParam.
	ParamName string

	// Elem is the element type for RefArray and RefPointer.
	Elem *TypeRef

	// Rank is the array rank for RefArray (1 for T[]).
	Rank int
}

// NamedRef builds a reference to a named type.
func NamedRef(assembly, fullName string, args ...TypeRef) TypeRef {
	return TypeRef{Kind: RefNamed, Assembly: assembly, FullName: fullName, TypeArgs: args}
}

// ParamRef builds a reference to a generic parameter.
func ParamRef(name string) TypeRef {
	return TypeRef{Kind: RefGenericParam, ParamName: name}
}

// ArrayRef builds an array reference over elem.
func ArrayRef(elem TypeRef, rank int) TypeRef {
	e := elem.Clone()
	return TypeRef{Kind: RefArray, Elem: &e, Rank: rank}
}

// CycleBreakRef is the sentinel substituted for a constraint reference
// whose resolution would recurse into itself (T : IComparable<T>).
func CycleBreakRef(fullName string) TypeRef {
	return TypeRef{Kind: RefCycleBreak, FullName: fullName}
}

// IsZero reports whether the reference is empty.
func (r TypeRef) IsZero() bool {
	return r.Kind == RefNamed && r.Assembly == "" && r.FullName == "" && len(r.TypeArgs) == 0
}

// TypeID returns the stable ID of the referenced named type. Zero for
// non-named references.
func (r TypeRef) TypeID() TypeStableID {
	if r.Kind != RefNamed {
		return TypeStableID{}
	}
	return TypeStableID{Assembly: r.Assembly, ClrFullName: r.FullName}
}

// ShortName returns the unqualified target name without arity markers.
func (r TypeRef) ShortName() string {
	switch r.Kind {
	case RefGenericParam:
		return r.ParamName
	case RefArray, RefPointer:
		if r.Elem != nil {
			return r.Elem.ShortName()
		}
		return ""
	default:
		return r.TypeID().ShortName()
	}
}

// Erased returns the erased display form used in canonical signatures:
// named types keep their CLR full name (arguments dropped), generic
// parameters erase to their declaration position-independent name.
func (r TypeRef) Erased() string {
	switch r.Kind {
	case RefNamed:
		return r.FullName
	case RefGenericParam:
		return "$" + r.ParamName
	case RefArray:
		if r.Elem != nil {
			return r.Elem.Erased() + "[]"
		}
		return "[]"
	case RefPointer:
		if r.Elem != nil {
			return r.Elem.Erased() + "*"
		}
		return "*"
	case RefFunctionPtr:
		return "fnptr"
	case RefCycleBreak:
		return r.FullName
	default:
		return ""
	}
}

// Unrepresentable reports whether the reference (or any nested part)
// has no TypeScript equivalent and must not survive into emitted
// signatures.
func (r TypeRef) Unrepresentable() bool {
	if r.Kind == RefPointer || r.Kind == RefFunctionPtr {
		return true
	}
	if r.Elem != nil && r.Elem.Unrepresentable() {
		return true
	}
	for _, a := range r.TypeArgs {
		if a.Unrepresentable() {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (r TypeRef) Clone() TypeRef {
	out := r
	if r.Elem != nil {
		e := r.Elem.Clone()
		out.Elem = &e
	}
	if len(r.TypeArgs) > 0 {
		out.TypeArgs = make([]TypeRef, len(r.TypeArgs))
		for i, a := range r.TypeArgs {
			out.TypeArgs[i] = a.Clone()
		}
	}
	return out
}

// Equal reports structural equality.
func (r TypeRef) Equal(o TypeRef) bool {
	if r.Kind != o.Kind || r.Assembly != o.Assembly || r.FullName != o.FullName ||
		r.ParamName != o.ParamName || r.Rank != o.Rank || len(r.TypeArgs) != len(o.TypeArgs) {
		return false
	}
	if (r.Elem == nil) != (o.Elem == nil) {
		return false
	}
	if r.Elem != nil && !r.Elem.Equal(*o.Elem) {
		return false
	}
	for i := range r.TypeArgs {
		if !r.TypeArgs[i].Equal(o.TypeArgs[i]) {
			return false
		}
	}
	return true
}

// cloneRefs deep-copies a reference slice.
func cloneRefs(refs []TypeRef) []TypeRef {
	if refs == nil {
		return nil
	}
	out := make([]TypeRef, len(refs))
	for i, r := range refs {
		out[i] = r.Clone()
	}
	return out
}

// ErasedAll maps a reference slice to its erased display forms.
func ErasedAll(refs []TypeRef) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.Erased()
	}
	return out
}

// QualifiedMemberName reports whether a CLR member name carries an
// explicit-interface qualification prefix ("System.IDisposable.Dispose").
// The naming engine uses this signal to prefer interface-suffix
// disambiguation over numeric suffixes. CLR special names with a
// leading dot and no prefix (".ctor", ".cctor") are not qualified.
func QualifiedMemberName(name string) bool {
	return strings.LastIndexByte(name, '.') > 0
}

// UnqualifyMemberName strips the explicit-interface prefix from a
// qualified member name ("System.IDisposable.Dispose" -> "Dispose").
// Names without a prefix, ".ctor" included, are returned unchanged.
func UnqualifyMemberName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[i+1:]
	}
	return name
}
