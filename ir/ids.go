package ir

import "strings"

// StableID is the identity shared by type and member IDs. Stable IDs are
// assigned once when the metadata export is decoded and never change,
// which makes them the only safe map keys across transformation passes.
// CLR display names are rewritten by the naming phase and must not be
// used as keys.
type StableID interface {
	// Key returns a canonical string form suitable for map keys and
	// deterministic sorting.
	Key() string

	// AssemblyName returns the defining assembly's simple name.
	AssemblyName() string
}

// TypeStableID identifies a type by assembly and CLR full name.
// Equality is purely semantic: two loader sessions over the same
// assembly produce equal IDs.
type TypeStableID struct {
	// Assembly is the simple assembly name (e.g. "System.Runtime").
	Assembly string

	// ClrFullName is the namespace-qualified CLR name, including generic
	// arity markers (e.g. "System.Collections.Generic.List`1").
	ClrFullName string
}

// Key returns "assembly!fullname".
func (id TypeStableID) Key() string { return id.Assembly + "!" + id.ClrFullName }

// AssemblyName returns the defining assembly's simple name.
func (id TypeStableID) AssemblyName() string { return id.Assembly }

// IsZero reports whether the ID is empty.
func (id TypeStableID) IsZero() bool { return id.Assembly == "" && id.ClrFullName == "" }

// ShortName returns the final segment of the CLR full name with any
// generic arity marker stripped ("System.IComparable`1" -> "IComparable").
func (id TypeStableID) ShortName() string {
	name := id.ClrFullName
	if i := strings.LastIndexAny(name, ".+"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '`'); i >= 0 {
		name = name[:i]
	}
	return name
}

// ShortNestedName returns the type's name with its namespace stripped,
// nesting separators flattened to underscores, and arity markers removed
// ("Ns.Outer+Inner`1" -> "Outer_Inner").
func (id TypeStableID) ShortNestedName() string {
	name := id.ClrFullName
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	var sb strings.Builder
	for _, seg := range strings.Split(name, "+") {
		if i := strings.IndexByte(seg, '`'); i >= 0 {
			seg = seg[:i]
		}
		if sb.Len() > 0 {
			sb.WriteByte('_')
		}
		sb.WriteString(seg)
	}
	return sb.String()
}

// MemberStableID identifies a member by assembly, declaring type, member
// name, and canonical signature. No metadata token participates in
// equality; identity survives re-running the loader.
type MemberStableID struct {
	// Assembly is the simple assembly name.
	Assembly string

	// DeclaringType is the CLR full name of the declaring type.
	DeclaringType string

	// Name is the CLR member name. For explicit interface implementations
	// this is the interface-qualified form (e.g.
	// "System.IDisposable.Dispose").
	Name string

	// Signature is the canonical signature (see MethodSignature and
	// IndexerSignature). Empty for fields and events.
	Signature string
}

// Key returns "assembly!declaring::name|signature".
func (id MemberStableID) Key() string {
	return id.Assembly + "!" + id.DeclaringType + "::" + id.Name + "|" + id.Signature
}

// AssemblyName returns the defining assembly's simple name.
func (id MemberStableID) AssemblyName() string { return id.Assembly }

// IsZero reports whether the ID is empty.
func (id MemberStableID) IsZero() bool {
	return id.Assembly == "" && id.DeclaringType == "" && id.Name == ""
}

// MethodSignature builds the canonical method signature
// "(P1,P2,...)->Ret" from erased parameter and return type names.
func MethodSignature(paramTypes []string, returnType string) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, p := range paramTypes {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p)
	}
	sb.WriteString(")->")
	sb.WriteString(returnType)
	return sb.String()
}

// IndexerSignature builds the canonical indexer signature "(I1,I2,...)"
// from the index parameter type names.
func IndexerSignature(indexTypes []string) string {
	return "(" + strings.Join(indexTypes, ",") + ")"
}

// CtorSignature builds the canonical constructor signature. Constructors
// share the indexer form: parameter types only, no return component.
func CtorSignature(paramTypes []string) string {
	return IndexerSignature(paramTypes)
}
