package ir

// MemberKind identifies the variant of a member symbol.
type MemberKind int

const (
	MemberMethod MemberKind = iota
	MemberProperty
	MemberField
	MemberEvent
	MemberCtor
)

// String returns the string representation of the member kind.
func (k MemberKind) String() string {
	switch k {
	case MemberMethod:
		return "Method"
	case MemberProperty:
		return "Property"
	case MemberField:
		return "Field"
	case MemberEvent:
		return "Event"
	case MemberCtor:
		return "Constructor"
	default:
		return "Unknown"
	}
}

// MemberBase carries the identity and placement fields shared by every
// member variant.
//
// Lifecycle: ID and ClrName are set at load time and never change.
// EmitScope and Provenance start at their defaults and are set exactly
// once by the shape engine; later passes treat earlier decisions as
// final. TsEmitName stays empty until the naming phase, then freezes.
type MemberBase struct {
	ID         MemberStableID
	ClrName    string
	TsEmitName string
	Visibility Visibility
	Static     bool

	Provenance Provenance
	EmitScope  EmitScope

	// SourceInterface names the interface that contributed a ViewOnly
	// member. Mandatory when EmitScope is ScopeViewOnly; its absence
	// there is a validation error.
	SourceInterface *TypeRef

	// OmitReason is the human-readable reason recorded for the binding
	// sidecar when EmitScope is ScopeOmitted.
	OmitReason string

	// Note carries a disambiguating remark attached by shape passes
	// (e.g. why an overload was demoted). Informational only.
	Note string
}

// Base returns the receiver; it lets all variants satisfy Member.
func (b *MemberBase) Base() *MemberBase { return b }

// SetScope assigns the emit scope if it is still unspecified and
// reports whether the assignment happened. Passes never override an
// earlier pass's placement.
func (b *MemberBase) SetScope(s EmitScope) bool {
	if b.EmitScope != ScopeUnspecified {
		return false
	}
	b.EmitScope = s
	return true
}

// ForceOmit overrides any prior placement with ScopeOmitted. Reserved
// for the final indexer sweep, which is a safety net over earlier
// passes rather than a first placement.
func (b *MemberBase) ForceOmit(reason string) {
	b.EmitScope = ScopeOmitted
	if b.OmitReason == "" {
		b.OmitReason = reason
	}
}

// Member is the interface shared by all member variants. The variants
// are a closed set; sweeps over a type's members type-switch on
// MemberKind.
type Member interface {
	Base() *MemberBase
	MemberKind() MemberKind

	// CloneMember returns a deep copy of the member.
	CloneMember() Member
}

// Param is one method/indexer/constructor parameter.
type Param struct {
	Name     string
	Type     TypeRef
	Optional bool
	ByRef    bool // ref/out parameter
}

// Clone returns a deep copy.
func (p Param) Clone() Param {
	out := p
	out.Type = p.Type.Clone()
	return out
}

func cloneParamList(params []Param) []Param {
	if params == nil {
		return nil
	}
	out := make([]Param, len(params))
	for i, p := range params {
		out[i] = p.Clone()
	}
	return out
}

// ParamTypeNames returns the erased parameter type names, used to build
// canonical signatures.
func ParamTypeNames(params []Param) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = p.Type.Erased()
	}
	return out
}

// Method is a method member.
type Method struct {
	MemberBase
	Params        []Param
	ReturnType    TypeRef
	GenericParams []GenericParam
	Abstract      bool
	Virtual       bool
	Override      bool

	// Hiding is set when the method hides (not overrides) a base member
	// of the same name via the `new` modifier.
	Hiding bool
}

func (m *Method) MemberKind() MemberKind { return MemberMethod }

// Signature returns the canonical "(P1,P2)->Ret" form.
func (m *Method) Signature() string {
	return MethodSignature(ParamTypeNames(m.Params), m.ReturnType.Erased())
}

// ErasedParams returns the canonical parameter list portion only,
// "(P1,P2)", used when comparing overloads that differ solely by
// return type.
func (m *Method) ErasedParams() string {
	return IndexerSignature(ParamTypeNames(m.Params))
}

// CloneMember returns a deep copy.
func (m *Method) CloneMember() Member {
	out := *m
	out.Params = cloneParamList(m.Params)
	out.ReturnType = m.ReturnType.Clone()
	out.GenericParams = cloneParams(m.GenericParams)
	if m.SourceInterface != nil {
		si := m.SourceInterface.Clone()
		out.SourceInterface = &si
	}
	return &out
}

// Property is a property member. Indexers are properties with a
// non-empty IndexParams list.
type Property struct {
	MemberBase
	Type        TypeRef
	IndexParams []Param
	HasGetter   bool
	HasSetter   bool
	Hiding      bool
}

func (p *Property) MemberKind() MemberKind { return MemberProperty }

// IsIndexer reports whether the property is a parameterized (indexer)
// property.
func (p *Property) IsIndexer() bool { return len(p.IndexParams) > 0 }

// Signature returns "(I1,I2)" for indexers and "" for plain properties.
func (p *Property) Signature() string {
	if !p.IsIndexer() {
		return ""
	}
	return IndexerSignature(ParamTypeNames(p.IndexParams))
}

// CloneMember returns a deep copy.
func (p *Property) CloneMember() Member {
	out := *p
	out.Type = p.Type.Clone()
	out.IndexParams = cloneParamList(p.IndexParams)
	if p.SourceInterface != nil {
		si := p.SourceInterface.Clone()
		out.SourceInterface = &si
	}
	return &out
}

// Field is a field member.
type Field struct {
	MemberBase
	Type     TypeRef
	Const    bool
	ReadOnly bool

	// ConstValue is the literal for const fields, already formatted by
	// the loader.
	ConstValue string
}

func (f *Field) MemberKind() MemberKind { return MemberField }

// CloneMember returns a deep copy.
func (f *Field) CloneMember() Member {
	out := *f
	out.Type = f.Type.Clone()
	if f.SourceInterface != nil {
		si := f.SourceInterface.Clone()
		out.SourceInterface = &si
	}
	return &out
}

// Event is an event member.
type Event struct {
	MemberBase
	HandlerType TypeRef
}

func (e *Event) MemberKind() MemberKind { return MemberEvent }

// CloneMember returns a deep copy.
func (e *Event) CloneMember() Member {
	out := *e
	out.HandlerType = e.HandlerType.Clone()
	if e.SourceInterface != nil {
		si := e.SourceInterface.Clone()
		out.SourceInterface = &si
	}
	return &out
}

// Ctor is a constructor member.
type Ctor struct {
	MemberBase
	Params []Param
}

func (c *Ctor) MemberKind() MemberKind { return MemberCtor }

// Signature returns the canonical "(P1,P2)" form.
func (c *Ctor) Signature() string {
	return CtorSignature(ParamTypeNames(c.Params))
}

// CloneMember returns a deep copy.
func (c *Ctor) CloneMember() Member {
	out := *c
	out.Params = cloneParamList(c.Params)
	if c.SourceInterface != nil {
		si := c.SourceInterface.Clone()
		out.SourceInterface = &si
	}
	return &out
}
