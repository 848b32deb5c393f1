package ir

// TypeSymbol represents one CLR type. The TsEmitName field is empty
// until the naming phase assigns it; validation requires it to be
// non-empty and unique within its namespace+visibility scope for every
// emitted type.
type TypeSymbol struct {
	ID         TypeStableID
	ClrName    string
	TsEmitName string

	Kind       TypeKind
	Visibility Visibility
	Abstract   bool
	Sealed     bool

	GenericParams []GenericParam

	// BaseType is the direct base class reference, nil for interfaces,
	// System.Object, and enums.
	BaseType *TypeRef

	// Interfaces is the ordered implemented-interface list. Order is the
	// exporter's CLR metadata order and is load-bearing: the diamond
	// pass breaks ties by first-declared interface.
	Interfaces []TypeRef

	Methods    []*Method
	Properties []*Property
	Fields     []*Field
	Events     []*Event
	Ctors      []*Ctor

	// Nested holds nested type symbols.
	Nested []*TypeSymbol

	// ExplicitViews is populated only by the shape engine's view
	// planning pass: one view per interface that contributed at least
	// one ViewOnly member.
	ExplicitViews []*ExplicitView

	// EnumMembers holds name/value pairs for KindEnum types.
	EnumMembers []EnumMember
}

// EnumMember is one enum constant.
type EnumMember struct {
	Name  string
	Value int64
}

// Members returns every member in declaration order: methods,
// properties, fields, events, constructors. The slice is rebuilt per
// call; mutating the elements mutates the type, mutating the slice does
// not.
func (t *TypeSymbol) Members() []Member {
	out := make([]Member, 0, len(t.Methods)+len(t.Properties)+len(t.Fields)+len(t.Events)+len(t.Ctors))
	for _, m := range t.Methods {
		out = append(out, m)
	}
	for _, p := range t.Properties {
		out = append(out, p)
	}
	for _, f := range t.Fields {
		out = append(out, f)
	}
	for _, e := range t.Events {
		out = append(out, e)
	}
	for _, c := range t.Ctors {
		out = append(out, c)
	}
	return out
}

// IsInterface reports whether the type is an interface.
func (t *TypeSymbol) IsInterface() bool { return t.Kind == KindInterface }

// Clone returns a deep copy of the type, its members, nested types, and
// views.
func (t *TypeSymbol) Clone() *TypeSymbol {
	out := *t
	out.GenericParams = cloneParams(t.GenericParams)
	if t.BaseType != nil {
		b := t.BaseType.Clone()
		out.BaseType = &b
	}
	out.Interfaces = cloneRefs(t.Interfaces)

	out.Methods = make([]*Method, len(t.Methods))
	for i, m := range t.Methods {
		out.Methods[i] = m.CloneMember().(*Method)
	}
	out.Properties = make([]*Property, len(t.Properties))
	for i, p := range t.Properties {
		out.Properties[i] = p.CloneMember().(*Property)
	}
	out.Fields = make([]*Field, len(t.Fields))
	for i, f := range t.Fields {
		out.Fields[i] = f.CloneMember().(*Field)
	}
	out.Events = make([]*Event, len(t.Events))
	for i, e := range t.Events {
		out.Events[i] = e.CloneMember().(*Event)
	}
	out.Ctors = make([]*Ctor, len(t.Ctors))
	for i, c := range t.Ctors {
		out.Ctors[i] = c.CloneMember().(*Ctor)
	}

	out.Nested = make([]*TypeSymbol, len(t.Nested))
	for i, n := range t.Nested {
		out.Nested[i] = n.Clone()
	}
	out.ExplicitViews = make([]*ExplicitView, len(t.ExplicitViews))
	for i, v := range t.ExplicitViews {
		out.ExplicitViews[i] = v.Clone()
	}
	if t.EnumMembers != nil {
		out.EnumMembers = make([]EnumMember, len(t.EnumMembers))
		copy(out.EnumMembers, t.EnumMembers)
	}
	return &out
}

// ExplicitView groups the ViewOnly members a single interface
// contributed to a type. Views are keyed by (owner, source interface);
// at most one view exists per pair and every view holds at least one
// member — both invariants are checked at construction by view planning
// and re-checked by the validation gate.
type ExplicitView struct {
	Owner  TypeStableID
	Source TypeRef

	// PropertyName is the sanitized identifier the view object is
	// exposed under (e.g. "asIDisposable"). Assigned by the naming
	// phase.
	PropertyName string

	// Members lists the stable IDs of the ViewOnly members belonging to
	// this view, in deterministic order.
	Members []MemberStableID
}

// Key returns the canonical "(owner, interface)" key.
func (v *ExplicitView) Key() string {
	return v.Owner.Key() + "=>" + v.Source.TypeID().Key()
}

// Clone returns a deep copy.
func (v *ExplicitView) Clone() *ExplicitView {
	out := *v
	out.Source = v.Source.Clone()
	out.Members = make([]MemberStableID, len(v.Members))
	copy(out.Members, v.Members)
	return &out
}
