package shape

import (
	"github.com/clrdecl/clrdecl/ir"
)

// unqualName returns a member's CLR name with any explicit-interface
// prefix stripped.
func unqualName(m ir.Member) string {
	return ir.UnqualifyMemberName(m.Base().ClrName)
}

// memberSignature returns the canonical signature used for structural
// matching: full method signature (parameters and return), indexer
// parameter list, constructor parameter list, empty for the rest.
func memberSignature(m ir.Member) string {
	switch v := m.(type) {
	case *ir.Method:
		return v.Signature()
	case *ir.Property:
		return v.Signature()
	case *ir.Ctor:
		return v.Signature()
	default:
		return ""
	}
}

// slotKey identifies a class-surface slot: unqualified name, member
// kind, canonical signature, and static side.
func slotKey(m ir.Member) string {
	side := "i"
	if m.Base().Static {
		side = "s"
	}
	return unqualName(m) + "#" + m.MemberKind().String() + "#" + memberSignature(m) + "#" + side
}

// matches reports whether an existing member structurally satisfies a
// required interface member: same kind, same unqualified name, same
// erased signature.
func matches(existing, required ir.Member) bool {
	if existing.MemberKind() != required.MemberKind() {
		return false
	}
	if unqualName(existing) != unqualName(required) {
		return false
	}
	return memberSignature(existing) == memberSignature(required)
}

// appendMember appends a member to the owning type's kind-specific
// collection.
func appendMember(t *ir.TypeSymbol, m ir.Member) {
	switch v := m.(type) {
	case *ir.Method:
		t.Methods = append(t.Methods, v)
	case *ir.Property:
		t.Properties = append(t.Properties, v)
	case *ir.Field:
		t.Fields = append(t.Fields, v)
	case *ir.Event:
		t.Events = append(t.Events, v)
	case *ir.Ctor:
		t.Ctors = append(t.Ctors, v)
	}
}

// removeMembers drops the members whose stable keys appear in drop from
// every kind-specific collection of t.
func removeMembers(t *ir.TypeSymbol, drop map[string]bool) {
	if len(drop) == 0 {
		return
	}
	methods := t.Methods[:0]
	for _, m := range t.Methods {
		if !drop[m.ID.Key()] {
			methods = append(methods, m)
		}
	}
	t.Methods = methods

	props := t.Properties[:0]
	for _, p := range t.Properties {
		if !drop[p.ID.Key()] {
			props = append(props, p)
		}
	}
	t.Properties = props

	fields := t.Fields[:0]
	for _, f := range t.Fields {
		if !drop[f.ID.Key()] {
			fields = append(fields, f)
		}
	}
	t.Fields = fields

	events := t.Events[:0]
	for _, e := range t.Events {
		if !drop[e.ID.Key()] {
			events = append(events, e)
		}
	}
	t.Events = events

	ctors := t.Ctors[:0]
	for _, c := range t.Ctors {
		if !drop[c.ID.Key()] {
			ctors = append(ctors, c)
		}
	}
	t.Ctors = ctors
}

// reID clones a member under a new declaring type, preserving name and
// signature so the stable ID stays semantic.
func reID(m ir.Member, owner ir.TypeStableID, name string) ir.Member {
	clone := m.CloneMember()
	b := clone.Base()
	b.ID = ir.MemberStableID{
		Assembly:      owner.Assembly,
		DeclaringType: owner.ClrFullName,
		Name:          name,
		Signature:     b.ID.Signature,
	}
	b.ClrName = name
	return clone
}
