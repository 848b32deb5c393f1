package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStableIDDeterminism(t *testing.T) {
	// Identity is purely semantic: two independent constructions over
	// the same metadata produce byte-identical keys.
	a := TypeStableID{Assembly: "System.Runtime", ClrFullName: "System.Collections.Generic.List`1"}
	b := TypeStableID{Assembly: "System.Runtime", ClrFullName: "System.Collections.Generic.List`1"}
	assert.Equal(t, a, b)
	assert.Equal(t, a.Key(), b.Key())

	ma := MemberStableID{Assembly: "Lib", DeclaringType: "My.Foo", Name: "Bar", Signature: "(System.Int32)->System.Void"}
	mb := MemberStableID{Assembly: "Lib", DeclaringType: "My.Foo", Name: "Bar", Signature: "(System.Int32)->System.Void"}
	assert.Equal(t, ma.Key(), mb.Key())

	// Signature participates in identity; overloads never collide.
	mc := mb
	mc.Signature = "(System.String)->System.Void"
	assert.NotEqual(t, mb.Key(), mc.Key())
}

func TestTypeStableIDShortName(t *testing.T) {
	tests := []struct {
		fullName string
		want     string
	}{
		{"System.IComparable`1", "IComparable"},
		{"System.String", "String"},
		{"My.Ns.Outer+Inner", "Inner"},
		{"NoNamespace", "NoNamespace"},
	}
	for _, tt := range tests {
		t.Run(tt.fullName, func(t *testing.T) {
			id := TypeStableID{Assembly: "A", ClrFullName: tt.fullName}
			assert.Equal(t, tt.want, id.ShortName())
		})
	}
}

func TestTypeStableIDShortNestedName(t *testing.T) {
	tests := []struct {
		fullName string
		want     string
	}{
		{"My.Ns.Outer+Inner`1", "Outer_Inner"},
		{"My.Ns.Outer`1+Inner", "Outer_Inner"},
		{"My.Ns.Plain", "Plain"},
		{"Top+Mid+Leaf", "Top_Mid_Leaf"},
	}
	for _, tt := range tests {
		t.Run(tt.fullName, func(t *testing.T) {
			id := TypeStableID{Assembly: "A", ClrFullName: tt.fullName}
			assert.Equal(t, tt.want, id.ShortNestedName())
		})
	}
}

func TestSignatureBuilders(t *testing.T) {
	assert.Equal(t, "(System.Int32,System.String)->System.Boolean",
		MethodSignature([]string{"System.Int32", "System.String"}, "System.Boolean"))
	assert.Equal(t, "()->System.Void", MethodSignature(nil, "System.Void"))
	assert.Equal(t, "(System.Int32)", IndexerSignature([]string{"System.Int32"}))
	assert.Equal(t, "()", CtorSignature(nil))
}

func TestMemberNameQualification(t *testing.T) {
	tests := []struct {
		name      string
		qualified bool
		unqual    string
	}{
		{"Dispose", false, "Dispose"},
		{"System.IDisposable.Dispose", true, "Dispose"},
		{"My.Ns.IList`1.Add", true, "Add"},
		// CLR special names carry a leading dot but no interface
		// prefix; they must not read as explicit implementations.
		{".ctor", false, ".ctor"},
		{".cctor", false, ".cctor"},
		{"", false, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.qualified, QualifiedMemberName(tt.name), "QualifiedMemberName(%q)", tt.name)
		assert.Equal(t, tt.unqual, UnqualifyMemberName(tt.name), "UnqualifyMemberName(%q)", tt.name)
	}
}
