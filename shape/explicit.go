package shape

import (
	"strings"

	"github.com/clrdecl/clrdecl/ir"
)

// explicitImplPass places any remaining CLR explicit interface
// implementations — members with interface-qualified names that
// conformance analysis did not already claim — into ViewOnly scope with
// their source interface resolved from the name prefix.
type explicitImplPass struct{}

func (explicitImplPass) Name() string { return "explicit-impl-synthesis" }

func (explicitImplPass) Run(ctx *Context) error {
	ctx.Graph.EachType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		if t.IsInterface() {
			return
		}
		for _, m := range t.Members() {
			b := m.Base()
			if b.EmitScope != ir.ScopeUnspecified || !ir.QualifiedMemberName(b.ClrName) {
				continue
			}
			src := resolveSourceInterface(ctx, t, b.ClrName)
			if src == nil {
				// Qualified name with no matching declared interface:
				// keep it out of the class surface but track it.
				b.SetScope(ir.ScopeOmitted)
				b.OmitReason = "explicit implementation of an interface the type does not declare"
				continue
			}
			if b.SetScope(ir.ScopeViewOnly) {
				b.SourceInterface = src
				b.Provenance = ir.ProvExplicitImpl
			}
		}
	})
	return nil
}

// resolveSourceInterface matches a qualified member name's prefix
// against the type's transitive interface set.
func resolveSourceInterface(ctx *Context, t *ir.TypeSymbol, qualified string) *ir.TypeRef {
	prefix := qualified[:strings.LastIndexByte(qualified, '.')]
	for _, ref := range interfaceClosureOf(ctx, t) {
		if arityFree(ref.FullName) == prefix || ref.ShortName() == prefix {
			src := ref.Clone()
			return &src
		}
	}
	return nil
}
