package shape

import (
	"github.com/clrdecl/clrdecl/ir"
)

const indexerOmitReason = "indexer properties cannot be represented as TypeScript members; access is recorded in the binding sidecar"

// indexerPlanPass omits every parameterized (indexer) property.
// TypeScript index signatures cannot express CLR indexers overloaded by
// parameter type, so all indexers move to the sidecar with a recorded
// reason instead of appearing in declaration text.
type indexerPlanPass struct{}

func (indexerPlanPass) Name() string { return "indexer-planning" }

func (indexerPlanPass) Run(ctx *Context) error {
	ctx.Graph.EachType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		for _, p := range t.Properties {
			if !p.IsIndexer() {
				continue
			}
			if p.SetScope(ir.ScopeOmitted) {
				p.OmitReason = indexerOmitReason
			}
		}
	})
	return nil
}

// indexerSweepPass is the safety net behind indexer planning: any
// indexer introduced by a later pass (interface inlining, conformance
// synthesis) is force-omitted regardless of its current placement.
type indexerSweepPass struct{}

func (indexerSweepPass) Name() string { return "indexer-sweep" }

func (indexerSweepPass) Run(ctx *Context) error {
	ctx.Graph.EachType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		for _, p := range t.Properties {
			if p.IsIndexer() && p.EmitScope != ir.ScopeOmitted {
				p.ForceOmit(indexerOmitReason)
				ctx.Log.Debugw("late indexer force-omitted",
					"type", t.ID.ClrFullName, "property", p.ClrName)
			}
		}
	})
	return nil
}
