package validate

import (
	"github.com/clrdecl/clrdecl/ir"
	"github.com/clrdecl/clrdecl/logger"
	"github.com/clrdecl/clrdecl/namer"
	"github.com/clrdecl/clrdecl/plan"
)

// check is one validation family. Families are independent: each
// consumes the context and appends diagnostics, never reading another
// family's findings.
type check struct {
	name string
	run  func(*Context)
}

// families in fixed order. Order only affects report readability, not
// results.
var families = []check{
	{"finalization-sweep", checkFinalization},
	{"name-completeness", checkNameCompleteness},
	{"name-uniqueness", checkNameUniqueness},
	{"reserved-words", checkReservedWords},
	{"view-integrity", checkViews},
	{"scope-correspondence", checkScopes},
	{"interface-conformance", checkConformance},
	{"constraint-audit", checkConstraints},
	{"import-completeness", checkImports},
	{"printer-compliance", checkPrinter},
}

// Run executes every check family over the shaped, named graph and its
// emission plan, and returns the full report. Run never short-circuits;
// a single invocation surfaces the complete problem list.
func Run(g *ir.SymbolGraph, r *namer.Renamer, p *plan.Plan, opts Options) *Report {
	ctx := &Context{Graph: g, Renamer: r, Plan: p, Opts: opts}
	for _, f := range families {
		before := len(ctx.diags)
		f.run(ctx)
		logger.Logger.Debugw("validation family done",
			"family", f.name, "findings", len(ctx.diags)-before)
	}
	return ctx.buildReport()
}
