package validate

import (
	"fmt"
	"sort"

	"github.com/clrdecl/clrdecl/ir"
	"github.com/clrdecl/clrdecl/namer"
	"github.com/clrdecl/clrdecl/plan"
)

// Options configures a validation run.
type Options struct {
	// IncludeInternal mirrors the emission policy so the gate validates
	// exactly the set of types the plan emits.
	IncludeInternal bool

	// AllowConstructorConstraintLoss downgrades PG_CT_001 from ERROR to
	// WARNING. This is the only policy-configurable severity.
	AllowConstructorConstraintLoss bool
}

// Context is the shared accumulator every check family appends to.
// Diagnostics are never removed; checks run to completion regardless of
// what earlier families found.
type Context struct {
	Graph   *ir.SymbolGraph
	Renamer *namer.Renamer
	Plan    *plan.Plan
	Opts    Options

	diags []Diagnostic
}

func (c *Context) add(d Diagnostic) { c.diags = append(c.diags, d) }

// Errorf records an ERROR diagnostic.
func (c *Context) Errorf(code, typeKey, memberKey, format string, args ...any) {
	c.add(Diagnostic{
		Code: code, Severity: Error,
		Message: fmt.Sprintf(format, args...),
		Type:    typeKey, Member: memberKey,
	})
}

// Warnf records a WARNING diagnostic.
func (c *Context) Warnf(code, typeKey, memberKey, format string, args ...any) {
	c.add(Diagnostic{
		Code: code, Severity: Warning,
		Message: fmt.Sprintf(format, args...),
		Type:    typeKey, Member: memberKey,
	})
}

// Infof records an INFO diagnostic.
func (c *Context) Infof(code, typeKey, memberKey, format string, args ...any) {
	c.add(Diagnostic{
		Code: code, Severity: Info,
		Message: fmt.Sprintf(format, args...),
		Type:    typeKey, Member: memberKey,
	})
}

// Severityf records with a severity chosen at the call site. The
// constraint-audit family uses this for its policy-contingent code.
func (c *Context) Severityf(sev Severity, code, typeKey, memberKey, format string, args ...any) {
	c.add(Diagnostic{
		Code: code, Severity: sev,
		Message: fmt.Sprintf(format, args...),
		Type:    typeKey, Member: memberKey,
	})
}

// eachEmittedType visits the types that participate in output, in graph
// order.
func (c *Context) eachEmittedType(fn func(ns *ir.NamespaceSymbol, t *ir.TypeSymbol)) {
	c.Graph.EachType(func(ns *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		if namer.Emittable(t, c.Opts.IncludeInternal) {
			fn(ns, t)
		}
	})
}

// Report assembles the structured result: totals by severity, the
// code→count table, the ordered diagnostic list, and the
// interface-conformance findings grouped per type.
type Report struct {
	Errors   int
	Warnings int
	Infos    int

	// ByCode maps diagnostic code to occurrence count.
	ByCode map[string]int

	// Diagnostics in accumulation order.
	Diagnostics []Diagnostic

	// ConformanceByType groups the IC_* findings by type stable key;
	// ConformanceTypes holds the group keys in sorted order.
	ConformanceByType map[string][]Diagnostic
	ConformanceTypes  []string
}

// Blocked reports whether emission must not proceed. Fail-closed: any
// ERROR blocks, with no configurable threshold.
func (r *Report) Blocked() bool { return r.Errors > 0 }

func (c *Context) buildReport() *Report {
	r := &Report{
		ByCode:            make(map[string]int),
		Diagnostics:       c.diags,
		ConformanceByType: make(map[string][]Diagnostic),
	}
	for _, d := range c.diags {
		switch d.Severity {
		case Error:
			r.Errors++
		case Warning:
			r.Warnings++
		case Info:
			r.Infos++
		}
		r.ByCode[d.Code]++
		if len(d.Code) > 3 && d.Code[:3] == "IC_" {
			if _, seen := r.ConformanceByType[d.Type]; !seen {
				r.ConformanceTypes = append(r.ConformanceTypes, d.Type)
			}
			r.ConformanceByType[d.Type] = append(r.ConformanceByType[d.Type], d)
		}
	}
	sort.Strings(r.ConformanceTypes)
	return r
}
