// Package plan turns a shaped, named symbol graph into an emission
// plan: which declarations each namespace file exports, which names it
// imports from sibling namespaces, and the deterministic order
// everything is written in. The plan also records every named reference
// that escapes the emitted set so the validation gate can decide
// whether the escape is a mapped builtin or a genuine hole.
package plan

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/clrdecl/clrdecl/ir"
	"github.com/clrdecl/clrdecl/namer"
)

// Import is one cross-namespace dependency edge of a namespace file.
type Import struct {
	// From and To are namespace names.
	From string
	To   string

	// Names are the emit names pulled from To, sorted.
	Names []string
}

// NamespacePlan describes one output file.
type NamespacePlan struct {
	Name     string
	FileName string

	// Types in emission order (sorted by emit name). Nested types are
	// flattened into their namespace's file.
	Types []*ir.TypeSymbol

	// Imports sorted by target namespace.
	Imports []Import
}

// Plan is the complete emission plan for one run.
type Plan struct {
	// Namespaces in file order.
	Namespaces []*NamespacePlan

	// Exports maps namespace name to its sorted exported emit names.
	Exports map[string][]string

	// External holds every named reference whose target is outside the
	// emitted set, in discovery order. The validation gate classifies
	// these against the builtin type map.
	External []RefSite
}

// Options configures plan construction.
type Options struct {
	IncludeInternal bool
}

// Build computes the emission plan. The graph must already be shaped
// and named; an emitted type without a final name is a pipeline
// ordering bug, not input data, and fails hard.
func Build(g *ir.SymbolGraph, opts Options) (*Plan, error) {
	emitted := make(map[string]emittedType)
	byNamespace := make(map[string]*NamespacePlan)
	var nsOrder []string

	var nameErr error
	g.EachType(func(ns *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		if nameErr != nil || !namer.Emittable(t, opts.IncludeInternal) {
			return
		}
		if t.TsEmitName == "" {
			nameErr = errors.AssertionFailedf(
				"type %s reached planning without a final name", t.ID.Key())
			return
		}
		emitted[t.ID.Key()] = emittedType{namespace: ns.Name, emitName: t.TsEmitName}
		np, ok := byNamespace[ns.Name]
		if !ok {
			np = &NamespacePlan{Name: ns.Name, FileName: ns.Name + ".d.ts"}
			byNamespace[ns.Name] = np
			nsOrder = append(nsOrder, ns.Name)
		}
		np.Types = append(np.Types, t)
	})
	if nameErr != nil {
		return nil, nameErr
	}

	p := &Plan{Exports: make(map[string][]string)}
	c := &collector{emitted: emitted}

	sort.Strings(nsOrder)
	for _, name := range nsOrder {
		np := byNamespace[name]
		sort.Slice(np.Types, func(i, j int) bool {
			return np.Types[i].TsEmitName < np.Types[j].TsEmitName
		})

		imports := make(map[string]map[string]bool)
		for _, t := range np.Types {
			c.collectType(np.Name, t, imports)
		}
		np.Imports = sortedImports(np.Name, imports)

		p.Namespaces = append(p.Namespaces, np)
		for _, t := range np.Types {
			p.Exports[name] = append(p.Exports[name], t.TsEmitName)
		}
		sort.Strings(p.Exports[name])
	}
	p.External = c.external
	return p, nil
}

type emittedType struct {
	namespace string
	emitName  string
}

func sortedImports(from string, imports map[string]map[string]bool) []Import {
	targets := make([]string, 0, len(imports))
	for to := range imports {
		targets = append(targets, to)
	}
	sort.Strings(targets)

	out := make([]Import, 0, len(targets))
	for _, to := range targets {
		names := make([]string, 0, len(imports[to]))
		for n := range imports[to] {
			names = append(names, n)
		}
		sort.Strings(names)
		out = append(out, Import{From: from, To: to, Names: names})
	}
	return out
}
