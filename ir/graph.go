// Package ir defines the immutable symbol graph that the shape, naming,
// plan, and validation stages operate on. The graph is an ordered tree
// Namespace -> Type -> Member addressed by stable IDs, with a
// rebuildable index for O(1) lookup.
//
// Stages never mutate a graph they received: each transformation clones
// the graph wholesale, rewrites its private copy, and hands the result
// forward.
package ir

import "sort"

// NamespaceSymbol holds the ordered types of one CLR namespace.
type NamespaceSymbol struct {
	Name  string
	Types []*TypeSymbol
}

// Clone returns a deep copy.
func (n *NamespaceSymbol) Clone() *NamespaceSymbol {
	out := &NamespaceSymbol{Name: n.Name, Types: make([]*TypeSymbol, len(n.Types))}
	for i, t := range n.Types {
		out.Types[i] = t.Clone()
	}
	return out
}

// SymbolGraph is the root container. Namespaces and types are kept in
// the loader's deterministic sorted order; passes that add members must
// keep insertion order deterministic so two runs over the same export
// produce identical graphs.
type SymbolGraph struct {
	Namespaces []*NamespaceSymbol

	index *Index
}

// Clone returns a deep copy with no index. The caller rebuilds the
// index when it needs lookups; a cloned-then-mutated graph must never
// serve lookups through a stale index.
func (g *SymbolGraph) Clone() *SymbolGraph {
	out := &SymbolGraph{Namespaces: make([]*NamespaceSymbol, len(g.Namespaces))}
	for i, ns := range g.Namespaces {
		out.Namespaces[i] = ns.Clone()
	}
	return out
}

// Sort orders namespaces by name and types by CLR full name. The loader
// calls this once so downstream determinism never depends on export
// file ordering.
func (g *SymbolGraph) Sort() {
	sort.Slice(g.Namespaces, func(i, j int) bool {
		return g.Namespaces[i].Name < g.Namespaces[j].Name
	})
	for _, ns := range g.Namespaces {
		sort.Slice(ns.Types, func(i, j int) bool {
			return ns.Types[i].ID.ClrFullName < ns.Types[j].ID.ClrFullName
		})
	}
	g.index = nil
}

// Index returns the lookup index, rebuilding it if a mutation
// invalidated the cached one.
func (g *SymbolGraph) Index() *Index {
	if g.index == nil {
		g.index = buildIndex(g)
	}
	return g.index
}

// Invalidate drops the cached index. Any pass that adds, removes, or
// renames symbols must call this before handing the graph on.
func (g *SymbolGraph) Invalidate() { g.index = nil }

// EachType visits every type in every namespace, including nested
// types, in deterministic order.
func (g *SymbolGraph) EachType(fn func(ns *NamespaceSymbol, t *TypeSymbol)) {
	for _, ns := range g.Namespaces {
		for _, t := range ns.Types {
			visitType(ns, t, fn)
		}
	}
}

func visitType(ns *NamespaceSymbol, t *TypeSymbol, fn func(*NamespaceSymbol, *TypeSymbol)) {
	fn(ns, t)
	for _, nested := range t.Nested {
		visitType(ns, nested, fn)
	}
}

// FindType resolves a type stable ID through the index. Nil when the
// graph has no such type.
func (g *SymbolGraph) FindType(id TypeStableID) *TypeSymbol {
	return g.Index().TypeByID(id)
}

// ResolveRef resolves a named type reference to its symbol. Nil for
// non-named references or foreign types not present in the graph.
func (g *SymbolGraph) ResolveRef(ref TypeRef) *TypeSymbol {
	if ref.Kind != RefNamed {
		return nil
	}
	return g.FindType(ref.TypeID())
}
