package ir

// Index provides O(1) lookup from stable IDs and CLR full names to
// symbols. Indexes are rebuilt from scratch after structural mutation;
// a partially stale index is never allowed.
type Index struct {
	typesByID    map[string]*TypeSymbol
	typesByName  map[string]*TypeSymbol // CLR full name, first assembly wins
	membersByID  map[string]Member
	memberOwners map[string]*TypeSymbol
	namespaces   map[string]*NamespaceSymbol
}

func buildIndex(g *SymbolGraph) *Index {
	idx := &Index{
		typesByID:    make(map[string]*TypeSymbol),
		typesByName:  make(map[string]*TypeSymbol),
		membersByID:  make(map[string]Member),
		memberOwners: make(map[string]*TypeSymbol),
		namespaces:   make(map[string]*NamespaceSymbol),
	}
	for _, ns := range g.Namespaces {
		idx.namespaces[ns.Name] = ns
	}
	g.EachType(func(_ *NamespaceSymbol, t *TypeSymbol) {
		idx.typesByID[t.ID.Key()] = t
		if _, seen := idx.typesByName[t.ID.ClrFullName]; !seen {
			idx.typesByName[t.ID.ClrFullName] = t
		}
		for _, m := range t.Members() {
			key := m.Base().ID.Key()
			idx.membersByID[key] = m
			idx.memberOwners[key] = t
		}
	})
	return idx
}

// TypeByID resolves a type stable ID. Nil when absent.
func (idx *Index) TypeByID(id TypeStableID) *TypeSymbol {
	return idx.typesByID[id.Key()]
}

// TypeByName resolves a CLR full name regardless of assembly. Nil when
// absent.
func (idx *Index) TypeByName(fullName string) *TypeSymbol {
	return idx.typesByName[fullName]
}

// MemberByID resolves a member stable ID. Nil when absent.
func (idx *Index) MemberByID(id MemberStableID) Member {
	return idx.membersByID[id.Key()]
}

// OwnerOf returns the type declaring the given member. Nil when absent.
func (idx *Index) OwnerOf(id MemberStableID) *TypeSymbol {
	return idx.memberOwners[id.Key()]
}

// Namespace resolves a namespace by name. Nil when absent.
func (idx *Index) Namespace(name string) *NamespaceSymbol {
	return idx.namespaces[name]
}
