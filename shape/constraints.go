package shape

import (
	"github.com/clrdecl/clrdecl/ir"
)

// constraintClosurePass resolves the generic constraints the loader
// left raw. Resolution is deferred to this point because constraints
// can be self-referential (T : IComparable<T>) and the lookups need the
// completed graph.
//
// The resolver memoizes finished parameters and tracks in-progress
// ones; when resolution re-enters a parameter already being resolved,
// it substitutes a cycle-break sentinel instead of recursing.
type constraintClosurePass struct{}

func (constraintClosurePass) Name() string { return "constraint-closure" }

func (constraintClosurePass) Run(ctx *Context) error {
	r := &constraintResolver{
		graph:      ctx.Graph,
		memo:       make(map[string][]ir.TypeRef),
		inProgress: make(map[string]bool),
	}
	ctx.Graph.EachType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		r.resolveParams(t.ID.Key(), t.GenericParams)
		for _, m := range t.Methods {
			r.resolveParams(m.ID.Key(), m.GenericParams)
		}
	})
	return nil
}

type constraintResolver struct {
	graph      *ir.SymbolGraph
	memo       map[string][]ir.TypeRef
	inProgress map[string]bool
}

// resolveParams resolves a parameter list in place and marks each
// parameter resolved.
func (r *constraintResolver) resolveParams(ownerKey string, params []ir.GenericParam) {
	scope := make(map[string]*ir.GenericParam, len(params))
	for i := range params {
		scope[params[i].Name] = &params[i]
	}
	for i := range params {
		p := &params[i]
		if p.ConstraintsResolved {
			continue
		}
		p.Resolved = r.resolveParam(ownerKey, p, scope)
		p.ConstraintsResolved = true
	}
}

func (r *constraintResolver) resolveParam(ownerKey string, p *ir.GenericParam, scope map[string]*ir.GenericParam) []ir.TypeRef {
	key := ownerKey + ":" + p.Name
	if cached, ok := r.memo[key]; ok {
		return cloneAll(cached)
	}
	if r.inProgress[key] {
		return []ir.TypeRef{ir.CycleBreakRef("$" + p.Name)}
	}
	r.inProgress[key] = true
	defer delete(r.inProgress, key)

	out := make([]ir.TypeRef, 0, len(p.RawConstraints))
	for _, raw := range p.RawConstraints {
		out = append(out, r.resolveRef(ownerKey, raw, scope))
	}
	r.memo[key] = cloneAll(out)
	return out
}

// resolveRef walks one constraint reference. Generic-parameter
// arguments drive resolution of their own constraint sets — that is
// where T : IComparable<T> re-enters itself — but the argument keeps
// its parameter form unless a cycle forces the sentinel.
func (r *constraintResolver) resolveRef(ownerKey string, ref ir.TypeRef, scope map[string]*ir.GenericParam) ir.TypeRef {
	out := ref.Clone()
	switch ref.Kind {
	case ir.RefGenericParam:
		target, ok := scope[ref.ParamName]
		if !ok {
			return out
		}
		resolved := r.resolveParam(ownerKey, target, scope)
		if len(resolved) == 1 && resolved[0].Kind == ir.RefCycleBreak {
			return resolved[0]
		}
		return out
	case ir.RefNamed:
		for i, arg := range out.TypeArgs {
			out.TypeArgs[i] = r.resolveRef(ownerKey, arg, scope)
		}
		return out
	case ir.RefArray:
		if out.Elem != nil {
			resolved := r.resolveRef(ownerKey, *out.Elem, scope)
			out.Elem = &resolved
		}
		return out
	default:
		return out
	}
}

func cloneAll(refs []ir.TypeRef) []ir.TypeRef {
	out := make([]ir.TypeRef, len(refs))
	for i, ref := range refs {
		out[i] = ref.Clone()
	}
	return out
}
