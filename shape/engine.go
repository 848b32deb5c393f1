// Package shape rewrites the raw CLR symbol graph into one that
// TypeScript's structural, single-surface type model can represent,
// recording why every placement decision was made.
//
// The engine is an ordered sequence of pure graph-to-graph passes.
// Ordering is load-bearing: each pass's contract assumes specific
// earlier passes have already run (conformance analysis must see the
// unflattened interface hierarchy, deduplication must run after
// flattening and synthesis, the constraint closure needs the completed
// graph). Passes never throw for representability gaps; they record a
// placement and a provenance tag instead. Only structurally impossible
// states escalate, and only the validation gate turns modeling gaps
// into hard errors.
package shape

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/clrdecl/clrdecl/ir"
	"github.com/clrdecl/clrdecl/namer"
)

// conformanceCacheSize bounds the structural-conformance memo. Entries
// are recomputable, so eviction is safe.
const conformanceCacheSize = 4096

// Pass is one graph transformation step.
type Pass interface {
	// Name returns the pass identifier used in logs and rename
	// decisions.
	Name() string

	// Run transforms ctx.Graph in place. The engine hands each pass a
	// private clone, so mutation here never leaks backward.
	Run(ctx *Context) error
}

// Context carries the shared state of one engine run.
type Context struct {
	Graph   *ir.SymbolGraph
	Renamer *namer.Renamer
	Log     *zap.SugaredLogger

	// ifaceClosure maps an interface's type key to its transitive
	// inherited-interface references, in declaration order. Built by
	// the interface index pass from the unflattened hierarchy.
	ifaceClosure map[string][]ir.TypeRef

	// declared maps an interface's type key to clones of its declared
	// (not inherited) members, snapshotted before inlining.
	declared map[string][]ir.Member

	// conformance memoizes per-(type, interface) lists of unsatisfied
	// declared-member keys.
	conformance *lru.Cache[string, []string]

	// staticCollisions records (type key, name) pairs where static and
	// instance surfaces share a name. Informational; the naming scopes
	// keep these legal.
	staticCollisions []StaticCollision
}

// StaticCollision is one static/instance name overlap.
type StaticCollision struct {
	TypeKey string
	Name    string
}

// Engine applies the canonical pass sequence.
type Engine struct {
	passes []Pass
	log    *zap.SugaredLogger
}

// NewEngine builds an engine with the canonical pass order.
func NewEngine(log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{
		log: log,
		passes: []Pass{
			&interfaceIndexPass{},
			&conformancePass{},
			&inlineInterfacesPass{},
			&explicitImplPass{},
			&diamondPass{},
			&baseOverloadPass{},
			&staticCollisionPass{},
			&indexerPlanPass{},
			&hiddenMemberPass{},
			&indexerSweepPass{},
			&surfaceDedupPass{},
			&constraintClosurePass{},
			&returnConflictPass{},
			&viewPlanPass{},
			&memberDedupPass{},
		},
	}
}

// Passes returns the ordered pass names.
func (e *Engine) Passes() []string {
	names := make([]string, len(e.passes))
	for i, p := range e.passes {
		names[i] = p.Name()
	}
	return names
}

// Run applies every pass in order and returns the shaped graph. The
// input graph is never mutated; each pass works on a fresh clone of the
// previous pass's output.
func (e *Engine) Run(g *ir.SymbolGraph, rn *namer.Renamer) (*ir.SymbolGraph, error) {
	cache, err := lru.New[string, []string](conformanceCacheSize)
	if err != nil {
		return nil, err
	}
	ctx := &Context{
		Renamer:     rn,
		Log:         e.log,
		conformance: cache,
	}
	current := g
	for _, p := range e.passes {
		next := current.Clone()
		ctx.Graph = next
		if err := p.Run(ctx); err != nil {
			return nil, err
		}
		next.Invalidate()
		e.log.Debugw("shape pass complete", "pass", p.Name())
		current = next
	}
	return current, nil
}

// StaticCollisions returns the collisions observed by the last run of
// the static-collision analysis pass.
func (c *Context) StaticCollisions() []StaticCollision { return c.staticCollisions }
