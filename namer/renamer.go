// Package namer is the single authority for every TypeScript identifier
// the pipeline emits. Shape passes and name reservation call into one
// shared Renamer and later retrieve decisions by identical scope keys;
// no other component decides a final name.
//
// Decision storage is keyed by (stable ID, scope key), not by stable ID
// alone. That is what lets the same CLR member resolve to one name on
// the class surface and a different name inside an interface view.
package namer

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/clrdecl/clrdecl/ir"
)

// suffixLimit bounds numeric-suffix probing so reservation terminates
// even on adversarial input.
const suffixLimit = 10000

// Options configures a Renamer from the resolved policy.
type Options struct {
	// TypeTransform is applied to requested type names.
	TypeTransform Transform

	// MemberTransform is applied to requested member names.
	MemberTransform Transform

	// Overrides maps stable-ID keys to exact names that bypass the
	// style transform (they are still sanitized).
	Overrides map[string]string
}

// Renamer is the scoped name-reservation service. Reservation tables
// and the decision log are append-only: names are never revoked and
// decisions are never rewritten.
type Renamer struct {
	opts Options

	// taken maps effective scope key -> final name -> stable key.
	taken map[string]map[string]string

	// decisions maps stable key + "@" + effective scope key to the
	// recorded decision.
	decisions map[string]*RenameDecision

	// order preserves decision insertion order for deterministic
	// listing.
	order []string

	// byID maps stable key -> decision keys, for scope-correspondence
	// checks.
	byID map[string][]string

	// nextSuffix maps effective scope key + "|" + base name to the next
	// numeric suffix. Monotonic; a suffix is never reused even if an
	// earlier one would now be free.
	nextSuffix map[string]int
}

// New constructs an empty Renamer.
func New(opts Options) *Renamer {
	return &Renamer{
		opts:       opts,
		taken:      make(map[string]map[string]string),
		decisions:  make(map[string]*RenameDecision),
		byID:       make(map[string][]string),
		nextSuffix: make(map[string]int),
	}
}

// ReserveTypeName reserves a top-level type name in a namespace scope
// and returns the final name. Reserving the same id+name+scope twice is
// idempotent.
func (r *Renamer) ReserveTypeName(id ir.TypeStableID, requested string, scope Scope, reason, source string) (string, error) {
	if scope.Kind() != ScopeNamespace {
		return "", errors.AssertionFailedf("type name reserved in non-namespace scope %q", scope.Key())
	}
	return r.reserve(id.Key(), requested, requested, scope.Key(), r.opts.TypeTransform, reason, source, false, false, false)
}

// ReserveMemberName reserves a member name, deriving the
// static/instance sub-scope from the base scope, and returns the final
// name. Requested names carrying an explicit-interface qualification
// prefer an interface-suffix disambiguation before falling back to
// numeric suffixes.
func (r *Renamer) ReserveMemberName(id ir.MemberStableID, requested string, base Scope, reason string, static bool, source string) (string, error) {
	if base.Kind() == ScopeNamespace {
		return "", errors.AssertionFailedf("member name reserved in namespace scope %q", base.Key())
	}
	qualified := ir.QualifiedMemberName(requested)
	return r.reserve(id.Key(), requested, requested, base.side(static), r.opts.MemberTransform, reason, source, static, qualified, false)
}

// ReserveExactMemberName reserves a synthesized identifier that is
// already in final form ("asIDisposable"): the style transform is
// skipped, while overrides, sanitization, and collision handling still
// apply.
func (r *Renamer) ReserveExactMemberName(id ir.MemberStableID, requested string, base Scope, reason string, static bool, source string) (string, error) {
	if base.Kind() == ScopeNamespace {
		return "", errors.AssertionFailedf("member name reserved in namespace scope %q", base.Key())
	}
	return r.reserve(id.Key(), requested, requested, base.side(static), r.opts.MemberTransform, reason, source, static, false, true)
}

// GetFinalTypeName returns the name reserved for the type in exactly
// this scope. A missing reservation is a pipeline bug and fails hard.
func (r *Renamer) GetFinalTypeName(id ir.TypeStableID, scope Scope) (string, error) {
	return r.lookup(id.Key(), scope.Key())
}

// GetFinalMemberName returns the name reserved for the member in
// exactly this scope and side. A missing reservation fails hard.
func (r *Renamer) GetFinalMemberName(id ir.MemberStableID, base Scope, static bool) (string, error) {
	return r.lookup(id.Key(), base.side(static))
}

// StyledMemberName returns the collision-free ideal a member request
// would resolve to in an empty scope: style transform plus
// sanitization, no suffixes.
func (r *Renamer) StyledMemberName(requested string) string {
	return SanitizeIdentifier(r.opts.MemberTransform.Apply(ir.UnqualifyMemberName(requested)))
}

// PeekFinalMemberName computes what a reservation for requested in the
// given scope would currently resolve to, without committing it or
// recording a decision. Shape passes use this for collision-avoidance
// lookahead.
func (r *Renamer) PeekFinalMemberName(requested string, base Scope, static bool) string {
	effKey := base.side(static)
	candidate := SanitizeIdentifier(r.opts.MemberTransform.Apply(ir.UnqualifyMemberName(requested)))
	if !r.nameTaken(effKey, candidate) {
		return candidate
	}
	if ir.QualifiedMemberName(requested) {
		if suffixed := candidate + "_" + interfaceShortName(requested); !r.nameTaken(effKey, suffixed) {
			return suffixed
		}
	}
	n := r.nextSuffix[effKey+"|"+candidate]
	if n < 2 {
		n = 2
	}
	for ; n < suffixLimit; n++ {
		if next := candidate + strconv.Itoa(n); !r.nameTaken(effKey, next) {
			return next
		}
	}
	return candidate
}

// IsNameTaken reports whether a final name is already reserved in the
// given scope and side.
func (r *Renamer) IsNameTaken(scope Scope, name string, static bool) bool {
	return r.nameTaken(scope.side(static), name)
}

// ListReservedNames returns the sorted final names reserved in the
// given scope and side.
func (r *Renamer) ListReservedNames(scope Scope, static bool) []string {
	names := r.taken[scope.side(static)]
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Decisions returns every recorded decision in reservation order.
func (r *Renamer) Decisions() []RenameDecision {
	out := make([]RenameDecision, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, *r.decisions[key])
	}
	return out
}

// DecisionsFor returns the decisions recorded for one stable ID, in
// reservation order. Validation uses this to cross-check that a
// member's emit scope and its reservation scopes agree.
func (r *Renamer) DecisionsFor(stableKey string) []RenameDecision {
	keys := r.byID[stableKey]
	out := make([]RenameDecision, 0, len(keys))
	for _, k := range keys {
		out = append(out, *r.decisions[k])
	}
	return out
}

// HasDecision reports whether a decision exists for the stable ID in
// the exact effective scope key.
func (r *Renamer) HasDecision(stableKey, effScopeKey string) bool {
	_, ok := r.decisions[stableKey+"@"+effScopeKey]
	return ok
}

func (r *Renamer) lookup(stableKey, effKey string) (string, error) {
	d, ok := r.decisions[stableKey+"@"+effKey]
	if !ok {
		return "", errors.Newf("no name reserved for %s in scope %s", stableKey, effKey)
	}
	return d.Final, nil
}

func (r *Renamer) nameTaken(effKey, name string) bool {
	_, ok := r.taken[effKey][name]
	return ok
}

func (r *Renamer) claim(effKey, name, stableKey string) {
	scope, ok := r.taken[effKey]
	if !ok {
		scope = make(map[string]string)
		r.taken[effKey] = scope
	}
	scope[name] = stableKey
}

// reserve implements the uniform collision algorithm: override or style
// transform, sanitize, exact attempt, interface-suffix attempt for
// qualified names, then monotonic numeric suffixes. Only the final
// successful resolution produces a RenameDecision.
func (r *Renamer) reserve(stableKey, clrName, requested, effKey string, transform Transform, reason, source string, static, qualified, exact bool) (string, error) {
	decisionKey := stableKey + "@" + effKey
	if existing, ok := r.decisions[decisionKey]; ok {
		if existing.Requested != requested {
			return "", errors.AssertionFailedf(
				"conflicting reservation for %s in scope %s: had %q, got %q",
				stableKey, effKey, existing.Requested, requested)
		}
		return existing.Final, nil
	}

	base := requested
	switch override, ok := r.opts.Overrides[stableKey]; {
	case ok:
		base = override
		qualified = false
	case exact:
		// Already in final form; only sanitization applies.
	default:
		base = transform.Apply(ir.UnqualifyMemberName(requested))
	}
	candidate := SanitizeIdentifier(base)

	final := ""
	strategy := StrategyNone
	suffixIdx := 0

	switch {
	case !r.nameTaken(effKey, candidate):
		final = candidate
	case qualified:
		suffixed := candidate + "_" + interfaceShortName(requested)
		if !r.nameTaken(effKey, suffixed) {
			final = suffixed
			strategy = StrategyInterfaceSuffix
		}
	}

	if final == "" {
		counterKey := effKey + "|" + candidate
		n := r.nextSuffix[counterKey]
		if n < 2 {
			n = 2
		}
		for ; n < suffixLimit; n++ {
			next := candidate + strconv.Itoa(n)
			if !r.nameTaken(effKey, next) {
				final = next
				strategy = StrategyNumericSuffix
				suffixIdx = n
				r.nextSuffix[counterKey] = n + 1
				break
			}
		}
		if final == "" {
			return "", errors.Newf("exhausted %d suffix attempts for %q in scope %s", suffixLimit, candidate, effKey)
		}
	}

	r.claim(effKey, final, stableKey)
	d := &RenameDecision{
		StableKey:   stableKey,
		Requested:   requested,
		Final:       final,
		ClrName:     clrName,
		Reason:      reason,
		Source:      source,
		Strategy:    strategy,
		SuffixIndex: suffixIdx,
		ScopeKey:    effKey,
		Static:      static,
	}
	r.decisions[decisionKey] = d
	r.order = append(r.order, decisionKey)
	r.byID[stableKey] = append(r.byID[stableKey], decisionKey)
	return final, nil
}

// interfaceShortName extracts the interface short name from a
// qualified member name ("System.IDisposable.Dispose" ->
// "IDisposable").
func interfaceShortName(qualified string) string {
	segments := strings.Split(qualified, ".")
	if len(segments) < 2 {
		return ""
	}
	short := segments[len(segments)-2]
	if i := strings.IndexByte(short, '`'); i >= 0 {
		short = short[:i]
	}
	return short
}
