package namer

// Strategy identifies how a name collision was resolved.
type Strategy int

const (
	// StrategyNone means the requested name was free after styling and
	// sanitization.
	StrategyNone Strategy = iota

	// StrategyNumericSuffix means a monotonically increasing numeric
	// suffix was appended ("compare2", "compare3").
	StrategyNumericSuffix

	// StrategyInterfaceSuffix means the source interface's short name
	// was appended ("dispose_IDisposable").
	StrategyInterfaceSuffix
)

// String returns the string representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyNumericSuffix:
		return "numeric-suffix"
	case StrategyInterfaceSuffix:
		return "interface-suffix"
	default:
		return "unknown"
	}
}

// RenameDecision is the immutable audit record of one name resolution
// within one scope. A member reserved in both its class-surface scope
// and a view scope carries two decisions, possibly with different
// final names.
type RenameDecision struct {
	// StableKey is the canonical key of the renamed symbol's stable ID.
	StableKey string

	// Requested is the name asked for, before styling and sanitization.
	Requested string

	// Final is the resolved name that reaches output.
	Final string

	// ClrName is the original CLR display name.
	ClrName string

	// Reason is a human-readable explanation recorded by the caller.
	Reason string

	// Source names the pass or component that made the reservation.
	Source string

	// Strategy is the collision-resolution strategy used.
	Strategy Strategy

	// SuffixIndex is the numeric suffix applied for
	// StrategyNumericSuffix (2, 3, ...), zero otherwise.
	SuffixIndex int

	// ScopeKey is the effective reservation key, including the
	// static/instance side for member scopes.
	ScopeKey string

	// Static marks static-side member decisions.
	Static bool
}
