// Package validate is the mandatory gate between the shaped, named
// graph and emission. It proves the pipeline's structural invariants
// hold and produces a diagnostic report; any ERROR-severity finding
// blocks emission unconditionally.
//
// The gate never recovers or rewrites the graph. It accumulates every
// finding in a single pass so one run surfaces the complete problem
// list, then the caller makes exactly one fail/continue decision.
package validate

import "fmt"

// Severity classifies a diagnostic.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Diagnostic is one validation finding. Codes are stable across
// releases so CI can compare reports longitudinally.
type Diagnostic struct {
	Code     string
	Severity Severity
	Message  string

	// Type is the stable key of the type the finding concerns, when one
	// applies.
	Type string

	// Member is the stable key of the member the finding concerns, when
	// one applies.
	Member string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Severity, d.Code, d.Message)
}

// Name completeness and uniqueness.
const (
	CodeTypeNameMissing   = "NM_TYPE_NAME_MISSING"
	CodeMemberNameMissing = "NM_MEMBER_NAME_MISSING"
	CodeNameWrongScope    = "NM_WRONG_SCOPE"
	CodeDuplicateTypeName = "NM_DUPLICATE_TYPE"
	CodeDuplicateName     = "NM_DUPLICATE_MEMBER"
	CodeBareReservedWord  = "NM_RESERVED_WORD"
	CodeInvalidIdentifier = "NM_INVALID_IDENT"
)

// View integrity.
const (
	CodeEmptyView       = "VW_EMPTY_VIEW"
	CodeDuplicateView   = "VW_DUPLICATE_VIEW"
	CodeBadViewProperty = "VW_BAD_PROPERTY_NAME"
)

// Scope correspondence and dual-role exclusion.
const (
	CodeScopeMismatch = "SC_SCOPE_MISMATCH"
	CodeEmptyScopeKey = "SC_EMPTY_SCOPE_KEY"
	CodeDualRole      = "SC_DUAL_ROLE"
)

// Finalization sweep.
const (
	CodeUnspecifiedScope    = "FN_UNSPECIFIED_SCOPE"
	CodeViewOnlyNoSource    = "FN_VIEWONLY_NO_SOURCE"
	CodeViewOnlyOrphan      = "FN_VIEWONLY_NOT_IN_VIEW"
	CodeDuplicateViewMember = "FN_DUPLICATE_VIEW_MEMBER"
	CodeViewMemberMissing   = "FN_VIEW_MEMBER_MISSING"
	CodeOmittedNoReason     = "FN_OMITTED_NO_REASON"
)

// Interface conformance.
const (
	CodeConformanceMissing  = "IC_MISSING_MEMBER"
	CodeConformanceMismatch = "IC_SIGNATURE_MISMATCH"
	CodePropertyCovariant   = "IC_PROP_COVARIANT"
)

// Generic constraint audit.
const (
	CodeCtorConstraintLoss    = "PG_CT_001"
	CodeUnresolvedConstraints = "PG_UNRESOLVED"
	CodeConstraintCycle       = "PG_CYCLE_BROKEN"
)

// Import/export completeness.
const (
	CodeMissingImport    = "IM_MISSING_IMPORT"
	CodeUnknownExport    = "IM_UNKNOWN_EXPORT"
	CodeUnmappedExternal = "IM_EXTERNAL_UNMAPPED"
	CodeNonPublicLeak    = "IM_NONPUBLIC_LEAK"
)

// Printer/namer and type-map compliance.
const (
	CodeNamerDisagreement = "PR_NAMER_DISAGREEMENT"
	CodeUnrepresentable   = "PR_UNREPRESENTABLE"
)
