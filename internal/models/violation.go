package models

// Rule identifies a compatibility rule
type Rule string

const (
	RuleEndpointRemoved    Rule = "ENDPOINT_REMOVED"
	RuleParamRequiredAdded Rule = "PARAM_REQUIRED_ADDED"
	RuleParamTypeChanged   Rule = "PARAM_TYPE_CHANGED"
	RuleResponse200Removed Rule = "RESPONSE_200_REMOVED"
	RuleSemverMismatch     Rule = "SEMVER_MISMATCH"
)

// Severity levels for violations
const (
	SeverityLow    = "LOW"
	SeverityMedium = "MEDIUM"
	SeverityHigh   = "HIGH"
)

// Violation is the atomic unit of the compatibility report.
// Path and Method are empty for document-level rules like SEMVER_MISMATCH.
type Violation struct {
	Rule     Rule                   `json:"rule"`
	Path     string                 `json:"path"`
	Method   string                 `json:"method"`
	Message  string                 `json:"message"`
	Severity string                 `json:"severity"`
	Object   map[string]interface{} `json:"object"`
}

// Meta identifies the two documents under comparison. Every violation's
// evidence object carries these four fields.
type Meta struct {
	BaselineFile     string
	CandidateFile    string
	BaselineVersion  string
	CandidateVersion string
}

// Evidence builds the base evidence object for a violation.
func (m Meta) Evidence() map[string]interface{} {
	return map[string]interface{}{
		"baseline_file":     m.BaselineFile,
		"candidate_file":    m.CandidateFile,
		"baseline_version":  m.BaselineVersion,
		"candidate_version": m.CandidateVersion,
	}
}

// Escalate raises a base severity when the affected endpoint has observed
// traffic. Kept separate from rule detection so escalation policy can
// change without touching diff logic.
func Escalate(base string, used bool) string {
	if !used {
		return base
	}
	switch base {
	case SeverityLow:
		return SeverityMedium
	case SeverityMedium:
		return SeverityHigh
	default:
		return base
	}
}

// KnownRule reports whether r is a recognized member of the rule set.
func KnownRule(r Rule) bool {
	switch r {
	case RuleEndpointRemoved, RuleParamRequiredAdded,
		RuleParamTypeChanged, RuleResponse200Removed, RuleSemverMismatch:
		return true
	}
	return false
}
