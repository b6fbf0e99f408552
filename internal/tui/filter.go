package tui

import (
	"sort"
	"strings"

	"apichangeguard/internal/models"
)

// filterState holds current active filters.
type filterState struct {
	Rule       string
	Severity   string
	SearchText string
}

// sortField enumerates columns that can be sorted.
type sortField int

const (
	sortBySeverity sortField = iota
	sortByRule
	sortByPath
)

// sortFieldCount is the total number of sortable columns.
const sortFieldCount = 3

var severityPriority = map[string]int{
	"HIGH": 0, "MEDIUM": 1, "LOW": 2,
}

// applyFilters returns violations matching all active filters.
func applyFilters(violations []models.Violation, f filterState) []models.Violation {
	result := make([]models.Violation, 0, len(violations))
	searchLower := strings.ToLower(f.SearchText)

	for _, v := range violations {
		if f.Rule != "" && string(v.Rule) != f.Rule {
			continue
		}
		if f.Severity != "" && v.Severity != f.Severity {
			continue
		}
		if searchLower != "" && !matchesSearch(v, searchLower) {
			continue
		}
		result = append(result, v)
	}
	return result
}

func matchesSearch(v models.Violation, searchLower string) bool {
	return strings.Contains(strings.ToLower(string(v.Rule)), searchLower) ||
		strings.Contains(strings.ToLower(v.Path), searchLower) ||
		strings.Contains(strings.ToLower(v.Method), searchLower) ||
		strings.Contains(strings.ToLower(v.Severity), searchLower) ||
		strings.Contains(strings.ToLower(v.Message), searchLower)
}

// sortViolations sorts a slice of violations in place by the given field.
func sortViolations(violations []models.Violation, field sortField) {
	sort.SliceStable(violations, func(i, j int) bool {
		switch field {
		case sortBySeverity:
			return severityPriority[violations[i].Severity] < severityPriority[violations[j].Severity]
		case sortByRule:
			return violations[i].Rule < violations[j].Rule
		case sortByPath:
			return violations[i].Path < violations[j].Path
		default:
			return false
		}
	})
}

// uniqueRules returns deduplicated, sorted rule names from violations.
func uniqueRules(violations []models.Violation) []string {
	seen := make(map[string]bool)
	var ruleNames []string
	for _, v := range violations {
		if !seen[string(v.Rule)] {
			seen[string(v.Rule)] = true
			ruleNames = append(ruleNames, string(v.Rule))
		}
	}
	sort.Strings(ruleNames)
	return ruleNames
}

// sortFieldName returns a human-readable name for the sort field.
func sortFieldName(f sortField) string {
	switch f {
	case sortBySeverity:
		return "severity"
	case sortByRule:
		return "rule"
	case sortByPath:
		return "path"
	default:
		return "unknown"
	}
}
