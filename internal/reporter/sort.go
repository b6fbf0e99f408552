package reporter

import (
	"sort"

	"apichangeguard/internal/models"
)

// Sort orders violations by the fixed key tuple (rule, path, method) so
// output is identical regardless of collection iteration order or which
// file was passed first on the command line. Sorts in place and returns
// the slice for chaining.
func Sort(violations []models.Violation) []models.Violation {
	sort.SliceStable(violations, func(i, j int) bool {
		a, b := violations[i], violations[j]
		if a.Rule != b.Rule {
			return a.Rule < b.Rule
		}
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		return a.Method < b.Method
	})
	return violations
}
