package tui

import (
	"fmt"
	"strings"

	"apichangeguard/internal/models"
)

// headerHeight is the number of lines the header occupies, border included.
const headerHeight = 4

// renderHeader shows the compared documents and severity counts.
func renderHeader(meta models.Meta, violations []models.Violation, width int) string {
	bySeverity := map[string]int{}
	for _, v := range violations {
		bySeverity[v.Severity]++
	}

	line1 := fmt.Sprintf("%s (%s)  →  %s (%s)",
		meta.BaselineFile, meta.BaselineVersion,
		meta.CandidateFile, meta.CandidateVersion)

	parts := make([]string, 0, 4)
	parts = append(parts, fmt.Sprintf("%d violations", len(violations)))
	for _, sev := range []string{"HIGH", "MEDIUM", "LOW"} {
		if n := bySeverity[sev]; n > 0 {
			parts = append(parts, severityStyle(sev).Render(fmt.Sprintf("%s: %d", sev, n)))
		}
	}
	line2 := strings.Join(parts, "   ")

	return styleHeader.Width(width - 2).Render(line1 + "\n" + line2)
}
