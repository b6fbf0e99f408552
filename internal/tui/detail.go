package tui

import (
	"fmt"
	"strings"

	"apichangeguard/internal/models"
)

// detailHeight is the fixed number of lines for the detail panel.
const detailHeight = 5

// renderDetail produces the detail view for a selected violation.
func renderDetail(v *models.Violation, width int) string {
	if v == nil {
		return styleDetailPanel.Width(width).Render("No violation selected")
	}

	var b strings.Builder

	sevStyled := severityStyle(v.Severity).Render(v.Severity)
	b.WriteString(fmt.Sprintf("%s  %s\n", sevStyled, v.Rule))
	if v.Path != "" {
		b.WriteString(fmt.Sprintf("Endpoint: %s %s\n", v.Method, v.Path))
	}
	b.WriteString(fmt.Sprintf("Message: %s\n", v.Message))

	if param, ok := v.Object["parameter"].(string); ok {
		if oldType, ok2 := v.Object["old_type"].(string); ok2 {
			b.WriteString(fmt.Sprintf("Parameter: %s (%s -> %v)", param, oldType, v.Object["new_type"]))
		} else {
			b.WriteString(fmt.Sprintf("Parameter: %s", param))
		}
	} else if count, ok := v.Object["usage_count"].(int); ok {
		b.WriteString(fmt.Sprintf("Observed calls: %d", count))
	}

	return styleDetailPanel.Width(width).Render(b.String())
}
