package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"apichangeguard/internal/models"
)

var tableColumns = []table.Column{
	{Title: "Severity", Width: 10},
	{Title: "Rule", Width: 22},
	{Title: "Path", Width: 24},
	{Title: "Method", Width: 8},
	{Title: "Message", Width: 40},
}

// buildRows converts violations to table rows.
func buildRows(violations []models.Violation) []table.Row {
	rows := make([]table.Row, 0, len(violations))
	for _, v := range violations {
		rows = append(rows, table.Row{
			v.Severity,
			string(v.Rule),
			truncate(v.Path, tableColumns[2].Width),
			v.Method,
			truncate(v.Message, tableColumns[4].Width),
		})
	}
	return rows
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	const ellipsis = "..."
	if maxLen <= len(ellipsis) {
		return s[:maxLen]
	}
	return s[:maxLen-len(ellipsis)] + ellipsis
}

// newTable creates a bubbles table with standard columns and styling.
func newTable(rows []table.Row, height int) table.Model {
	t := table.New(
		table.WithColumns(tableColumns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorAccent).
		Bold(false)
	t.SetStyles(s)

	return t
}
