package reporter

import (
	"fmt"
	"io"

	"apichangeguard/internal/models"
)

// TextReporter generates human-readable text reports
type TextReporter struct {
	writer io.Writer
}

// NewTextReporter creates a new text reporter
func NewTextReporter(writer io.Writer) *TextReporter {
	return &TextReporter{
		writer: writer,
	}
}

// Generate creates a text report from a sorted violation list.
func (r *TextReporter) Generate(violations []models.Violation, meta models.Meta) error {
	r.printHeader()

	r.printf("Baseline:  %s (%s)\n", meta.BaselineFile, meta.BaselineVersion)
	r.printf("Candidate: %s (%s)\n\n", meta.CandidateFile, meta.CandidateVersion)

	if len(violations) == 0 {
		r.printf("No compatibility violations detected.\n")
		return nil
	}

	r.printf("Violations:\n")
	r.printf("--------------------------------------------------\n")
	for _, v := range violations {
		if v.Path != "" {
			r.printf("  [%s] %s - %s %s: %s\n", v.Severity, v.Rule, v.Method, v.Path, v.Message)
		} else {
			r.printf("  [%s] %s - %s\n", v.Severity, v.Rule, v.Message)
		}
	}
	r.printf("\n")

	bySeverity := map[string]int{}
	for _, v := range violations {
		bySeverity[v.Severity]++
	}

	r.printf("Total: %d", len(violations))
	for _, sev := range []string{models.SeverityHigh, models.SeverityMedium, models.SeverityLow} {
		if n := bySeverity[sev]; n > 0 {
			r.printf("   %s: %d", sev, n)
		}
	}
	r.printf("\n")

	return nil
}

// printHeader prints the report header
func (r *TextReporter) printHeader() {
	r.printf("╔════════════════════════════════════════════╗\n")
	r.printf("║       API Change Guard Compatibility       ║\n")
	r.printf("╚════════════════════════════════════════════╝\n\n")
}

// printf is a helper for formatted output
func (r *TextReporter) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.writer, format, args...)
}
