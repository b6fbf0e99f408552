package reporter

import (
	"encoding/json"
	"io"

	"apichangeguard/internal/models"
)

// JSONReporter generates machine-readable JSON reports
type JSONReporter struct {
	writer io.Writer
	pretty bool
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(writer io.Writer, pretty bool) *JSONReporter {
	return &JSONReporter{
		writer: writer,
		pretty: pretty,
	}
}

// Generate writes the violation list as a single JSON array. An empty list
// serializes as [], never null.
func (r *JSONReporter) Generate(violations []models.Violation) error {
	if violations == nil {
		violations = []models.Violation{}
	}

	var data []byte
	var err error

	if r.pretty {
		data, err = json.MarshalIndent(violations, "", "  ")
	} else {
		data, err = json.Marshal(violations)
	}

	if err != nil {
		return err
	}

	_, err = r.writer.Write(data)
	if err != nil {
		return err
	}

	// Add trailing newline for terminal output
	_, err = r.writer.Write([]byte("\n"))
	return err
}
