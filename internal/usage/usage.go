// Package usage builds a lookup index of observed API traffic from an
// optional usage-log file. Each log record identifies one called endpoint;
// records fold into aggregate counts per (path, method).
package usage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one usage-log entry. Count defaults to 1 when omitted.
type Record struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Count  *int   `json:"count,omitempty"`
}

type key struct {
	path   string
	method string
}

// Index maps (path, method) to an observed call count. The zero value is
// an empty index: every lookup answers absent.
type Index struct {
	counts map[key]int
}

// LogParseError reports a usage-log file that is present but malformed.
type LogParseError struct {
	File string
	Err  error
}

func (e *LogParseError) Error() string {
	return fmt.Sprintf("failed to parse usage log %s: %v", e.File, e.Err)
}

func (e *LogParseError) Unwrap() error { return e.Err }

// Load reads a usage-log file and aggregates its records. The file is JSON:
// either a top-level array of records or a stream of records, one object
// after another.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read usage log: %w", err)
	}

	records, err := parseRecords(data)
	if err != nil {
		return nil, &LogParseError{File: path, Err: err}
	}

	idx := &Index{counts: make(map[key]int, len(records))}
	for i, r := range records {
		if r.Path == "" || r.Method == "" {
			return nil, &LogParseError{
				File: path,
				Err:  fmt.Errorf("record %d: missing path or method", i),
			}
		}
		n := 1
		if r.Count != nil {
			if *r.Count < 0 {
				return nil, &LogParseError{
					File: path,
					Err:  fmt.Errorf("record %d: negative count %d", i, *r.Count),
				}
			}
			n = *r.Count
		}
		idx.counts[key{path: r.Path, method: strings.ToUpper(r.Method)}] += n
	}

	return idx, nil
}

func parseRecords(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	// Stream of objects (JSON lines or concatenated documents).
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	var records []Record
	for {
		var r Record
		if err := dec.Decode(&r); err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// WasUsed reports whether the recorded count for (path, method) is
// greater than zero.
func (i *Index) WasUsed(path, method string) bool {
	return i.Count(path, method) > 0
}

// Count returns the aggregate observed call count for (path, method),
// zero when absent.
func (i *Index) Count(path, method string) int {
	if i == nil || i.counts == nil {
		return 0
	}
	return i.counts[key{path: path, method: strings.ToUpper(method)}]
}

// Len returns the number of distinct (path, method) keys observed.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.counts)
}
