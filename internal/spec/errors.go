package spec

import (
	"fmt"
	"strings"
)

// InvalidSpecError reports a document that does not fit the spec model:
// missing version, malformed structure, or duplicate keys.
type InvalidSpecError struct {
	File   string
	Errors []string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid spec %s:\n  - %s", e.File, strings.Join(e.Errors, "\n  - "))
}

// InvalidVersionError reports a version field that is not a semantic version.
type InvalidVersionError struct {
	File    string
	Version string
	Err     error
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version %q in %s: %v", e.Version, e.File, e.Err)
}

func (e *InvalidVersionError) Unwrap() error { return e.Err }
