package spec

import (
	"github.com/Masterminds/semver/v3"
)

// Pair is the result of baseline/candidate resolution: a tagged pair that
// every later stage consumes instead of positional argument order.
type Pair struct {
	Baseline  *Document
	Candidate *Document
}

// Resolve decides which of two documents is the baseline by comparing their
// declared versions: the lower version is the baseline. Equal versions fall
// back to lexical order of the file paths so repeated runs with swapped
// arguments always produce the same assignment.
func Resolve(a, b *Document) (Pair, error) {
	va, err := semver.NewVersion(a.Version)
	if err != nil {
		return Pair{}, &InvalidVersionError{File: a.File, Version: a.Version, Err: err}
	}
	vb, err := semver.NewVersion(b.Version)
	if err != nil {
		return Pair{}, &InvalidVersionError{File: b.File, Version: b.Version, Err: err}
	}

	switch cmp := va.Compare(vb); {
	case cmp < 0:
		return Pair{Baseline: a, Candidate: b}, nil
	case cmp > 0:
		return Pair{Baseline: b, Candidate: a}, nil
	default:
		if a.File <= b.File {
			return Pair{Baseline: a, Candidate: b}, nil
		}
		return Pair{Baseline: b, Candidate: a}, nil
	}
}
