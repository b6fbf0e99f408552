// Package audit verifies that the declared version bump between baseline
// and candidate is at least as large as the detected changes require.
package audit

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"apichangeguard/internal/diff"
	"apichangeguard/internal/models"
	"apichangeguard/internal/spec"
)

// Bump is a version-bump level, ordered none < patch < minor < major.
type Bump int

const (
	BumpNone Bump = iota
	BumpPatch
	BumpMinor
	BumpMajor
)

func (b Bump) String() string {
	switch b {
	case BumpMajor:
		return "major"
	case BumpMinor:
		return "minor"
	case BumpPatch:
		return "patch"
	default:
		return "none"
	}
}

// Required derives the minimum bump level from the detected changes:
// any breaking change forces major; else any additive surface change
// forces minor; else patch suffices. No changes require no bump.
func Required(changes []diff.Change) Bump {
	if len(changes) == 0 {
		return BumpNone
	}
	required := BumpPatch
	for _, c := range changes {
		if breaking(c) {
			return BumpMajor
		}
		if additive(c) {
			required = BumpMinor
		}
	}
	return required
}

func breaking(c diff.Change) bool {
	switch c.Kind {
	case diff.KindEndpointRemoved, diff.KindParamTypeChanged:
		return true
	case diff.KindParamAdded, diff.KindParamRequiredChanged:
		return c.Required
	case diff.KindResponseRemoved:
		return c.StatusCode == 200
	}
	return false
}

func additive(c diff.Change) bool {
	switch c.Kind {
	case diff.KindEndpointAdded, diff.KindResponseAdded:
		return true
	case diff.KindParamAdded:
		return !c.Required
	}
	return false
}

// Actual computes which version component increased from baseline to
// candidate. Resolution guarantees the candidate is not lower, so equal
// versions yield none.
func Actual(baseline, candidate string) (Bump, error) {
	vb, err := semver.NewVersion(baseline)
	if err != nil {
		return BumpNone, fmt.Errorf("baseline version: %w", err)
	}
	vc, err := semver.NewVersion(candidate)
	if err != nil {
		return BumpNone, fmt.Errorf("candidate version: %w", err)
	}

	switch {
	case vc.Major() > vb.Major():
		return BumpMajor, nil
	case vc.Minor() > vb.Minor():
		return BumpMinor, nil
	case vc.Patch() > vb.Patch():
		return BumpPatch, nil
	default:
		return BumpNone, nil
	}
}

// Audit compares the required bump against the actual one and returns a
// SEMVER_MISMATCH violation when the actual bump falls short, nil
// otherwise. Over-bumping is always allowed.
func Audit(changes []diff.Change, pair spec.Pair, meta models.Meta) (*models.Violation, error) {
	required := Required(changes)
	actual, err := Actual(pair.Baseline.Version, pair.Candidate.Version)
	if err != nil {
		return nil, err
	}

	if actual >= required {
		return nil, nil
	}

	msg := fmt.Sprintf("expected %s got %s", required, actual)
	if actual == BumpNone {
		msg = fmt.Sprintf("expected %s", required)
	}

	obj := meta.Evidence()
	obj["required_bump"] = required.String()
	obj["actual_bump"] = actual.String()

	return &models.Violation{
		Rule:     models.RuleSemverMismatch,
		Path:     "",
		Method:   "",
		Message:  msg,
		Severity: models.SeverityHigh,
		Object:   obj,
	}, nil
}
