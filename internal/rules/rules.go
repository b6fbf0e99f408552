// Package rules classifies raw diff changes into compatibility violations.
package rules

import (
	"fmt"

	"apichangeguard/internal/diff"
	"apichangeguard/internal/models"
	"apichangeguard/internal/usage"
)

// Classify maps each raw change to at most one violation per the rule
// table, escalating ENDPOINT_REMOVED with usage evidence. Additive changes
// produce no violation here; they feed the semver auditor.
func Classify(changes []diff.Change, idx *usage.Index, meta models.Meta) []models.Violation {
	var violations []models.Violation

	for _, c := range changes {
		switch c.Kind {
		case diff.KindEndpointRemoved:
			used := idx.WasUsed(c.Path, c.Method)
			obj := meta.Evidence()
			if used {
				obj["usage_count"] = idx.Count(c.Path, c.Method)
			}
			violations = append(violations, models.Violation{
				Rule:     models.RuleEndpointRemoved,
				Path:     c.Path,
				Method:   c.Method,
				Message:  fmt.Sprintf("endpoint removed: %s %s", c.Method, c.Path),
				Severity: models.Escalate(models.SeverityMedium, used),
				Object:   obj,
			})

		case diff.KindParamAdded:
			if !c.Required {
				continue
			}
			obj := meta.Evidence()
			obj["parameter"] = c.Param
			violations = append(violations, models.Violation{
				Rule:     models.RuleParamRequiredAdded,
				Path:     c.Path,
				Method:   c.Method,
				Message:  fmt.Sprintf("required parameter added: %s", c.Param),
				Severity: models.SeverityHigh,
				Object:   obj,
			})

		case diff.KindParamRequiredChanged:
			if !c.Required {
				// required -> optional is a relaxation
				continue
			}
			obj := meta.Evidence()
			obj["parameter"] = c.Param
			violations = append(violations, models.Violation{
				Rule:     models.RuleParamRequiredAdded,
				Path:     c.Path,
				Method:   c.Method,
				Message:  fmt.Sprintf("required parameter added: %s", c.Param),
				Severity: models.SeverityHigh,
				Object:   obj,
			})

		case diff.KindParamTypeChanged:
			obj := meta.Evidence()
			obj["parameter"] = c.Param
			obj["old_type"] = c.OldType
			obj["new_type"] = c.NewType
			violations = append(violations, models.Violation{
				Rule:     models.RuleParamTypeChanged,
				Path:     c.Path,
				Method:   c.Method,
				Message:  fmt.Sprintf("parameter type changed: %s (%s -> %s)", c.Param, c.OldType, c.NewType),
				Severity: models.SeverityHigh,
				Object:   obj,
			})

		case diff.KindResponseRemoved:
			if c.StatusCode != 200 {
				continue
			}
			obj := meta.Evidence()
			obj["status_code"] = c.StatusCode
			violations = append(violations, models.Violation{
				Rule:     models.RuleResponse200Removed,
				Path:     c.Path,
				Method:   c.Method,
				Message:  "success response removed: 200",
				Severity: models.SeverityHigh,
				Object:   obj,
			})
		}
	}

	return violations
}
