package locale

import "strings"

// ValidationResult reports every compliance problem found, in a stable order:
// missing required fields first, then rule violations.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateCompliance checks business data against the rules of a locale.
// Fields that are absent or blank are only reported when required; the
// format rules of a field run only when it carries a value.
func ValidateCompliance(data map[string]string, code string) ValidationResult {
	pack := lookupPack(code)
	result := ValidationResult{Valid: true, Errors: []string{}}

	for _, field := range pack.Compliance.RequiredFields {
		if fieldValue(data, field) != "" {
			continue
		}
		label := pack.FieldLabel(field)
		result.Errors = append(result.Errors, localize(
			pack.Code,
			msgComplianceRequired,
			"Le champ « "+label+" » est obligatoire.",
			"label", label,
		))
	}

	for _, rule := range pack.Compliance.Rules {
		value := fieldValue(data, rule.Field)
		if value == "" {
			continue
		}
		if !rule.matches(value) {
			result.Errors = append(result.Errors, rule.Message)
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func (r ComplianceRule) matches(value string) bool {
	switch r.Kind {
	case RulePhone:
		return validPhone(value, r.Region)
	default:
		if r.re == nil {
			return true
		}
		return r.re.MatchString(strings.ToUpper(value))
	}
}

func fieldValue(data map[string]string, field string) string {
	if data == nil {
		return ""
	}
	return strings.TrimSpace(data[field])
}
