package locale

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// FormatLocalePhone formats raw in international notation, reading national
// numbers in the country of pack. Input that does not parse as a phone
// number is returned trimmed and otherwise unchanged.
func FormatLocalePhone(raw string, pack Pack) string {
	return pack.FormatPhone(raw)
}

// FormatPhone is FormatLocalePhone bound to p
func (p Pack) FormatPhone(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return value
	}

	number, err := phonenumbers.Parse(value, p.CountryCode)
	if err != nil {
		return value
	}
	if !phonenumbers.IsPossibleNumber(number) && !phonenumbers.IsValidNumber(number) {
		return value
	}

	formatted := phonenumbers.Format(number, phonenumbers.INTERNATIONAL)
	if formatted == "" {
		return value
	}
	return formatted
}

func validPhone(value, region string) bool {
	number, err := phonenumbers.Parse(value, region)
	if err != nil {
		return false
	}
	if !phonenumbers.IsValidNumber(number) {
		return false
	}
	return phonenumbers.GetRegionCodeForNumber(number) == region
}
