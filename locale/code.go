package locale

import (
	"database/sql"
	"strings"
)

// Code identifies one of the supported country/language variants.
type Code string

const (
	FrBE Code = "fr-BE"
	FrFR Code = "fr-FR"
	FrCH Code = "fr-CH"
)

// DefaultCode is the locale every untrusted or unknown value degrades to.
const DefaultCode = FrBE

// supportedCodes keeps the registry order stable for enumeration.
var supportedCodes = []Code{FrBE, FrFR, FrCH}

// IsValidLocaleCode reports whether code is exactly one of the supported locale codes.
// It is the only gate external or persisted locale strings go through.
func IsValidLocaleCode(code string) bool {
	for _, candidate := range supportedCodes {
		if string(candidate) == code {
			return true
		}
	}
	return false
}

// Codes returns every supported locale code in registry order.
func Codes() []Code {
	out := make([]Code, len(supportedCodes))
	copy(out, supportedCodes)
	return out
}

// ParseCode is the lenient variant of IsValidLocaleCode used for operator input
// (config files, flags): it trims, accepts "_" separators and ignores case.
func ParseCode(raw string) (Code, bool) {
	normalized := normalizeLocale(raw)
	if normalized == "" {
		return DefaultCode, false
	}
	for _, candidate := range supportedCodes {
		if strings.EqualFold(string(candidate), normalized) {
			return candidate, true
		}
	}
	return DefaultCode, false
}

// GetQuoteLocale resolves a locale value read back from a persisted record.
// nil, empty, malformed or unknown values all resolve to DefaultCode.
func GetQuoteLocale(value any) Code {
	raw, ok := persistedString(value)
	if !ok || !IsValidLocaleCode(raw) {
		return DefaultCode
	}
	return Code(raw)
}

// GetQuoteLocalePack returns the pack for a persisted locale value, see GetQuoteLocale.
func GetQuoteLocalePack(value any) Pack {
	return GetLocalePack(string(GetQuoteLocale(value)))
}

func persistedString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case Code:
		return string(v), true
	case *Code:
		if v == nil {
			return "", false
		}
		return string(*v), true
	case []byte:
		return string(v), true
	case sql.NullString:
		return v.String, v.Valid
	case *sql.NullString:
		if v == nil {
			return "", false
		}
		return v.String, v.Valid
	default:
		return "", false
	}
}

// normalizeLocale replaces underscores with hyphens and trims whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}
