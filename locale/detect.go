package locale

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// Hints are the optional signals DetectLocale looks at. Empty fields are skipped.
type Hints struct {
	VATNumber     string `json:"vatNumber,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	Country       string `json:"country,omitempty"`
	BrowserLocale string `json:"browserLocale,omitempty"`
}

var (
	frenchPostalCode  = regexp.MustCompile(`^\d{5}$`)
	belgianPostalCode = regexp.MustCompile(`^\d{4}$`)
)

// countrySynonyms maps lowercased country names, in the languages a French
// speaking user is likely to type, to a locale.
var countrySynonyms = map[string]Code{
	"be":                   FrBE,
	"bel":                  FrBE,
	"belgique":             FrBE,
	"belgium":              FrBE,
	"belgie":               FrBE,
	"belgië":               FrBE,
	"belgien":              FrBE,
	"fr":                   FrFR,
	"fra":                  FrFR,
	"france":               FrFR,
	"frankreich":           FrFR,
	"ch":                   FrCH,
	"che":                  FrCH,
	"suisse":               FrCH,
	"switzerland":          FrCH,
	"schweiz":              FrCH,
	"svizzera":             FrCH,
	"confédération suisse": FrCH,
}

// DetectLocale infers the locale from whatever the caller knows about a client.
// Signals are tried from the most to the least reliable: VAT number prefix,
// country name, postal code shape and finally the browser language.
func DetectLocale(h Hints) Code {
	if code, ok := detectFromVAT(h.VATNumber); ok {
		return code
	}
	if code, ok := detectFromCountry(h.Country); ok {
		return code
	}
	if code, ok := detectFromPostalCode(h.PostalCode); ok {
		return code
	}
	if code, ok := detectFromBrowser(h.BrowserLocale); ok {
		return code
	}
	return DefaultCode
}

func detectFromVAT(vat string) (Code, bool) {
	vat = strings.ToUpper(strings.TrimSpace(vat))
	switch {
	case vat == "":
		return "", false
	case strings.HasPrefix(vat, "BE"):
		return FrBE, true
	case strings.HasPrefix(vat, "FR"):
		return FrFR, true
	case strings.HasPrefix(vat, "CHE"):
		return FrCH, true
	}
	return "", false
}

func detectFromCountry(country string) (Code, bool) {
	country = strings.ToLower(strings.TrimSpace(country))
	if country == "" {
		return "", false
	}
	code, ok := countrySynonyms[country]
	return code, ok
}

// detectFromPostalCode also understands the "B-1000", "F-75001" and
// "CH-1200" prefixes still common on letterheads.
func detectFromPostalCode(postal string) (Code, bool) {
	postal = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(postal), " ", ""))
	if postal == "" {
		return "", false
	}
	if prefix, rest, found := strings.Cut(postal, "-"); found {
		switch prefix {
		case "B", "BE":
			return FrBE, belgianPostalCode.MatchString(rest)
		case "F", "FR":
			return FrFR, frenchPostalCode.MatchString(rest)
		case "CH":
			return FrCH, belgianPostalCode.MatchString(rest)
		}
		return "", false
	}
	switch {
	case frenchPostalCode.MatchString(postal):
		return FrFR, true
	case belgianPostalCode.MatchString(postal):
		// Swiss codes are also four digits; Belgium wins the tie.
		return FrBE, true
	}
	return "", false
}

func detectFromBrowser(header string) (Code, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		tag, perr := language.Parse(normalizeLocale(header))
		if perr != nil {
			return "", false
		}
		tags = []language.Tag{tag}
	}
	for _, tag := range tags {
		if code, ok := codeForTag(tag); ok {
			return code, true
		}
	}
	return "", false
}

func codeForTag(tag language.Tag) (Code, bool) {
	base, _ := tag.Base()
	if base.String() != "fr" {
		return "", false
	}
	region, confidence := tag.Region()
	if confidence != language.Exact {
		return FrFR, true
	}
	switch region.String() {
	case "BE":
		return FrBE, true
	case "CH":
		return FrCH, true
	case "FR":
		return FrFR, true
	}
	return "", false
}
