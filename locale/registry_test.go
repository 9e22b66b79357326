package locale

import (
	"database/sql"
	"testing"
	"time"
)

func TestIsValidLocaleCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{code: "fr-BE", want: true},
		{code: "fr-FR", want: true},
		{code: "fr-CH", want: true},
		{code: "fr-be", want: false},
		{code: "fr_BE", want: false},
		{code: "de-DE", want: false},
		{code: "", want: false},
	}

	for _, tc := range tests {
		if got := IsValidLocaleCode(tc.code); got != tc.want {
			t.Fatalf("IsValidLocaleCode(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestParseCodeIsLenient(t *testing.T) {
	code, ok := ParseCode(" fr_ch ")
	if !ok || code != FrCH {
		t.Fatalf("ParseCode = %q,%v", code, ok)
	}
	code, ok = ParseCode("es-ES")
	if ok || code != DefaultCode {
		t.Fatalf("unsupported code should report false and default, got %q,%v", code, ok)
	}
}

func TestGetLocalePackFallsBackToDefault(t *testing.T) {
	for _, code := range []string{"", "xx-XX", "FR-fr", "en"} {
		pack := GetLocalePack(code)
		if pack.Code != FrBE {
			t.Fatalf("GetLocalePack(%q).Code = %q, want fr-BE", code, pack.Code)
		}
	}

	if got := GetLocalePack("fr-CH").Currency.Code; got != "CHF" {
		t.Fatalf("fr-CH currency = %q", got)
	}
}

func TestGetLocalePackReturnsCopies(t *testing.T) {
	pack := GetLocalePack("fr-BE")
	pack.Tax.Rates[0].Value = 99
	pack.Compliance.FieldLabels["vat_number"] = "changed"
	pack.Compliance.RequiredFields[0] = "changed"

	again := GetLocalePack("fr-BE")
	if again.Tax.Rates[0].Value != 21 {
		t.Fatalf("tax rates leaked mutation: %v", again.Tax.Rates[0].Value)
	}
	if again.FieldLabel("vat_number") != "Numéro de TVA" {
		t.Fatalf("field labels leaked mutation: %q", again.FieldLabel("vat_number"))
	}
	if again.Compliance.RequiredFields[0] != "vat_number" {
		t.Fatalf("required fields leaked mutation: %v", again.Compliance.RequiredFields)
	}
}

func TestAllPacksAreComplete(t *testing.T) {
	all := GetAllLocalePacks()
	if len(all) != 3 {
		t.Fatalf("expected 3 packs, got %d", len(all))
	}

	for i, pack := range all {
		if pack.Code != supportedCodes[i] {
			t.Fatalf("pack %d code = %q, want %q", i, pack.Code, supportedCodes[i])
		}
		if pack.Name == "" || pack.Country == "" || pack.Flag == "" || pack.CountryCode == "" {
			t.Fatalf("%s: identity incomplete: %+v", pack.Code, pack)
		}
		if pack.Currency.Code == "" || pack.Currency.Symbol == "" {
			t.Fatalf("%s: currency incomplete", pack.Code)
		}
		if pack.Legal.QuoteValidity == "" || pack.Legal.PaymentTerms == "" || pack.Legal.Jurisdiction == "" {
			t.Fatalf("%s: legal texts incomplete", pack.Code)
		}
		if pack.Vocabulary.Quote == "" || pack.Vocabulary.VAT == "" || pack.Vocabulary.Total == "" {
			t.Fatalf("%s: vocabulary incomplete", pack.Code)
		}
		if len(pack.Compliance.RequiredFields) == 0 || len(pack.Compliance.Rules) == 0 {
			t.Fatalf("%s: compliance incomplete", pack.Code)
		}
		if pack.NumberFormats.Quote == "" || pack.NumberFormats.quote == nil || pack.NumberFormats.invoice == nil {
			t.Fatalf("%s: number formats incomplete", pack.Code)
		}
		if len(pack.Date.MonthNames) != 12 {
			t.Fatalf("%s: expected 12 month names", pack.Code)
		}
	}
}

func TestStandardRateIsListed(t *testing.T) {
	for _, code := range Codes() {
		standard := GetStandardTaxRate(string(code))
		found := false
		for _, rate := range GetTaxRates(string(code)) {
			if rate.Value == standard {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s: standard rate %v missing from rate list", code, standard)
		}
	}

	if got := GetStandardTaxRate("nope"); got != 21 {
		t.Fatalf("unknown code should use fr-BE standard rate, got %v", got)
	}
}

func TestGetQuoteLocale(t *testing.T) {
	stored := "fr-FR"
	corrupted := "fr-XX"
	var nilString *string

	tests := []struct {
		name  string
		value any
		want  Code
	}{
		{name: "nil", value: nil, want: FrBE},
		{name: "nil pointer", value: nilString, want: FrBE},
		{name: "string", value: "fr-CH", want: FrCH},
		{name: "pointer", value: &stored, want: FrFR},
		{name: "corrupted pointer", value: &corrupted, want: FrBE},
		{name: "bytes", value: []byte("fr-FR"), want: FrFR},
		{name: "null sql string", value: sql.NullString{String: "fr-CH"}, want: FrBE},
		{name: "valid sql string", value: sql.NullString{String: "fr-CH", Valid: true}, want: FrCH},
		{name: "number", value: 42, want: FrBE},
		{name: "empty", value: "", want: FrBE},
	}

	for _, tc := range tests {
		if got := GetQuoteLocale(tc.value); got != tc.want {
			t.Fatalf("%s: GetQuoteLocale = %q, want %q", tc.name, got, tc.want)
		}
	}

	if pack := GetQuoteLocalePack(&stored); pack.Code != FrFR {
		t.Fatalf("GetQuoteLocalePack = %q", pack.Code)
	}
}

func TestFormatQuoteNumber(t *testing.T) {
	date := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		code string
		seq  int
		want string
	}{
		{code: "fr-BE", seq: 42, want: "DEV-2024-0042"},
		{code: "fr-BE", seq: 1, want: "DEV-2024-0001"},
		{code: "fr-FR", seq: 42, want: "D202401-042"},
		{code: "fr-FR", seq: 1, want: "D202401-001"},
		{code: "fr-CH", seq: 42, want: "OFF-2024-0042"},
		{code: "fr-CH", seq: 1, want: "OFF-2024-0001"},
		{code: "unknown", seq: 7, want: "DEV-2024-0007"},
		{code: "fr-BE", seq: -3, want: "DEV-2024-0000"},
		{code: "fr-BE", seq: 12345, want: "DEV-2024-12345"},
	}

	for _, tc := range tests {
		if got := FormatQuoteNumber(tc.code, tc.seq, date); got != tc.want {
			t.Fatalf("FormatQuoteNumber(%q,%d) = %q, want %q", tc.code, tc.seq, got, tc.want)
		}
	}
}

func TestFormatInvoiceNumber(t *testing.T) {
	date := time.Date(2024, time.November, 3, 0, 0, 0, 0, time.UTC)

	if got := FormatInvoiceNumber("fr-BE", 9, date); got != "FAC-2024-0009" {
		t.Fatalf("fr-BE invoice = %q", got)
	}
	if got := FormatInvoiceNumber("fr-FR", 9, date); got != "F202411-009" {
		t.Fatalf("fr-FR invoice = %q", got)
	}
}

type mapPreferences map[string]string

func (m mapPreferences) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapPreferences) Set(key, value string) error {
	m[key] = value
	return nil
}

func TestPreferenceRoundTrip(t *testing.T) {
	store := mapPreferences{}
	if got := LoadPreference(store); got != DefaultCode {
		t.Fatalf("empty store = %q", got)
	}

	if err := SavePreference(store, "fr-CH"); err != nil {
		t.Fatalf("SavePreference: %v", err)
	}
	if got := LoadPreference(store); got != FrCH {
		t.Fatalf("LoadPreference = %q", got)
	}

	store[PreferenceKey] = "corrupted"
	if got := LoadPreference(store); got != DefaultCode {
		t.Fatalf("corrupted value should degrade to default, got %q", got)
	}

	if err := SavePreference(store, "it-IT"); err != nil {
		t.Fatalf("SavePreference: %v", err)
	}
	if store[PreferenceKey] != string(DefaultCode) {
		t.Fatalf("unsupported code stored as %q", store[PreferenceKey])
	}

	if got := LoadPreference(nil); got != DefaultCode {
		t.Fatalf("nil store = %q", got)
	}
}
