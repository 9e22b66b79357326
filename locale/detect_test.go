package locale

import "testing"

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name  string
		hints Hints
		want  Code
	}{
		{name: "no hints", hints: Hints{}, want: FrBE},
		{name: "belgian vat", hints: Hints{VATNumber: "BE0123456789"}, want: FrBE},
		{name: "french vat", hints: Hints{VATNumber: "FR12345678901"}, want: FrFR},
		{name: "swiss uid", hints: Hints{VATNumber: "CHE-123.456.789"}, want: FrCH},
		{name: "lowercase vat", hints: Hints{VATNumber: " fr12345678901"}, want: FrFR},
		{name: "vat beats country", hints: Hints{VATNumber: "FR12345678901", Country: "Belgique"}, want: FrFR},
		{name: "unknown vat falls through", hints: Hints{VATNumber: "DE123456789", Country: "Suisse"}, want: FrCH},
		{name: "country beats postal code", hints: Hints{Country: "Suisse", PostalCode: "1200"}, want: FrCH},
		{name: "country iso", hints: Hints{Country: "ch"}, want: FrCH},
		{name: "country english", hints: Hints{Country: "Belgium"}, want: FrBE},
		{name: "country france", hints: Hints{Country: "  FRANCE "}, want: FrFR},
		{name: "unknown country falls through", hints: Hints{Country: "Espagne", PostalCode: "75001"}, want: FrFR},
		{name: "five digit postal code", hints: Hints{PostalCode: "75001"}, want: FrFR},
		{name: "four digit postal code", hints: Hints{PostalCode: "1000"}, want: FrBE},
		{name: "prefixed swiss postal code", hints: Hints{PostalCode: "CH-1200"}, want: FrCH},
		{name: "prefixed french postal code", hints: Hints{PostalCode: "F-75001"}, want: FrFR},
		{name: "garbage postal code", hints: Hints{PostalCode: "ABC", BrowserLocale: "fr-CH"}, want: FrCH},
		{name: "browser fr-BE", hints: Hints{BrowserLocale: "fr-BE"}, want: FrBE},
		{name: "browser generic fr", hints: Hints{BrowserLocale: "fr"}, want: FrFR},
		{name: "browser fr-FR", hints: Hints{BrowserLocale: "fr-FR"}, want: FrFR},
		{name: "browser underscore", hints: Hints{BrowserLocale: "fr_CH"}, want: FrCH},
		{name: "accept-language list", hints: Hints{BrowserLocale: "en-US,en;q=0.9,fr-CH;q=0.8"}, want: FrCH},
		{name: "browser english", hints: Hints{BrowserLocale: "en-US"}, want: FrBE},
		{name: "blank hints", hints: Hints{VATNumber: " ", Country: " ", PostalCode: " "}, want: FrBE},
	}

	for _, tc := range tests {
		if got := DetectLocale(tc.hints); got != tc.want {
			t.Fatalf("%s: DetectLocale(%+v) = %q, want %q", tc.name, tc.hints, got, tc.want)
		}
	}
}
