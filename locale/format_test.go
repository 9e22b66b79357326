package locale

import (
	"math"
	"testing"
	"time"
)

func TestFormatLocaleCurrency(t *testing.T) {
	be := GetLocalePack("fr-BE")
	fr := GetLocalePack("fr-FR")
	ch := GetLocalePack("fr-CH")

	tests := []struct {
		pack   Pack
		amount float64
		want   string
	}{
		{pack: be, amount: 1234.56, want: "1.234,56 €"},
		{pack: fr, amount: 1234.56, want: "1 234,56 €"},
		{pack: ch, amount: 1234.56, want: "CHF1'234.56"},
		{pack: be, amount: 0, want: "0,00 €"},
		{pack: be, amount: -1234.56, want: "-1.234,56 €"},
		{pack: ch, amount: -1234.56, want: "-CHF1'234.56"},
		{pack: be, amount: 1234567.891, want: "1.234.567,89 €"},
		{pack: fr, amount: 999.999, want: "1 000,00 €"},
		{pack: be, amount: 0.005, want: "0,01 €"},
		{pack: be, amount: -0.001, want: "0,00 €"},
		{pack: be, amount: math.NaN(), want: "0,00 €"},
		{pack: ch, amount: math.Inf(1), want: "CHF0.00"},
		{pack: ch, amount: 12, want: "CHF12.00"},
	}

	for _, tc := range tests {
		if got := FormatLocaleCurrency(tc.amount, tc.pack); got != tc.want {
			t.Fatalf("FormatLocaleCurrency(%v, %s) = %q, want %q", tc.amount, tc.pack.Code, got, tc.want)
		}
	}
}

func TestFormatNumberAndPercent(t *testing.T) {
	be := GetLocalePack("fr-BE")
	ch := GetLocalePack("fr-CH")

	if got := be.FormatNumber(1234.5, 1); got != "1.234,5" {
		t.Fatalf("FormatNumber = %q", got)
	}
	if got := be.FormatNumber(-2, 0); got != "-2" {
		t.Fatalf("FormatNumber = %q", got)
	}
	huge := int64(1)<<32 + 2
	if got := FormatLocaleNumber(1.5, int(huge), be); got != "1,50000000000000000000" {
		t.Fatalf("oversized decimals should clamp to 20, got %q", got)
	}
	if got := FormatLocaleNumber(1.5, -3, be); got != "2" {
		t.Fatalf("negative decimals should clamp to 0, got %q", got)
	}
	if got := be.FormatPercent(21); got != "21 %" {
		t.Fatalf("FormatPercent = %q", got)
	}
	if got := GetLocalePack("fr-FR").FormatPercent(5.5); got != "5,5 %" {
		t.Fatalf("FormatPercent = %q", got)
	}
	if got := ch.FormatPercent(8.1); got != "8.1 %" {
		t.Fatalf("FormatPercent = %q", got)
	}
}

func TestFormatLocaleDate(t *testing.T) {
	date := time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC)

	if got := FormatLocaleDate(date, GetLocalePack("fr-BE")); got != "05/01/2024" {
		t.Fatalf("fr-BE date = %q", got)
	}
	if got := FormatLocaleDate(date, GetLocalePack("fr-FR")); got != "05/01/2024" {
		t.Fatalf("fr-FR date = %q", got)
	}
	if got := FormatLocaleDate(date, GetLocalePack("fr-CH")); got != "05.01.2024" {
		t.Fatalf("fr-CH date = %q", got)
	}
	if got := GetLocalePack("fr-BE").FormatLongDate(time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC)); got != "15 août 2024" {
		t.Fatalf("long date = %q", got)
	}
	if got := FormatLocaleDate(time.Time{}, GetLocalePack("fr-BE")); got != "" {
		t.Fatalf("zero date = %q", got)
	}
}

func TestComputeTotals(t *testing.T) {
	six := 6.0
	totals := ComputeTotals("fr-BE", []Line{
		{Quantity: 2, UnitPrice: 10},
		{Quantity: 4, UnitPrice: 3, TaxRate: &six},
	})

	if totals.Subtotal.StringFixed(2) != "32.00" {
		t.Fatalf("subtotal = %s", totals.Subtotal)
	}
	if totals.TaxAmount.StringFixed(2) != "4.92" {
		t.Fatalf("tax = %s", totals.TaxAmount)
	}
	if totals.Total.StringFixed(2) != "36.92" {
		t.Fatalf("total = %s", totals.Total)
	}
	if len(totals.Breakdown) != 2 || totals.Breakdown[0].Rate != 21 || totals.Breakdown[1].Rate != 6 {
		t.Fatalf("breakdown = %+v", totals.Breakdown)
	}

	data := totals.TemplateData()
	if data["total"] != 36.92 || data["subtotal"] != 32.0 {
		t.Fatalf("template data = %v", data)
	}
}

func TestComputeTotalsAvoidsFloatDrift(t *testing.T) {
	lines := make([]Line, 10)
	for i := range lines {
		lines[i] = Line{Quantity: 1, UnitPrice: 0.1}
	}
	totals := ComputeTotals("fr-CH", lines)
	if totals.Subtotal.StringFixed(2) != "1.00" {
		t.Fatalf("subtotal = %s", totals.Subtotal)
	}
	if totals.TaxAmount.StringFixed(2) != "0.08" {
		t.Fatalf("tax = %s", totals.TaxAmount)
	}

	empty := ComputeTotals("fr-FR", nil)
	if !empty.Total.IsZero() || len(empty.Breakdown) != 0 {
		t.Fatalf("empty totals = %+v", empty)
	}
}

func TestStructuredReference(t *testing.T) {
	tests := []struct {
		base uint64
		want string
	}{
		{base: 1234567890, want: "+++123/4567/89002+++"},
		{base: 1, want: "+++000/0000/00101+++"},
		{base: 9700000000, want: "+++970/0000/00097+++"},
		{base: 51234567890, want: "+++123/4567/89002+++"},
	}

	for _, tc := range tests {
		got := GenerateStructuredReference(tc.base)
		if got != tc.want {
			t.Fatalf("GenerateStructuredReference(%d) = %q, want %q", tc.base, got, tc.want)
		}
		if !IsValidStructuredReference(got) {
			t.Fatalf("generated reference %q should validate", got)
		}
	}

	if !IsValidStructuredReference("***123/4567/89002***") {
		t.Fatal("star spelling should validate")
	}
	if !IsValidStructuredReference("123456789002") {
		t.Fatal("bare digits should validate")
	}
	for _, ref := range []string{"+++123/4567/89003+++", "12345678900", "+++123/4567/8900A+++", ""} {
		if IsValidStructuredReference(ref) {
			t.Fatalf("%q should not validate", ref)
		}
	}
}

func TestPackCurrencyUnits(t *testing.T) {
	for _, pack := range GetAllLocalePacks() {
		unit, err := pack.CurrencyUnit()
		if err != nil {
			t.Fatalf("%s: CurrencyUnit: %v", pack.Code, err)
		}
		if unit.String() != pack.Currency.Code {
			t.Fatalf("%s: unit = %s", pack.Code, unit)
		}
	}
	if got := FormatLocaleNumber(1234.5, 2, GetLocalePack("fr-CH")); got != "1'234.50" {
		t.Fatalf("FormatLocaleNumber = %q", got)
	}
	if got := FormatLocalePercent(12, GetLocalePack("fr-BE")); got != "12 %" {
		t.Fatalf("FormatLocalePercent = %q", got)
	}
	if got := FormatLocaleDateLong(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), GetLocalePack("fr-CH")); got != "15 janvier 2024" {
		t.Fatalf("FormatLocaleDateLong = %q", got)
	}
}
