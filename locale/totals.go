package locale

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// Line is one billable line of a document.
// A nil TaxRate uses the standard rate of the locale.
type Line struct {
	Quantity  float64  `json:"quantity"`
	UnitPrice float64  `json:"unit_price"`
	TaxRate   *float64 `json:"tax_rate,omitempty"`
}

// TaxBreakdown is the VAT due for one rate.
type TaxBreakdown struct {
	Rate   float64         `json:"rate"`
	Base   decimal.Decimal `json:"base"`
	Amount decimal.Decimal `json:"amount"`
}

// Totals are the amounts printed at the bottom of a document.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
	Breakdown []TaxBreakdown  `json:"breakdown"`
}

// ComputeTotals sums lines with exact decimal arithmetic. Each line amount is
// rounded to the currency precision, VAT is computed once per rate on the
// summed base, and the breakdown is ordered by decreasing rate.
func ComputeTotals(code string, lines []Line) Totals {
	pack := lookupPack(code)
	places := int32(pack.Currency.Decimals)
	hundred := decimal.NewFromInt(100)

	bases := map[float64]decimal.Decimal{}
	subtotal := decimal.Zero
	for _, line := range lines {
		amount := finite(line.Quantity).Mul(finite(line.UnitPrice)).Round(places)
		rate := pack.Tax.Standard
		if line.TaxRate != nil && !math.IsNaN(*line.TaxRate) && !math.IsInf(*line.TaxRate, 0) {
			rate = *line.TaxRate
		}
		bases[rate] = bases[rate].Add(amount)
		subtotal = subtotal.Add(amount)
	}

	out := Totals{Subtotal: subtotal, TaxAmount: decimal.Zero, Breakdown: []TaxBreakdown{}}
	for rate, base := range bases {
		tax := base.Mul(decimal.NewFromFloat(rate)).Div(hundred).Round(places)
		out.Breakdown = append(out.Breakdown, TaxBreakdown{Rate: rate, Base: base, Amount: tax})
		out.TaxAmount = out.TaxAmount.Add(tax)
	}
	sort.Slice(out.Breakdown, func(i, j int) bool {
		return out.Breakdown[i].Rate > out.Breakdown[j].Rate
	})
	out.Total = out.Subtotal.Add(out.TaxAmount)
	return out
}

// TemplateData exposes the totals under the keys the document blocks read.
func (t Totals) TemplateData() map[string]any {
	subtotal, _ := t.Subtotal.Float64()
	tax, _ := t.TaxAmount.Float64()
	total, _ := t.Total.Float64()
	return map[string]any{
		"subtotal":   subtotal,
		"tax_amount": tax,
		"total":      total,
	}
}

func finite(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
