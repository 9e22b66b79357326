package locale

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// FormatLocaleCurrency writes amount with the currency rules of pack.
// NaN and infinities are written as zero.
func FormatLocaleCurrency(amount float64, pack Pack) string {
	return pack.FormatCurrency(amount)
}

// FormatLocaleDate writes t with the short date layout of pack.
func FormatLocaleDate(t time.Time, pack Pack) string {
	return pack.FormatDate(t)
}

// FormatLocaleNumber writes value with the separators of pack.
func FormatLocaleNumber(value float64, decimals int, pack Pack) string {
	return pack.FormatNumber(value, decimals)
}

// FormatLocalePercent writes a percent rate the way pack writes it.
func FormatLocalePercent(rate float64, pack Pack) string {
	return pack.FormatPercent(rate)
}

// FormatLocaleDateLong writes t with the month spelled out.
func FormatLocaleDateLong(t time.Time, pack Pack) string {
	return pack.FormatLongDate(t)
}

// CurrencyUnit returns the ISO 4217 unit of the pack currency.
func (p Pack) CurrencyUnit() (currency.Unit, error) {
	return currency.ParseISO(p.Currency.Code)
}

// FormatCurrency writes amount as money, e.g. "1.234,56 €" or "CHF1'234.56".
func (p Pack) FormatCurrency(amount float64) string {
	digits, negative := p.formatAmount(amount, p.Currency.Decimals)
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	if p.Currency.Position == SymbolBefore {
		b.WriteString(p.Currency.Symbol)
		b.WriteString(digits)
		return b.String()
	}
	b.WriteString(digits)
	b.WriteByte(' ')
	b.WriteString(p.Currency.Symbol)
	return b.String()
}

// FormatNumber writes value with the locale separators and a fixed number of decimals.
func (p Pack) FormatNumber(value float64, decimals int) string {
	digits, negative := p.formatAmount(value, decimals)
	if negative {
		return "-" + digits
	}
	return digits
}

// FormatPercent writes a rate given in percent, e.g. 5.5 as "5,5 %".
// Trailing zero decimals are dropped.
func (p Pack) FormatPercent(rate float64) string {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		rate = 0
	}
	d := decimal.NewFromFloat(rate).Round(2)
	s := d.String()
	if p.Currency.DecimalSep != "." {
		s = strings.Replace(s, ".", p.Currency.DecimalSep, 1)
	}
	return s + " %"
}

// FormatDate writes t as "15/01/2024" or "15.01.2024". The zero time is written as "".
func (p Pack) FormatDate(t time.Time) string {
	return p.renderDate(p.Date.Short, t)
}

// FormatLongDate writes t as "15 janvier 2024".
func (p Pack) FormatLongDate(t time.Time) string {
	return p.renderDate(p.Date.Long, t)
}

func (p Pack) renderDate(layout string, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	monthName := ""
	if m := int(t.Month()); m >= 1 && m <= len(p.Date.MonthNames) {
		monthName = p.Date.MonthNames[m-1]
	}
	r := strings.NewReplacer(
		"{day}", pad2(t.Day()),
		"{month_name}", monthName,
		"{month}", pad2(int(t.Month())),
		"{year}", strconv.Itoa(t.Year()),
	)
	return r.Replace(layout)
}

// maxDecimals bounds the precision a caller can ask for
const maxDecimals = 20

// formatAmount rounds half away from zero and returns the unsigned grouped digits.
// A value that rounds to zero is never reported as negative.
func (p Pack) formatAmount(value float64, decimals int) (string, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	if decimals < 0 {
		decimals = 0
	}
	if decimals > maxDecimals {
		decimals = maxDecimals
	}
	d := decimal.NewFromFloat(value).Round(int32(decimals))
	negative := d.Sign() < 0
	fixed := d.Abs().StringFixed(int32(decimals))

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	intPart = groupThousands(intPart, p.Currency.ThousandSep)
	if fracPart == "" {
		return intPart, negative
	}
	return intPart + p.Currency.DecimalSep + fracPart, negative
}

func groupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func pad2(n int) string {
	if n < 10 && n >= 0 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
