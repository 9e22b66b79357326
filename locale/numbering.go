package locale

import (
	"fmt"
	"time"
)

func belgianQuoteNumber(seq int, at time.Time) string {
	return fmt.Sprintf("DEV-%d-%04d", at.Year(), seq)
}

func belgianInvoiceNumber(seq int, at time.Time) string {
	return fmt.Sprintf("FAC-%d-%04d", at.Year(), seq)
}

func frenchQuoteNumber(seq int, at time.Time) string {
	return fmt.Sprintf("D%d%02d-%03d", at.Year(), int(at.Month()), seq)
}

func frenchInvoiceNumber(seq int, at time.Time) string {
	return fmt.Sprintf("F%d%02d-%03d", at.Year(), int(at.Month()), seq)
}

func swissQuoteNumber(seq int, at time.Time) string {
	return fmt.Sprintf("OFF-%d-%04d", at.Year(), seq)
}

func swissInvoiceNumber(seq int, at time.Time) string {
	return fmt.Sprintf("FAC-%d-%04d", at.Year(), seq)
}

// FormatQuoteNumber builds the quote number for a sequence value and date.
// Unknown codes use the default locale format; negative sequences are clamped to zero.
func FormatQuoteNumber(code string, seq int, at time.Time) string {
	format := lookupPack(code).NumberFormats.quote
	return format(clampSequence(seq), at)
}

// FormatInvoiceNumber is the invoice counterpart of FormatQuoteNumber.
func FormatInvoiceNumber(code string, seq int, at time.Time) string {
	format := lookupPack(code).NumberFormats.invoice
	return format(clampSequence(seq), at)
}

func clampSequence(seq int) int {
	if seq < 0 {
		return 0
	}
	return seq
}
