package doctemplate

import (
	"time"

	"github.com/martingeoffreyprive-hub/DEAL-sub001/locale"
)

// Formatter writes the values blocks display. locale.Pack implements it.
type Formatter interface {
	FormatCurrency(amount float64) string
	FormatNumber(value float64, decimals int) string
	FormatPercent(rate float64) string
	FormatDate(t time.Time) string
}

var _ Formatter = locale.Pack{}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFormatter replaces the locale formatter for numbers, money and dates.
// Vocabulary and legal texts still come from the resolved locale.
func WithFormatter(f Formatter) Option {
	return func(r *Renderer) {
		r.formatter = f
	}
}

// WithLocale pins the locale instead of reading data["locale"].
// Unsupported codes resolve to the default locale.
func WithLocale(code string) Option {
	return func(r *Renderer) {
		pack := locale.GetLocalePack(code)
		r.pack = &pack
	}
}

// WithQRCodeSize sets the default pixel size of generated QR codes.
func WithQRCodeSize(size int) Option {
	return func(r *Renderer) {
		if size > 0 {
			r.qrSize = size
		}
	}
}
