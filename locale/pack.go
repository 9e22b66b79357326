package locale

import (
	"regexp"
	"time"
)

// TaxRate is one selectable VAT rate of a locale.
type TaxRate struct {
	Value       float64 `json:"value" yaml:"value"`
	Label       string  `json:"label" yaml:"label"`
	Description string  `json:"description" yaml:"description"`
}

// TaxRules lists the VAT rates a locale offers. Standard is always one of Rates.
type TaxRules struct {
	Standard float64   `json:"standard" yaml:"standard"`
	Rates    []TaxRate `json:"rates" yaml:"rates"`
}

// SymbolPosition places the currency symbol relative to the amount.
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// CurrencyRules describes how money is written in a locale.
type CurrencyRules struct {
	Code        string         `json:"code" yaml:"code"`
	Symbol      string         `json:"symbol" yaml:"symbol"`
	Position    SymbolPosition `json:"position" yaml:"position"`
	DecimalSep  string         `json:"decimalSeparator" yaml:"decimal_separator"`
	ThousandSep string         `json:"thousandSeparator" yaml:"thousand_separator"`
	Decimals    int            `json:"decimals" yaml:"decimals"`
}

// DateRules carries the short and long date layouts.
// Layouts use the {day}, {month}, {month_name} and {year} placeholders.
type DateRules struct {
	Locale     string   `json:"locale" yaml:"locale"`
	Short      string   `json:"short" yaml:"short"`
	Long       string   `json:"long" yaml:"long"`
	MonthNames []string `json:"monthNames" yaml:"month_names"`
}

// LegalTexts are the mandatory legal sentences printed on documents.
type LegalTexts struct {
	QuoteValidity string `json:"quoteValidity" yaml:"quote_validity"`
	PaymentTerms  string `json:"paymentTerms" yaml:"payment_terms"`
	Jurisdiction  string `json:"jurisdiction" yaml:"jurisdiction"`
	ValidityDays  int    `json:"validityDays" yaml:"validity_days"`
	PaymentDays   int    `json:"paymentDays" yaml:"payment_days"`
}

// Vocabulary holds the domain terms used on documents of a locale.
type Vocabulary struct {
	Quote       string `json:"quote" yaml:"quote"`
	Invoice     string `json:"invoice" yaml:"invoice"`
	VAT         string `json:"vat" yaml:"vat"`
	VATNumber   string `json:"vatNumber" yaml:"vat_number"`
	Subtotal    string `json:"subtotal" yaml:"subtotal"`
	TaxAmount   string `json:"taxAmount" yaml:"tax_amount"`
	Total       string `json:"total" yaml:"total"`
	Client      string `json:"client" yaml:"client"`
	Description string `json:"description" yaml:"description"`
	Quantity    string `json:"quantity" yaml:"quantity"`
	UnitPrice   string `json:"unitPrice" yaml:"unit_price"`
	Amount      string `json:"amount" yaml:"amount"`
	Date        string `json:"date" yaml:"date"`
	DueDate     string `json:"dueDate" yaml:"due_date"`
	Signature   string `json:"signature" yaml:"signature"`
}

// RuleKind selects how a ComplianceRule checks its field.
type RuleKind string

const (
	RulePattern RuleKind = "pattern"
	RulePhone   RuleKind = "phone"
)

// ComplianceRule validates one field when it is present.
type ComplianceRule struct {
	Field   string   `json:"field" yaml:"field"`
	Kind    RuleKind `json:"kind" yaml:"kind"`
	Pattern string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Region  string   `json:"region,omitempty" yaml:"region,omitempty"`
	Message string   `json:"message" yaml:"message"`

	re *regexp.Regexp
}

// Compliance groups the required fields and per-field rules of a locale.
type Compliance struct {
	RequiredFields []string          `json:"requiredFields" yaml:"required_fields"`
	Rules          []ComplianceRule  `json:"rules" yaml:"rules"`
	FieldLabels    map[string]string `json:"fieldLabels" yaml:"field_labels"`
}

// NumberFormats documents the numbering layouts; the formatting itself is code.
type NumberFormats struct {
	Quote   string `json:"quote" yaml:"quote"`
	Invoice string `json:"invoice" yaml:"invoice"`

	quote   func(seq int, at time.Time) string
	invoice func(seq int, at time.Time) string
}

// Pack is the complete, immutable bundle of rules for one locale.
// Values handed out by the registry are deep copies.
type Pack struct {
	Code          Code          `json:"code" yaml:"code"`
	Name          string        `json:"name" yaml:"name"`
	Country       string        `json:"country" yaml:"country"`
	CountryCode   string        `json:"countryCode" yaml:"country_code"`
	Flag          string        `json:"flag" yaml:"flag"`
	Tax           TaxRules      `json:"tax" yaml:"tax"`
	Currency      CurrencyRules `json:"currency" yaml:"currency"`
	Date          DateRules     `json:"date" yaml:"date"`
	Legal         LegalTexts    `json:"legal" yaml:"legal"`
	Vocabulary    Vocabulary    `json:"vocabulary" yaml:"vocabulary"`
	Compliance    Compliance    `json:"compliance" yaml:"compliance"`
	NumberFormats NumberFormats `json:"numberFormats" yaml:"number_formats"`
}

// Clone returns a deep copy of the pack.
func (p Pack) Clone() Pack {
	out := p
	out.Tax.Rates = append([]TaxRate(nil), p.Tax.Rates...)
	out.Date.MonthNames = append([]string(nil), p.Date.MonthNames...)
	out.Compliance.RequiredFields = append([]string(nil), p.Compliance.RequiredFields...)
	out.Compliance.Rules = append([]ComplianceRule(nil), p.Compliance.Rules...)
	if p.Compliance.FieldLabels != nil {
		out.Compliance.FieldLabels = make(map[string]string, len(p.Compliance.FieldLabels))
		for k, v := range p.Compliance.FieldLabels {
			out.Compliance.FieldLabels[k] = v
		}
	}
	return out
}

// FieldLabel returns the display label of a data field, or the field name itself.
func (p Pack) FieldLabel(field string) string {
	if label, ok := p.Compliance.FieldLabels[field]; ok && label != "" {
		return label
	}
	return field
}

func patternRule(field, pattern, message string) ComplianceRule {
	return ComplianceRule{
		Field:   field,
		Kind:    RulePattern,
		Pattern: pattern,
		Message: message,
		re:      regexp.MustCompile(pattern),
	}
}

func phoneRule(field, region, message string) ComplianceRule {
	return ComplianceRule{
		Field:   field,
		Kind:    RulePhone,
		Region:  region,
		Message: message,
	}
}
