package locale

import "strings"

// LegalOptions toggles the optional paragraphs of GenerateLegalMentions.
type LegalOptions struct {
	IncludeDataProtection bool   `json:"includeDataProtection,omitempty"`
	IncludeInsurance      bool   `json:"includeInsurance,omitempty"`
	Insurer               string `json:"insurer,omitempty"`
	CustomTerms           string `json:"customTerms,omitempty"`
}

const legalSeparator = "\n\n"

// GenerateLegalMentions assembles the legal text printed at the bottom of a quote.
// Validity, payment terms and jurisdiction are always present, in that order,
// followed by the optional paragraphs and the custom terms verbatim.
func GenerateLegalMentions(code string, opts LegalOptions) string {
	pack := lookupPack(code)
	sections := []string{
		pack.Legal.QuoteValidity,
		pack.Legal.PaymentTerms,
		pack.Legal.Jurisdiction,
	}

	if opts.IncludeDataProtection {
		sections = append(sections, localize(pack.Code, msgLegalDataProtection,
			"Les données personnelles sont traitées conformément à la réglementation sur la protection des données."))
	}
	if opts.IncludeInsurance {
		sections = append(sections, insuranceMention(pack.Code, strings.TrimSpace(opts.Insurer)))
	}
	if strings.TrimSpace(opts.CustomTerms) != "" {
		sections = append(sections, opts.CustomTerms)
	}

	return strings.Join(sections, legalSeparator)
}

func insuranceMention(code Code, insurer string) string {
	if insurer == "" {
		return localize(code, msgLegalInsurance,
			"Le prestataire est couvert par une assurance responsabilité civile professionnelle.")
	}
	return localize(code, msgLegalInsuranceInsurer,
		"Le prestataire est couvert par une assurance responsabilité civile professionnelle souscrite auprès de "+insurer+".",
		"insurer", insurer)
}
