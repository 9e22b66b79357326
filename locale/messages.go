package locale

import "embed"

//go:embed messages/*.yaml
var messageFiles embed.FS

const (
	msgComplianceRequired    = "compliance_required"
	msgLegalDataProtection   = "legal_data_protection"
	msgLegalInsurance        = "legal_insurance"
	msgLegalInsuranceInsurer = "legal_insurance_insurer"
)

var translator = mustLoadTranslator()

func mustLoadTranslator() *CatalogTranslator {
	store, err := NewStaticStoreFromLoader(NewFSLoader(messageFiles, "messages/*.yaml"))
	if err != nil {
		panic(err)
	}
	return NewCatalogTranslator(store, DefaultFallback{})
}

// localize renders a message of the given locale. fallback is used verbatim
// when no catalog holds the key.
func localize(code Code, id, fallback string, args ...any) string {
	msg, err := translator.Translate(string(code), id, args...)
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
