package locale

// lookupPack returns the shared registry entry; callers must not mutate it.
func lookupPack(code string) *Pack {
	if IsValidLocaleCode(code) {
		p := packs[Code(code)]
		return &p
	}
	p := packs[DefaultCode]
	return &p
}

// GetLocalePack returns the pack for code, falling back to the default
// locale for anything that is not a supported code.
func GetLocalePack(code string) Pack {
	return lookupPack(code).Clone()
}

// GetAllLocalePacks returns every pack in registry order.
func GetAllLocalePacks() []Pack {
	out := make([]Pack, 0, len(supportedCodes))
	for _, code := range supportedCodes {
		out = append(out, packs[code].Clone())
	}
	return out
}

// GetTaxRates returns the VAT rates of the resolved locale.
func GetTaxRates(code string) []TaxRate {
	rates := lookupPack(code).Tax.Rates
	out := make([]TaxRate, len(rates))
	copy(out, rates)
	return out
}

// GetStandardTaxRate returns the standard VAT rate of the resolved locale.
func GetStandardTaxRate(code string) float64 {
	return lookupPack(code).Tax.Standard
}
