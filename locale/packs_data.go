package locale

var frenchMonths = []string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var frenchVocabulary = Vocabulary{
	Quote:       "Devis",
	Invoice:     "Facture",
	VAT:         "TVA",
	VATNumber:   "Numéro de TVA",
	Subtotal:    "Total HT",
	TaxAmount:   "Montant TVA",
	Total:       "Total TTC",
	Client:      "Client",
	Description: "Description",
	Quantity:    "Quantité",
	UnitPrice:   "Prix unitaire",
	Amount:      "Montant",
	Date:        "Date",
	DueDate:     "Échéance",
	Signature:   "Bon pour accord",
}

// packs is the compile-time registry. It is never handed out directly.
var packs = map[Code]Pack{
	FrBE: {
		Code:        FrBE,
		Name:        "Français (Belgique)",
		Country:     "Belgique",
		CountryCode: "BE",
		Flag:        "🇧🇪",
		Tax: TaxRules{
			Standard: 21,
			Rates: []TaxRate{
				{Value: 21, Label: "21 %", Description: "Taux normal"},
				{Value: 12, Label: "12 %", Description: "Taux intermédiaire (restauration, logement social)"},
				{Value: 6, Label: "6 %", Description: "Taux réduit (rénovation de logements de plus de 10 ans)"},
				{Value: 0, Label: "0 %", Description: "Exonéré ou autoliquidation (cocontractant)"},
			},
		},
		Currency: CurrencyRules{
			Code:        "EUR",
			Symbol:      "€",
			Position:    SymbolAfter,
			DecimalSep:  ",",
			ThousandSep: ".",
			Decimals:    2,
		},
		Date: DateRules{
			Locale:     "fr-BE",
			Short:      "{day}/{month}/{year}",
			Long:       "{day} {month_name} {year}",
			MonthNames: frenchMonths,
		},
		Legal: LegalTexts{
			QuoteValidity: "Ce devis est valable 30 jours à compter de sa date d'émission.",
			PaymentTerms:  "Paiement à 30 jours date de facture. Tout retard de paiement entraîne de plein droit un intérêt de retard au taux légal ainsi qu'une indemnité forfaitaire de 40 €.",
			Jurisdiction:  "En cas de litige, seuls les tribunaux de l'arrondissement judiciaire du siège social du prestataire sont compétents.",
			ValidityDays:  30,
			PaymentDays:   30,
		},
		Vocabulary: belgianVocabulary(),
		Compliance: Compliance{
			RequiredFields: []string{"vat_number"},
			Rules: []ComplianceRule{
				patternRule("vat_number", `^BE\s?\d{4}\.?\d{3}\.?\d{3}$`, "Le numéro de TVA belge doit être au format BE0123.456.789."),
				patternRule("iban", `^BE\d{2}(\s?\d{4}){3}$`, "Le numéro IBAN belge doit être au format BE00 0000 0000 0000."),
				phoneRule("phone", "BE", "Le numéro de téléphone n'est pas un numéro belge valide."),
			},
			FieldLabels: map[string]string{
				"vat_number": "Numéro de TVA",
				"iban":       "IBAN",
				"phone":      "Téléphone",
			},
		},
		NumberFormats: NumberFormats{
			Quote:   "DEV-{year}-{seq:4}",
			Invoice: "FAC-{year}-{seq:4}",
			quote:   belgianQuoteNumber,
			invoice: belgianInvoiceNumber,
		},
	},
	FrFR: {
		Code:        FrFR,
		Name:        "Français (France)",
		Country:     "France",
		CountryCode: "FR",
		Flag:        "🇫🇷",
		Tax: TaxRules{
			Standard: 20,
			Rates: []TaxRate{
				{Value: 20, Label: "20 %", Description: "Taux normal"},
				{Value: 10, Label: "10 %", Description: "Taux intermédiaire (travaux d'amélioration de logements)"},
				{Value: 5.5, Label: "5,5 %", Description: "Taux réduit (rénovation énergétique)"},
				{Value: 2.1, Label: "2,1 %", Description: "Taux particulier (presse, médicaments remboursables)"},
				{Value: 0, Label: "0 %", Description: "Exonéré ou autoliquidation"},
			},
		},
		Currency: CurrencyRules{
			Code:        "EUR",
			Symbol:      "€",
			Position:    SymbolAfter,
			DecimalSep:  ",",
			ThousandSep: " ",
			Decimals:    2,
		},
		Date: DateRules{
			Locale:     "fr-FR",
			Short:      "{day}/{month}/{year}",
			Long:       "{day} {month_name} {year}",
			MonthNames: frenchMonths,
		},
		Legal: LegalTexts{
			QuoteValidity: "Ce devis est valable 30 jours à compter de sa date d'émission.",
			PaymentTerms:  "Paiement à 30 jours à compter de la date de facture. En cas de retard, des pénalités au taux de trois fois le taux d'intérêt légal ainsi qu'une indemnité forfaitaire pour frais de recouvrement de 40 € seront exigibles (art. L441-10 du Code de commerce).",
			Jurisdiction:  "En cas de litige, compétence exclusive est attribuée au tribunal de commerce du siège social du prestataire.",
			ValidityDays:  30,
			PaymentDays:   30,
		},
		Vocabulary: frenchVocabulary,
		Compliance: Compliance{
			RequiredFields: []string{"siret"},
			Rules: []ComplianceRule{
				patternRule("siret", `^\d{3}\s?\d{3}\s?\d{3}\s?\d{5}$`, "Le numéro SIRET doit comporter 14 chiffres."),
				patternRule("vat_number", `^FR\s?[0-9A-Z]{2}\s?\d{9}$`, "Le numéro de TVA intracommunautaire doit être au format FR00123456789."),
				patternRule("ape_code", `^\d{2}\.?\d{2}[A-Z]$`, "Le code APE doit être au format 4321A."),
				phoneRule("phone", "FR", "Le numéro de téléphone n'est pas un numéro français valide."),
			},
			FieldLabels: map[string]string{
				"siret":      "SIRET",
				"vat_number": "Numéro de TVA intracommunautaire",
				"ape_code":   "Code APE",
				"phone":      "Téléphone",
			},
		},
		NumberFormats: NumberFormats{
			Quote:   "D{year}{month:2}-{seq:3}",
			Invoice: "F{year}{month:2}-{seq:3}",
			quote:   frenchQuoteNumber,
			invoice: frenchInvoiceNumber,
		},
	},
	FrCH: {
		Code:        FrCH,
		Name:        "Français (Suisse)",
		Country:     "Suisse",
		CountryCode: "CH",
		Flag:        "🇨🇭",
		Tax: TaxRules{
			Standard: 8.1,
			Rates: []TaxRate{
				{Value: 8.1, Label: "8,1 %", Description: "Taux normal"},
				{Value: 3.8, Label: "3,8 %", Description: "Taux spécial (hébergement)"},
				{Value: 2.6, Label: "2,6 %", Description: "Taux réduit (denrées alimentaires, livres)"},
				{Value: 0, Label: "0 %", Description: "Exonéré"},
			},
		},
		Currency: CurrencyRules{
			Code:        "CHF",
			Symbol:      "CHF",
			Position:    SymbolBefore,
			DecimalSep:  ".",
			ThousandSep: "'",
			Decimals:    2,
		},
		Date: DateRules{
			Locale:     "fr-CH",
			Short:      "{day}.{month}.{year}",
			Long:       "{day} {month_name} {year}",
			MonthNames: frenchMonths,
		},
		Legal: LegalTexts{
			QuoteValidity: "Cette offre est valable 30 jours à compter de sa date d'émission.",
			PaymentTerms:  "Paiement net à 30 jours. Passé ce délai, un intérêt moratoire de 5 % l'an est dû conformément à l'art. 104 CO.",
			Jurisdiction:  "Le for juridique est au siège du prestataire. Le droit suisse est applicable.",
			ValidityDays:  30,
			PaymentDays:   30,
		},
		Vocabulary: swissVocabulary(),
		Compliance: Compliance{
			RequiredFields: []string{"vat_number"},
			Rules: []ComplianceRule{
				patternRule("vat_number", `^CHE-?\d{3}\.?\d{3}\.?\d{3}(\s?(TVA|MWST|IVA))?$`, "Le numéro IDE doit être au format CHE-123.456.789 TVA."),
				patternRule("iban", `^CH\d{2}(\s?[0-9A-Z]{4}){4}\s?[0-9A-Z]$`, "Le numéro IBAN suisse doit être au format CH00 0000 0000 0000 0000 0."),
				phoneRule("phone", "CH", "Le numéro de téléphone n'est pas un numéro suisse valide."),
			},
			FieldLabels: map[string]string{
				"vat_number": "Numéro IDE",
				"iban":       "IBAN",
				"phone":      "Téléphone",
			},
		},
		NumberFormats: NumberFormats{
			Quote:   "OFF-{year}-{seq:4}",
			Invoice: "FAC-{year}-{seq:4}",
			quote:   swissQuoteNumber,
			invoice: swissInvoiceNumber,
		},
	},
}

func belgianVocabulary() Vocabulary {
	v := frenchVocabulary
	v.Subtotal = "Total HTVA"
	v.Total = "Total TVAC"
	return v
}

func swissVocabulary() Vocabulary {
	v := frenchVocabulary
	v.Quote = "Offre"
	v.VATNumber = "Numéro IDE"
	v.DueDate = "Délai de paiement"
	return v
}
