package doctemplate

// Variable documents a placeholder key the editor offers. The catalog is
// informative only: rendering accepts any key present in the data.
type Variable struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Example string `json:"example"`
	Group   string `json:"group"`
}

var variableCatalog = []Variable{
	{Key: "company_name", Label: "Nom de l'entreprise", Example: "Plomberie Dupont SRL", Group: "company"},
	{Key: "company_address", Label: "Adresse de l'entreprise", Example: "Rue de la Loi 16", Group: "company"},
	{Key: "company_postal_code", Label: "Code postal de l'entreprise", Example: "1000", Group: "company"},
	{Key: "company_city", Label: "Ville de l'entreprise", Example: "Bruxelles", Group: "company"},
	{Key: "company_country", Label: "Pays de l'entreprise", Example: "Belgique", Group: "company"},
	{Key: "company_vat_number", Label: "Numéro de TVA de l'entreprise", Example: "BE0123.456.789", Group: "company"},
	{Key: "company_phone", Label: "Téléphone de l'entreprise", Example: "+32 2 555 12 12", Group: "company"},
	{Key: "company_email", Label: "E-mail de l'entreprise", Example: "contact@dupont.be", Group: "company"},
	{Key: "company_website", Label: "Site web de l'entreprise", Example: "https://dupont.be", Group: "company"},
	{Key: "company_iban", Label: "IBAN", Example: "BE68 5390 0754 7034", Group: "company"},
	{Key: "company_bic", Label: "BIC", Example: "GKCCBEBB", Group: "company"},
	{Key: "company_logo", Label: "Logo", Example: "https://dupont.be/logo.png", Group: "company"},
	{Key: "client_name", Label: "Nom du client", Example: "Marie Lambert", Group: "client"},
	{Key: "client_address", Label: "Adresse du client", Example: "Avenue Louise 54", Group: "client"},
	{Key: "client_postal_code", Label: "Code postal du client", Example: "1050", Group: "client"},
	{Key: "client_city", Label: "Ville du client", Example: "Ixelles", Group: "client"},
	{Key: "client_country", Label: "Pays du client", Example: "Belgique", Group: "client"},
	{Key: "client_vat_number", Label: "Numéro de TVA du client", Example: "BE0987.654.321", Group: "client"},
	{Key: "client_phone", Label: "Téléphone du client", Example: "+32 470 12 34 56", Group: "client"},
	{Key: "client_email", Label: "E-mail du client", Example: "marie.lambert@example.com", Group: "client"},
	{Key: "document_number", Label: "Numéro du document", Example: "DEV-2024-0042", Group: "document"},
	{Key: "document_date", Label: "Date du document", Example: "2024-01-15", Group: "document"},
	{Key: "validity_date", Label: "Date de validité", Example: "2024-02-14", Group: "document"},
	{Key: "due_date", Label: "Date d'échéance", Example: "2024-02-14", Group: "document"},
	{Key: "structured_reference", Label: "Communication structurée", Example: "+++123/4567/89002+++", Group: "document"},
	{Key: "notes", Label: "Remarques", Example: "Travaux réalisés en deux jours.", Group: "document"},
	{Key: "subtotal", Label: "Total hors TVA", Example: "32", Group: "amounts"},
	{Key: "tax_rate", Label: "Taux de TVA", Example: "21", Group: "amounts"},
	{Key: "tax_amount", Label: "Montant de TVA", Example: "6.72", Group: "amounts"},
	{Key: "total", Label: "Total TVA comprise", Example: "38.72", Group: "amounts"},
	{Key: "locale", Label: "Langue et pays", Example: "fr-BE", Group: "document"},
}

// Variables returns the placeholder catalog.
func Variables() []Variable {
	out := make([]Variable, len(variableCatalog))
	copy(out, variableCatalog)
	return out
}

// LookupVariable returns the catalog entry for key.
func LookupVariable(key string) (Variable, bool) {
	for _, v := range variableCatalog {
		if v.Key == key {
			return v, true
		}
	}
	return Variable{}, false
}

// SampleData is a data record built from the catalog examples, with two
// line items, for previews.
func SampleData() map[string]any {
	data := make(map[string]any, len(variableCatalog)+1)
	for _, v := range variableCatalog {
		data[v.Key] = v.Example
	}
	data["items"] = []map[string]any{
		{"description": "Tuyau", "quantity": 2.0, "unit": "m", "unit_price": 10.0},
		{"description": "Coude", "quantity": 4.0, "unit": "u", "unit_price": 3.0},
	}
	return data
}
