package doctemplate

import (
	"html/template"
	"math"
	"strconv"
	"strings"

	"github.com/martingeoffreyprive-hub/DEAL-sub001/locale"
)

const blockTemplateSource = `
{{define "block"}}<div class="block block-{{.Type}}" data-block-id="{{.ID}}"{{if .Style}} style="{{.Style}}"{{end}}>{{.Inner}}</div>{{end}}
{{define "header"}}<div class="header header-logo-{{.LogoPosition}}">{{if .Logo}}<img class="logo" src="{{.Logo}}" alt="{{.CompanyName}}" />{{end}}<div class="header-text">{{if .Title}}<h1 class="title">{{.Title}}</h1>{{end}}{{if .Subtitle}}<div class="subtitle">{{.Subtitle}}</div>{{end}}</div></div>{{end}}
{{define "party"}}<div class="party party-{{.Kind}}">{{if .Title}}<div class="party-title">{{.Title}}</div>{{end}}<div class="party-name">{{.Name}}</div><div class="party-address">{{.Address}}</div><div class="party-city">{{.City}}</div>{{if .Country}}<div class="party-country">{{.Country}}</div>{{end}}{{range .Extra}}<div class="party-line"><span class="label">{{.Label}}</span> {{.Value}}</div>{{end}}</div>{{end}}
{{define "document_info"}}<div class="document-info">{{if .Title}}<div class="document-title">{{.Title}}</div>{{end}}<table class="document-meta">{{range .Rows}}<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>{{end}}</table></div>{{end}}
{{define "items_table"}}<table class="items"><thead><tr>{{range .Columns}}<th style="{{.Style}}">{{.Header}}</th>{{end}}</tr></thead><tbody>{{range .Rows}}<tr class="{{.Class}}">{{range .Cells}}<td style="{{.Style}}">{{.Text}}</td>{{end}}</tr>{{end}}</tbody></table>{{end}}
{{define "totals"}}<table class="totals">{{range .}}<tr class="{{.Class}}"><th>{{.Label}}</th><td>{{.Value}}</td></tr>{{end}}</table>{{end}}
{{define "notes"}}<div class="notes">{{if .Title}}<div class="notes-title">{{.Title}}</div>{{end}}<div class="notes-body">{{.Text}}</div></div>{{end}}
{{define "footer"}}<div class="footer">{{if .LegalText}}<div class="legal-text">{{.LegalText}}</div>{{end}}{{if .Mentions}}<div class="legal-mentions">{{.Mentions}}</div>{{end}}{{if .PageNumbers}}<div class="page-number">Page {{.PageToken}} / {{.TotalToken}}</div>{{end}}</div>{{end}}
{{define "signature"}}<div class="signature signature-{{.Mode}}"><div class="signature-label">{{.Label}}</div>{{if .Name}}<div class="signature-name">{{.Name}}</div>{{end}}{{if .Digital}}<div class="signature-digital">{{.Digital}}</div>{{else}}<div class="signature-area"></div>{{end}}{{if .DateLabel}}<div class="signature-date">{{.DateLabel}} : ____________</div>{{end}}</div>{{end}}
{{define "text"}}<div class="text-content">{{.}}</div>{{end}}
{{define "image"}}<div class="image"{{if .Align}} style="{{.Align}}"{{end}}><img src="{{.URL}}" alt="{{.Alt}}"{{if .Width}} style="{{.Width}}"{{end}} /></div>{{end}}
{{define "spacer"}}<div class="spacer" style="{{.}}"></div>{{end}}
{{define "divider"}}<hr class="divider" style="{{.}}" />{{end}}
{{define "qr_code"}}<div class="qr-code">{{if .Image}}<img src="{{.Image}}" alt="QR code" width="{{.Size}}" height="{{.Size}}" />{{else}}<div class="qr-code-payload">{{.Payload}}</div>{{end}}{{if .Label}}<div class="qr-code-label">{{.Label}}</div>{{end}}</div>{{end}}
{{define "watermark"}}<div class="watermark" style="{{.Style}}">{{if .Image}}<img src="{{.Image}}" alt="" />{{else}}{{.Text}}{{end}}</div>{{end}}
`

var blockTemplates = template.Must(template.New("blocks").Parse(blockTemplateSource))

const (
	pageNumberToken = "{{page_number}}"
	totalPagesToken = "{{total_pages}}"
)

// blockView selects the template and builds its view for cfg. ok is false
// when the block has nothing to show.
func blockView(ctx renderContext, cfg BlockConfig, data map[string]any) (name string, view any, ok bool) {
	switch c := cfg.(type) {
	case HeaderConfig:
		view, ok = headerView(c, data)
		return "header", view, ok
	case CompanyInfoConfig:
		return "party", companyView(ctx, c, data), true
	case ClientInfoConfig:
		return "party", clientView(ctx, c, data), true
	case DocumentInfoConfig:
		view, ok = documentInfoView(ctx, c, data)
		return "document_info", view, ok
	case ItemsTableConfig:
		view, ok = itemsTableView(ctx, c, data)
		return "items_table", view, ok
	case TotalsConfig:
		view, ok = totalsView(ctx, c, data)
		return "totals", view, ok
	case NotesConfig:
		view, ok = notesView(c, data)
		return "notes", view, ok
	case FooterConfig:
		view, ok = footerView(ctx, c)
		return "footer", view, ok
	case SignatureConfig:
		return "signature", signatureView(ctx, c, data), true
	case TextConfig:
		if strings.TrimSpace(c.Content) == "" {
			return "", nil, false
		}
		return "text", c.Content, true
	case ImageConfig:
		view, ok = imageView(c)
		return "image", view, ok
	case SpacerConfig:
		return "spacer", spacerCSS(c), true
	case DividerConfig:
		return "divider", dividerCSS(c), true
	case QRCodeConfig:
		view, ok = qrCodeView(ctx, c, data)
		return "qr_code", view, ok
	case WatermarkConfig:
		view, ok = watermarkView(c)
		return "watermark", view, ok
	}
	return "", nil, false
}

type headerData struct {
	Logo         template.URL
	LogoPosition string
	CompanyName  string
	Title        string
	Subtitle     string
}

func headerView(c HeaderConfig, data map[string]any) (headerData, bool) {
	view := headerData{
		LogoPosition: "left",
		CompanyName:  text(data, "company_name"),
		Title:        c.Title,
		Subtitle:     c.Subtitle,
	}
	if c.LogoPosition == "center" || c.LogoPosition == "right" {
		view.LogoPosition = c.LogoPosition
	}
	if c.ShowLogo {
		if logo, ok := safeURL(text(data, "company_logo")); ok {
			view.Logo = logo
		}
	}
	return view, view.Logo != "" || view.Title != "" || view.Subtitle != ""
}

type partyLine struct {
	Label string
	Value string
}

type partyData struct {
	Kind    string
	Title   string
	Name    string
	Address string
	City    string
	Country string
	Extra   []partyLine
}

func party(kind, title, prefix string, data map[string]any) partyData {
	return partyData{
		Kind:    kind,
		Title:   title,
		Name:    text(data, prefix+"_name"),
		Address: text(data, prefix+"_address"),
		City:    strings.TrimSpace(text(data, prefix+"_postal_code") + " " + text(data, prefix+"_city")),
		Country: text(data, prefix+"_country"),
	}
}

func (p *partyData) add(label, value string) {
	if value != "" {
		p.Extra = append(p.Extra, partyLine{Label: label, Value: value})
	}
}

func companyView(ctx renderContext, c CompanyInfoConfig, data map[string]any) partyData {
	view := party("company", c.Title, "company", data)
	if c.ShowVATNumber {
		view.add(ctx.pack.Vocabulary.VATNumber, text(data, "company_vat_number"))
	}
	if c.ShowContact {
		view.add("Tél.", ctx.pack.FormatPhone(text(data, "company_phone")))
		view.add("E-mail", text(data, "company_email"))
		view.add("Web", text(data, "company_website"))
	}
	if c.ShowBank {
		view.add("IBAN", text(data, "company_iban"))
		view.add("BIC", text(data, "company_bic"))
	}
	return view
}

func clientView(ctx renderContext, c ClientInfoConfig, data map[string]any) partyData {
	title := c.Title
	if title == "" {
		title = ctx.pack.Vocabulary.Client
	}
	view := party("client", title, "client", data)
	if c.ShowVATNumber {
		view.add(ctx.pack.Vocabulary.VATNumber, text(data, "client_vat_number"))
	}
	if c.ShowContact {
		view.add("Tél.", ctx.pack.FormatPhone(text(data, "client_phone")))
		view.add("E-mail", text(data, "client_email"))
	}
	return view
}

type documentField struct {
	label func(locale.Vocabulary) string
	keys  []string
	date  bool
}

func fixedLabel(s string) func(locale.Vocabulary) string {
	return func(locale.Vocabulary) string { return s }
}

var documentFields = map[string]documentField{
	"number":           {label: fixedLabel("Numéro"), keys: []string{"document_number", "quote_number", "invoice_number"}},
	"date":             {label: func(v locale.Vocabulary) string { return v.Date }, keys: []string{"document_date", "quote_date", "invoice_date", "date"}, date: true},
	"validity":         {label: fixedLabel("Valable jusqu'au"), keys: []string{"validity_date", "valid_until"}, date: true},
	"due_date":         {label: func(v locale.Vocabulary) string { return v.DueDate }, keys: []string{"due_date"}, date: true},
	"reference":        {label: fixedLabel("Communication structurée"), keys: []string{"structured_reference"}},
	"client_reference": {label: fixedLabel("Votre référence"), keys: []string{"client_reference"}},
}

var defaultDocumentFields = []string{"number", "date", "validity"}

type documentInfoData struct {
	Title string
	Rows  []partyLine
}

func documentInfoView(ctx renderContext, c DocumentInfoConfig, data map[string]any) (documentInfoData, bool) {
	fields := c.Fields
	if len(fields) == 0 {
		fields = defaultDocumentFields
	}
	view := documentInfoData{Title: c.Title}
	for _, name := range fields {
		field, known := documentFields[name]
		if !known {
			field = documentField{label: fixedLabel(name), keys: []string{name}}
		}
		value := documentValue(ctx, field, data)
		if value == "" {
			continue
		}
		view.Rows = append(view.Rows, partyLine{Label: field.label(ctx.pack.Vocabulary), Value: value})
	}
	return view, view.Title != "" || len(view.Rows) > 0
}

func documentValue(ctx renderContext, field documentField, data map[string]any) string {
	for _, key := range field.keys {
		raw, ok := data[key]
		if !ok {
			continue
		}
		if field.date {
			if t, ok := dateValue(raw); ok {
				return ctx.formatter.FormatDate(t)
			}
		}
		if s := strings.TrimSpace(Stringify(raw)); s != "" {
			return s
		}
	}
	return ""
}

type columnData struct {
	Header string
	Style  template.CSS
}

type cellData struct {
	Text  string
	Style template.CSS
}

type rowData struct {
	Class string
	Cells []cellData
}

type itemsTableData struct {
	Columns []columnData
	Rows    []rowData
}

func itemsTableView(ctx renderContext, c ItemsTableConfig, data map[string]any) (itemsTableData, bool) {
	if len(c.Columns) == 0 {
		return itemsTableData{}, false
	}
	view := itemsTableData{Columns: make([]columnData, len(c.Columns))}
	cellStyles := make([]template.CSS, len(c.Columns))
	for i, col := range c.Columns {
		var decls []string
		if w := sanitizeLength(col.Width); w != "" {
			decls = append(decls, "width: "+w)
		}
		if a := sanitizeAlign(col.Align); a != "" {
			decls = append(decls, "text-align: "+a)
		}
		cellStyles[i] = template.CSS(strings.Join(decls, "; "))
		headerStyle := cellStyles[i]
		if color := sanitizeColor(c.HeaderColor, ""); color != "" {
			headerStyle = template.CSS(strings.Join(append(decls, "background-color: "+color), "; "))
		}
		view.Columns[i] = columnData{Header: col.Header, Style: headerStyle}
	}

	for i, item := range rows(data["items"]) {
		row := rowData{Class: "row", Cells: make([]cellData, len(c.Columns))}
		if c.AlternateRowColors && i%2 == 1 {
			row.Class = "row row-odd"
		}
		for j, col := range c.Columns {
			row.Cells[j] = cellData{Text: cellText(ctx.formatter, col, item), Style: cellStyles[j]}
		}
		view.Rows = append(view.Rows, row)
	}
	return view, true
}

func cellText(f Formatter, col TableColumn, item map[string]any) string {
	raw, ok := item[col.Field]
	if !ok && (col.Field == "total" || col.Field == "amount" || col.Field == "line_total") {
		if amount, computed := lineAmount(item); computed {
			raw, ok = amount, true
		}
	}
	if !ok {
		return ""
	}
	switch col.Format {
	case "currency":
		if n, ok := number(raw); ok {
			return f.FormatCurrency(n)
		}
	case "number":
		if n, ok := number(raw); ok {
			decimals := 2
			if n == math.Trunc(n) {
				decimals = 0
			}
			return f.FormatNumber(n, decimals)
		}
	case "percent":
		if n, ok := number(raw); ok {
			return f.FormatPercent(n)
		}
	}
	return Stringify(raw)
}

type totalsLine struct {
	Class string
	Label string
	Value string
}

func totalsView(ctx renderContext, c TotalsConfig, data map[string]any) ([]totalsLine, bool) {
	amounts := map[string]float64{}
	known := map[string]bool{}
	for _, key := range []string{"subtotal", "tax_amount", "total"} {
		if n, ok := number(data[key]); ok {
			amounts[key], known[key] = n, true
		}
	}
	if !known["total"] {
		if lines := totalsLines(data); len(lines) > 0 {
			computed := locale.ComputeTotals(string(ctx.pack.Code), lines).TemplateData()
			for key, value := range computed {
				if !known[key] {
					amounts[key], known[key] = value.(float64), true
				}
			}
		}
	}

	vocab := ctx.pack.Vocabulary
	taxLabel := firstNonEmpty(c.TaxLabel, vocab.VAT)
	if rate, ok := number(data["tax_rate"]); ok && c.TaxLabel == "" {
		taxLabel += " (" + ctx.formatter.FormatPercent(rate) + ")"
	}

	var out []totalsLine
	add := func(show bool, key, class, label string) {
		if show && known[key] {
			out = append(out, totalsLine{Class: class, Label: label, Value: ctx.formatter.FormatCurrency(amounts[key])})
		}
	}
	add(c.ShowSubtotal, "subtotal", "totals-subtotal", firstNonEmpty(c.SubtotalLabel, vocab.Subtotal))
	add(c.ShowTax, "tax_amount", "totals-tax", taxLabel)
	add(c.ShowTotal, "total", "totals-total", firstNonEmpty(c.TotalLabel, vocab.Total))
	return out, len(out) > 0
}

func totalsLines(data map[string]any) []locale.Line {
	items := rows(data["items"])
	lines := make([]locale.Line, 0, len(items))
	for _, item := range items {
		qty, ok := number(item["quantity"])
		if !ok {
			continue
		}
		price, ok := number(item["unit_price"])
		if !ok {
			continue
		}
		line := locale.Line{Quantity: qty, UnitPrice: price}
		if rate, ok := number(item["tax_rate"]); ok {
			line.TaxRate = &rate
		}
		lines = append(lines, line)
	}
	return lines
}

type notesData struct {
	Title string
	Text  string
}

func notesView(c NotesConfig, data map[string]any) (notesData, bool) {
	notes := Stringify(data["notes"])
	if strings.TrimSpace(notes) == "" {
		return notesData{}, false
	}
	return notesData{Title: c.Title, Text: notes}, true
}

type footerData struct {
	LegalText   string
	Mentions    string
	PageNumbers bool
	PageToken   string
	TotalToken  string
}

func footerView(ctx renderContext, c FooterConfig) (footerData, bool) {
	view := footerData{
		LegalText:   c.LegalText,
		PageNumbers: c.ShowPageNumbers,
		PageToken:   pageNumberToken,
		TotalToken:  totalPagesToken,
	}
	if c.IncludeLegalMentions {
		view.Mentions = locale.GenerateLegalMentions(string(ctx.pack.Code), locale.LegalOptions{
			IncludeDataProtection: c.IncludeDataProtection,
		})
	}
	return view, strings.TrimSpace(view.LegalText) != "" || view.Mentions != "" || view.PageNumbers
}

type signatureData struct {
	Mode      string
	Label     string
	Name      string
	Digital   string
	DateLabel string
}

func signatureView(ctx renderContext, c SignatureConfig, data map[string]any) signatureData {
	view := signatureData{
		Mode:  "line",
		Label: firstNonEmpty(c.Label, ctx.pack.Vocabulary.Signature),
		Name:  c.SignatoryName,
	}
	switch c.Mode {
	case "box":
		view.Mode = "box"
	case "digital":
		view.Mode = "digital"
		view.Digital = "Signature électronique"
		if t, ok := dateValue(data["signed_at"]); ok {
			view.Digital = "Signé électroniquement le " + ctx.formatter.FormatDate(t)
		}
	}
	if c.ShowDate {
		view.DateLabel = ctx.pack.Vocabulary.Date
	}
	return view
}

type imageData struct {
	URL   template.URL
	Alt   string
	Width template.CSS
	Align template.CSS
}

func imageView(c ImageConfig) (imageData, bool) {
	url, ok := safeURL(c.URL)
	if !ok {
		return imageData{}, false
	}
	view := imageData{URL: url, Alt: c.Alt}
	if w := sanitizeLength(c.Width); w != "" {
		view.Width = template.CSS("width: " + w)
	}
	if a := sanitizeAlign(c.Align); a != "" {
		view.Align = template.CSS("text-align: " + a)
	}
	return view, true
}

func spacerCSS(c SpacerConfig) template.CSS {
	height := c.Height
	if height <= 0 || height > 2000 {
		height = 20
	}
	return template.CSS("height: " + px(height))
}

func dividerCSS(c DividerConfig) template.CSS {
	thickness := c.Thickness
	if thickness <= 0 || thickness > 20 {
		thickness = 1
	}
	lineStyle := "solid"
	if lineStyles[c.LineStyle] {
		lineStyle = c.LineStyle
	}
	color := sanitizeColor(c.Color, "#e5e7eb")
	return template.CSS("border: 0; border-top: " + px(thickness) + " " + lineStyle + " " + color)
}

type watermarkData struct {
	Style template.CSS
	Image template.URL
	Text  string
}

func watermarkView(c WatermarkConfig) (watermarkData, bool) {
	opacity := c.Opacity
	if opacity <= 0 || opacity > 1 {
		opacity = 0.1
	}
	rotation := c.Rotation
	if rotation == 0 || math.Abs(rotation) > 360 {
		rotation = -45
	}
	view := watermarkData{
		Style: template.CSS("opacity: " + strconv.FormatFloat(opacity, 'f', -1, 64) +
			"; transform: translate(-50%, -50%) rotate(" + strconv.FormatFloat(rotation, 'f', -1, 64) + "deg)"),
		Text: c.Text,
	}
	if url, ok := safeURL(c.ImageURL); ok {
		view.Image = url
	}
	return view, view.Image != "" || strings.TrimSpace(view.Text) != ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
