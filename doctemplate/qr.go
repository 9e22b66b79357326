package doctemplate

import (
	"encoding/base64"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	defaultQRSize = 128
	minQRSize     = 64
	maxQRSize     = 1024
)

type qrData struct {
	Image   template.URL
	Size    int
	Payload string
	Label   string
}

func qrCodeView(ctx renderContext, c QRCodeConfig, data map[string]any) (qrData, bool) {
	payload := c.Content
	if c.Payload == "epc" && ctx.pack.Currency.Code == "EUR" {
		if epc, ok := epcPayload(data); ok {
			payload = epc
		}
	}
	if strings.TrimSpace(payload) == "" {
		return qrData{}, false
	}

	size := c.Size
	if size == 0 {
		size = ctx.qrSize
	}
	if size < minQRSize {
		size = minQRSize
	}
	if size > maxQRSize {
		size = maxQRSize
	}

	view := qrData{Size: size, Payload: payload, Label: c.Label}
	if image, ok := qrDataURI(payload, size); ok {
		view.Image = image
	}
	return view, true
}

// qrDataURI encodes content as an inline PNG. Content too long for a QR code
// reports false and the caller prints the payload instead.
func qrDataURI(content string, size int) (template.URL, bool) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return "", false
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)), true
}

// epcPayload builds an EPC069-12 (SEPA credit transfer) QR payload from the
// company bank details, the document total and the structured reference.
func epcPayload(data map[string]any) (string, bool) {
	iban := strings.ToUpper(strings.ReplaceAll(text(data, "company_iban"), " ", ""))
	name := text(data, "company_name")
	if iban == "" || name == "" {
		return "", false
	}
	name = truncateRunes(name, 70)

	amount := ""
	if total, ok := number(data["total"]); ok && total >= 0.01 && total <= 999999999.99 {
		amount = "EUR" + decimal.NewFromFloat(total).StringFixed(2)
	}

	remittance := text(data, "structured_reference")
	if remittance == "" {
		remittance = text(data, "document_number", "quote_number", "invoice_number")
	}
	remittance = truncateRunes(remittance, 140)

	lines := []string{
		"BCD",
		"002",
		"1",
		"SCT",
		strings.ToUpper(strings.ReplaceAll(text(data, "company_bic"), " ", "")),
		name,
		iban,
		amount,
		"",
		"",
		remittance,
	}
	return strings.Join(lines, "\n"), true
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
