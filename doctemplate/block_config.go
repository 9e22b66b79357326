package doctemplate

import (
	"encoding/json"
	"fmt"
)

// BlockConfig is the per-type configuration of a block. Each BlockType has
// exactly one concrete variant; UnknownConfig carries anything else untouched.
type BlockConfig interface {
	BlockType() BlockType
}

// HeaderConfig is the document title band
type HeaderConfig struct {
	Title        string `json:"title,omitempty"`
	Subtitle     string `json:"subtitle,omitempty"`
	ShowLogo     bool   `json:"showLogo,omitempty"`
	LogoPosition string `json:"logoPosition,omitempty"`
}

// CompanyInfoConfig selects the issuer details to print
type CompanyInfoConfig struct {
	Title         string `json:"title,omitempty"`
	ShowVATNumber bool   `json:"showVatNumber,omitempty"`
	ShowContact   bool   `json:"showContact,omitempty"`
	ShowBank      bool   `json:"showBank,omitempty"`
}

// ClientInfoConfig selects the client details to print
type ClientInfoConfig struct {
	Title         string `json:"title,omitempty"`
	ShowVATNumber bool   `json:"showVatNumber,omitempty"`
	ShowContact   bool   `json:"showContact,omitempty"`
}

// DocumentInfoConfig lists the metadata rows to print, see documentFields.
type DocumentInfoConfig struct {
	Title  string   `json:"title,omitempty"`
	Fields []string `json:"fields,omitempty"`
}

// TableColumn describes one column of an items table.
// Format is one of "currency", "number", "percent" or empty for raw text.
type TableColumn struct {
	Field  string `json:"field"`
	Header string `json:"header"`
	Width  string `json:"width,omitempty"`
	Align  string `json:"align,omitempty"`
	Format string `json:"format,omitempty"`
}

// ItemsTableConfig lays out the line items read from data["items"]
type ItemsTableConfig struct {
	Columns            []TableColumn `json:"columns"`
	AlternateRowColors bool          `json:"alternateRowColors,omitempty"`
	HeaderColor        string        `json:"headerColor,omitempty"`
}

// TotalsConfig picks the subtotal, tax and total lines
type TotalsConfig struct {
	ShowSubtotal  bool   `json:"showSubtotal,omitempty"`
	ShowTax       bool   `json:"showTax,omitempty"`
	ShowTotal     bool   `json:"showTotal,omitempty"`
	SubtotalLabel string `json:"subtotalLabel,omitempty"`
	TaxLabel      string `json:"taxLabel,omitempty"`
	TotalLabel    string `json:"totalLabel,omitempty"`
}

// NotesConfig titles the free text taken from data["notes"]
type NotesConfig struct {
	Title string `json:"title,omitempty"`
}

// FooterConfig holds the legal text and page numbering
type FooterConfig struct {
	LegalText             string `json:"legalText,omitempty"`
	ShowPageNumbers       bool   `json:"showPageNumbers,omitempty"`
	IncludeLegalMentions  bool   `json:"includeLegalMentions,omitempty"`
	IncludeDataProtection bool   `json:"includeDataProtection,omitempty"`
}

// SignatureConfig.Mode is "line", "box" or "digital".
type SignatureConfig struct {
	Label         string `json:"label,omitempty"`
	Mode          string `json:"mode,omitempty"`
	SignatoryName string `json:"signatoryName,omitempty"`
	ShowDate      bool   `json:"showDate,omitempty"`
}

// TextConfig is a free paragraph, skipped when blank
type TextConfig struct {
	Content string `json:"content"`
}

// ImageConfig.URL must be http(s) or a data:image URI
type ImageConfig struct {
	URL   string `json:"url"`
	Alt   string `json:"alt,omitempty"`
	Width string `json:"width,omitempty"`
	Align string `json:"align,omitempty"`
}

// SpacerConfig.Height is in pixels.
type SpacerConfig struct {
	Height float64 `json:"height"`
}

// DividerConfig draws a horizontal rule
type DividerConfig struct {
	Thickness float64 `json:"thickness,omitempty"`
	Color     string  `json:"color,omitempty"`
	LineStyle string  `json:"lineStyle,omitempty"`
}

// QRCodeConfig.Payload is "text" (Content as is) or "epc" (a SEPA credit
// transfer built from the company bank data and the document total).
type QRCodeConfig struct {
	Content string `json:"content,omitempty"`
	Payload string `json:"payload,omitempty"`
	Size    int    `json:"size,omitempty"`
	Label   string `json:"label,omitempty"`
}

// WatermarkConfig is drawn behind the page content
type WatermarkConfig struct {
	Text     string  `json:"text,omitempty"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Opacity  float64 `json:"opacity,omitempty"`
	Rotation float64 `json:"rotation,omitempty"`
}

// UnknownConfig keeps the raw configuration of a block whose type is not
// known, or whose configuration could not be decoded, so it survives a
// load/save cycle unchanged.
type UnknownConfig struct {
	Type BlockType
	Raw  json.RawMessage
}

func (HeaderConfig) BlockType() BlockType       { return BlockHeader }
func (CompanyInfoConfig) BlockType() BlockType  { return BlockCompanyInfo }
func (ClientInfoConfig) BlockType() BlockType   { return BlockClientInfo }
func (DocumentInfoConfig) BlockType() BlockType { return BlockDocumentInfo }
func (ItemsTableConfig) BlockType() BlockType   { return BlockItemsTable }
func (TotalsConfig) BlockType() BlockType       { return BlockTotals }
func (NotesConfig) BlockType() BlockType        { return BlockNotes }
func (FooterConfig) BlockType() BlockType       { return BlockFooter }
func (SignatureConfig) BlockType() BlockType    { return BlockSignature }
func (TextConfig) BlockType() BlockType         { return BlockText }
func (ImageConfig) BlockType() BlockType        { return BlockImage }
func (SpacerConfig) BlockType() BlockType       { return BlockSpacer }
func (DividerConfig) BlockType() BlockType      { return BlockDivider }
func (QRCodeConfig) BlockType() BlockType       { return BlockQRCode }
func (WatermarkConfig) BlockType() BlockType    { return BlockWatermark }
func (c UnknownConfig) BlockType() BlockType    { return c.Type }

// MarshalJSON writes the raw configuration back verbatim.
func (c UnknownConfig) MarshalJSON() ([]byte, error) {
	if len(c.Raw) == 0 {
		return []byte("{}"), nil
	}
	return c.Raw, nil
}

// NewBlockConfig returns the zero configuration for t.
func NewBlockConfig(t BlockType) BlockConfig {
	switch t {
	case BlockHeader:
		return HeaderConfig{}
	case BlockCompanyInfo:
		return CompanyInfoConfig{}
	case BlockClientInfo:
		return ClientInfoConfig{}
	case BlockDocumentInfo:
		return DocumentInfoConfig{}
	case BlockItemsTable:
		return ItemsTableConfig{}
	case BlockTotals:
		return TotalsConfig{ShowSubtotal: true, ShowTax: true, ShowTotal: true}
	case BlockNotes:
		return NotesConfig{}
	case BlockFooter:
		return FooterConfig{}
	case BlockSignature:
		return SignatureConfig{Mode: "line"}
	case BlockText:
		return TextConfig{}
	case BlockImage:
		return ImageConfig{}
	case BlockSpacer:
		return SpacerConfig{Height: 20}
	case BlockDivider:
		return DividerConfig{Thickness: 1}
	case BlockQRCode:
		return QRCodeConfig{Payload: "text"}
	case BlockWatermark:
		return WatermarkConfig{}
	default:
		return UnknownConfig{Type: t}
	}
}

// decodeBlockConfig never fails: a configuration that does not fit its
// variant is kept as UnknownConfig and the block later renders empty.
func decodeBlockConfig(t BlockType, raw json.RawMessage) BlockConfig {
	if len(raw) == 0 || string(raw) == "null" {
		return NewBlockConfig(t)
	}

	var (
		cfg BlockConfig
		err error
	)
	switch t {
	case BlockHeader:
		cfg, err = decodeConfig[HeaderConfig](raw)
	case BlockCompanyInfo:
		cfg, err = decodeConfig[CompanyInfoConfig](raw)
	case BlockClientInfo:
		cfg, err = decodeConfig[ClientInfoConfig](raw)
	case BlockDocumentInfo:
		cfg, err = decodeConfig[DocumentInfoConfig](raw)
	case BlockItemsTable:
		cfg, err = decodeConfig[ItemsTableConfig](raw)
	case BlockTotals:
		cfg, err = decodeConfig[TotalsConfig](raw)
	case BlockNotes:
		cfg, err = decodeConfig[NotesConfig](raw)
	case BlockFooter:
		cfg, err = decodeConfig[FooterConfig](raw)
	case BlockSignature:
		cfg, err = decodeConfig[SignatureConfig](raw)
	case BlockText:
		cfg, err = decodeConfig[TextConfig](raw)
	case BlockImage:
		cfg, err = decodeConfig[ImageConfig](raw)
	case BlockSpacer:
		cfg, err = decodeConfig[SpacerConfig](raw)
	case BlockDivider:
		cfg, err = decodeConfig[DividerConfig](raw)
	case BlockQRCode:
		cfg, err = decodeConfig[QRCodeConfig](raw)
	case BlockWatermark:
		cfg, err = decodeConfig[WatermarkConfig](raw)
	default:
		err = fmt.Errorf("unknown block type %q", t)
	}
	if err != nil {
		return UnknownConfig{Type: t, Raw: append(json.RawMessage(nil), raw...)}
	}
	return cfg
}

func decodeConfig[T BlockConfig](raw json.RawMessage) (BlockConfig, error) {
	var cfg T
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func cloneConfig(cfg BlockConfig) BlockConfig {
	switch c := cfg.(type) {
	case DocumentInfoConfig:
		c.Fields = append([]string(nil), c.Fields...)
		return c
	case ItemsTableConfig:
		c.Columns = append([]TableColumn(nil), c.Columns...)
		return c
	case UnknownConfig:
		c.Raw = append(json.RawMessage(nil), c.Raw...)
		return c
	default:
		return cfg
	}
}
