package doctemplate

import (
	"encoding/json"
	"time"
)

// TemplateType is the kind of document a template lays out.
type TemplateType string

const (
	TypeQuote        TemplateType = "quote"
	TypeInvoice      TemplateType = "invoice"
	TypeContract     TemplateType = "contract"
	TypeDeliveryNote TemplateType = "delivery_note"
)

// BlockType tags a TemplateBlock and selects its configuration variant.
type BlockType string

const (
	BlockHeader       BlockType = "header"
	BlockCompanyInfo  BlockType = "company_info"
	BlockClientInfo   BlockType = "client_info"
	BlockDocumentInfo BlockType = "document_info"
	BlockItemsTable   BlockType = "items_table"
	BlockTotals       BlockType = "totals"
	BlockNotes        BlockType = "notes"
	BlockFooter       BlockType = "footer"
	BlockSignature    BlockType = "signature"
	BlockText         BlockType = "text"
	BlockImage        BlockType = "image"
	BlockSpacer       BlockType = "spacer"
	BlockDivider      BlockType = "divider"
	BlockQRCode       BlockType = "qr_code"
	BlockWatermark    BlockType = "watermark"
)

// BlockTypes lists the closed set of block types this renderer understands.
func BlockTypes() []BlockType {
	return []BlockType{
		BlockHeader, BlockCompanyInfo, BlockClientInfo, BlockDocumentInfo,
		BlockItemsTable, BlockTotals, BlockNotes, BlockFooter, BlockSignature,
		BlockText, BlockImage, BlockSpacer, BlockDivider, BlockQRCode, BlockWatermark,
	}
}

// Known reports whether t belongs to the closed set of block types.
func (t BlockType) Known() bool {
	for _, known := range BlockTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Margins are expressed in millimetres.
type Margins struct {
	Top    float64 `json:"top" validate:"gte=0,lte=100"`
	Right  float64 `json:"right" validate:"gte=0,lte=100"`
	Bottom float64 `json:"bottom" validate:"gte=0,lte=100"`
	Left   float64 `json:"left" validate:"gte=0,lte=100"`
}

// PageSettings describe the printed page.
type PageSettings struct {
	Size        string  `json:"size" validate:"omitempty,oneof=A4 A5 Letter Legal"`
	Orientation string  `json:"orientation" validate:"omitempty,oneof=portrait landscape"`
	Margins     Margins `json:"margins"`
}

// GlobalStyles are the defaults every block inherits through CSS variables.
type GlobalStyles struct {
	PrimaryColor   string  `json:"primaryColor,omitempty"`
	SecondaryColor string  `json:"secondaryColor,omitempty"`
	FontFamily     string  `json:"fontFamily,omitempty"`
	FontSize       float64 `json:"fontSize,omitempty" validate:"omitempty,gt=0,lte=72"`
}

// BlockStyle is the type-agnostic presentation of a block.
type BlockStyle struct {
	Margin          string  `json:"margin,omitempty"`
	Padding         string  `json:"padding,omitempty"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	TextColor       string  `json:"textColor,omitempty"`
	FontSize        float64 `json:"fontSize,omitempty"`
	FontWeight      string  `json:"fontWeight,omitempty"`
	TextAlign       string  `json:"textAlign,omitempty"`
	BorderColor     string  `json:"borderColor,omitempty"`
	BorderWidth     float64 `json:"borderWidth,omitempty"`
	BorderRadius    float64 `json:"borderRadius,omitempty"`
	Width           string  `json:"width,omitempty"`
	Height          string  `json:"height,omitempty"`
}

// TemplateBlock is one renderable unit of a document.
// Config holds the variant matching Type; see BlockConfig.
type TemplateBlock struct {
	ID      string      `json:"id" validate:"required,max=64"`
	Type    BlockType   `json:"type" validate:"required"`
	Order   int         `json:"order"`
	Visible bool        `json:"visible"`
	Config  BlockConfig `json:"config" validate:"-"`
	Style   BlockStyle  `json:"style"`
}

// DocumentTemplate is a reusable document layout plus its catalog metadata.
type DocumentTemplate struct {
	ID           string          `json:"id,omitempty"`
	UserID       string          `json:"userId,omitempty"`
	Name         string          `json:"name" validate:"required,max=200"`
	Description  string          `json:"description,omitempty" validate:"max=2000"`
	Type         TemplateType    `json:"type" validate:"required,oneof=quote invoice contract delivery_note"`
	Category     string          `json:"category,omitempty" validate:"max=100"`
	IsPublic     bool            `json:"isPublic"`
	IsPremium    bool            `json:"isPremium"`
	Price        float64         `json:"price" validate:"gte=0"`
	UsageCount   int             `json:"usageCount"`
	Page         PageSettings    `json:"page"`
	GlobalStyles GlobalStyles    `json:"globalStyles"`
	Blocks       []TemplateBlock `json:"blocks" validate:"dive"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// Layout is the part of a template persisted as a single JSON document.
type Layout struct {
	Page         PageSettings    `json:"page"`
	GlobalStyles GlobalStyles    `json:"globalStyles"`
	Blocks       []TemplateBlock `json:"blocks"`
}

// Layout returns a deep copy of the page, styles and blocks of t.
func (t DocumentTemplate) Layout() Layout {
	c := t.Clone()
	return Layout{Page: c.Page, GlobalStyles: c.GlobalStyles, Blocks: c.Blocks}
}

// MarshalLayout encodes the layout part of t, the template_data column of a row.
func (t DocumentTemplate) MarshalLayout() ([]byte, error) {
	return json.Marshal(t.Layout())
}

// UnmarshalLayout decodes a template_data document into t.
func (t *DocumentTemplate) UnmarshalLayout(data []byte) error {
	var layout Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return err
	}
	t.Page = layout.Page
	t.GlobalStyles = layout.GlobalStyles
	t.Blocks = layout.Blocks
	return nil
}

// Clone returns a deep copy of t.
func (t DocumentTemplate) Clone() DocumentTemplate {
	out := t
	if t.Blocks != nil {
		out.Blocks = make([]TemplateBlock, len(t.Blocks))
		for i, b := range t.Blocks {
			out.Blocks[i] = b.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of b.
func (b TemplateBlock) Clone() TemplateBlock {
	out := b
	out.Config = cloneConfig(b.Config)
	return out
}

// Block returns the block with the given id.
func (t DocumentTemplate) Block(id string) (TemplateBlock, bool) {
	for _, b := range t.Blocks {
		if b.ID == id {
			return b.Clone(), true
		}
	}
	return TemplateBlock{}, false
}
