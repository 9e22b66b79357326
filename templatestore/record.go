package templatestore

import (
	"encoding/json"
	"time"

	"github.com/martingeoffreyprive-hub/DEAL-sub001/doctemplate"
)

// Record is the row a template is persisted as. TemplateData holds the
// page settings, global styles and blocks as one JSON document.
type Record struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Type         string          `json:"type"`
	Category     string          `json:"category"`
	IsPublic     bool            `json:"is_public"`
	IsPremium    bool            `json:"is_premium"`
	Price        float64         `json:"price"`
	UsageCount   int             `json:"usage_count"`
	TemplateData json.RawMessage `json:"template_data,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (r Record) clone() Record {
	out := r
	out.TemplateData = append(json.RawMessage(nil), r.TemplateData...)
	return out
}

// ToRecord flattens tpl into its row shape.
func ToRecord(tpl doctemplate.DocumentTemplate) (Record, error) {
	data, err := tpl.MarshalLayout()
	if err != nil {
		return Record{}, err
	}
	return Record{
		ID:           tpl.ID,
		UserID:       tpl.UserID,
		Name:         tpl.Name,
		Description:  tpl.Description,
		Type:         string(tpl.Type),
		Category:     tpl.Category,
		IsPublic:     tpl.IsPublic,
		IsPremium:    tpl.IsPremium,
		Price:        tpl.Price,
		UsageCount:   tpl.UsageCount,
		TemplateData: data,
		CreatedAt:    tpl.CreatedAt,
		UpdatedAt:    tpl.UpdatedAt,
	}, nil
}

// FromRecord rebuilds a template from its row.
func FromRecord(r Record) (doctemplate.DocumentTemplate, error) {
	tpl := doctemplate.DocumentTemplate{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Description: r.Description,
		Type:        doctemplate.TemplateType(r.Type),
		Category:    r.Category,
		IsPublic:    r.IsPublic,
		IsPremium:   r.IsPremium,
		Price:       r.Price,
		UsageCount:  r.UsageCount,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if len(r.TemplateData) == 0 {
		return tpl, nil
	}
	if err := tpl.UnmarshalLayout(r.TemplateData); err != nil {
		return doctemplate.DocumentTemplate{}, err
	}
	return tpl, nil
}
