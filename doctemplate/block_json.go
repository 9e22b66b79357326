package doctemplate

import "encoding/json"

type blockEnvelope struct {
	ID      string          `json:"id"`
	Type    BlockType       `json:"type"`
	Order   int             `json:"order"`
	Visible bool            `json:"visible"`
	Config  json.RawMessage `json:"config"`
	Style   BlockStyle      `json:"style"`
}

// UnmarshalJSON decodes the envelope first, then the configuration variant
// selected by the type tag.
func (b *TemplateBlock) UnmarshalJSON(data []byte) error {
	var env blockEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	*b = TemplateBlock{
		ID:      env.ID,
		Type:    env.Type,
		Order:   env.Order,
		Visible: env.Visible,
		Config:  decodeBlockConfig(env.Type, env.Config),
		Style:   env.Style,
	}
	return nil
}

// MarshalJSON writes the zero configuration of the block type when Config is nil.
func (b TemplateBlock) MarshalJSON() ([]byte, error) {
	cfg := b.Config
	if cfg == nil {
		cfg = NewBlockConfig(b.Type)
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	return json.Marshal(blockEnvelope{
		ID:      b.ID,
		Type:    b.Type,
		Order:   b.Order,
		Visible: b.Visible,
		Config:  raw,
		Style:   b.Style,
	})
}
