package doctemplate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeTemplateFile decodes a template from JSON or YAML, chosen by the
// extension of name.
func DecodeTemplateFile(name string, data []byte) (DocumentTemplate, error) {
	var tpl DocumentTemplate
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		if err := json.Unmarshal(data, &tpl); err != nil {
			return DocumentTemplate{}, fmt.Errorf("decode %s: %w", name, err)
		}
	case ".yaml", ".yml":
		encoded, err := yamlToJSON(data)
		if err != nil {
			return DocumentTemplate{}, fmt.Errorf("decode %s: %w", name, err)
		}
		if err := json.Unmarshal(encoded, &tpl); err != nil {
			return DocumentTemplate{}, fmt.Errorf("decode %s: %w", name, err)
		}
	default:
		return DocumentTemplate{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return tpl, nil
}

// LoadTemplateFile reads and decodes the template file at path.
func LoadTemplateFile(path string) (DocumentTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DocumentTemplate{}, err
	}
	return DecodeTemplateFile(path, data)
}

// LoadDataFile reads a JSON or YAML data record.
func LoadDataFile(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(raw, &data)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return data, nil
}

// yamlToJSON re-encodes a YAML document as JSON so templates go through the
// same tagged block decoding whatever their source format.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
