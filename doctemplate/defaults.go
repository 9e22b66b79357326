package doctemplate

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"
)

//go:embed defaults/*.yaml
var defaultFiles embed.FS

var (
	defaultsOnce sync.Once
	defaults     []DocumentTemplate
	defaultsErr  error
)

func loadDefaults() ([]DocumentTemplate, error) {
	defaultsOnce.Do(func() {
		paths, err := fs.Glob(defaultFiles, "defaults/*.yaml")
		if err != nil {
			defaultsErr = err
			return
		}
		sort.Strings(paths)
		for _, path := range paths {
			raw, err := defaultFiles.ReadFile(path)
			if err != nil {
				defaultsErr = err
				return
			}
			tpl, err := DecodeTemplateFile(path, raw)
			if err != nil {
				defaultsErr = err
				return
			}
			if err := Validate(tpl); err != nil {
				defaultsErr = fmt.Errorf("built-in template %s: %w", path, err)
				return
			}
			defaults = append(defaults, tpl)
		}
	})
	return defaults, defaultsErr
}

// DefaultTemplates returns copies of the built-in templates.
func DefaultTemplates() []DocumentTemplate {
	tpls, err := loadDefaults()
	if err != nil {
		return nil
	}
	out := make([]DocumentTemplate, len(tpls))
	for i, tpl := range tpls {
		out[i] = tpl.Clone()
	}
	return out
}

// DefaultTemplate returns a copy of the built-in template of the given type.
func DefaultTemplate(t TemplateType) (DocumentTemplate, bool) {
	tpls, err := loadDefaults()
	if err != nil {
		return DocumentTemplate{}, false
	}
	for _, tpl := range tpls {
		if tpl.Type == t {
			return tpl.Clone(), true
		}
	}
	return DocumentTemplate{}, false
}
