package locale

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// FSLoader reads catalog files from a file system. Each file maps locale
// codes to their messages; .json, .yaml, .yml and .toml are accepted.
type FSLoader struct {
	fsys     fs.FS
	patterns []string
}

func NewFSLoader(fsys fs.FS, patterns ...string) *FSLoader {
	return &FSLoader{fsys: fsys, patterns: append([]string(nil), patterns...)}
}

func (l *FSLoader) Load() (Catalogs, error) {
	if l == nil || l.fsys == nil || len(l.patterns) == 0 {
		return nil, errors.New("locale: no catalog files configured")
	}

	catalogs := make(Catalogs)
	for _, pattern := range l.patterns {
		paths, err := fs.Glob(l.fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("locale: glob %s: %w", pattern, err)
		}
		for _, p := range paths {
			data, err := fs.ReadFile(l.fsys, p)
			if err != nil {
				return nil, fmt.Errorf("locale: read %s: %w", p, err)
			}
			src, err := decodeCatalogFile(p, data)
			if err != nil {
				return nil, fmt.Errorf("locale: decode %s: %w", p, err)
			}
			mergeCatalogs(catalogs, src)
		}
	}
	return catalogs, nil
}

func decodeCatalogFile(name string, data []byte) (Catalogs, error) {
	var raw map[string]map[string]string

	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("toml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	if len(raw) == 0 {
		return nil, errors.New("empty catalog")
	}

	catalogs := make(Catalogs, len(raw))
	for locale, messages := range raw {
		if locale == "" {
			return nil, fmt.Errorf("empty locale in %s", name)
		}
		catalog := make(map[string]Message, len(messages))
		for key, template := range messages {
			if key == "" {
				return nil, fmt.Errorf("empty key in %s/%s", locale, name)
			}
			catalog[key] = Message{
				ID:         key,
				Locale:     locale,
				Template:   template,
				FormatArgs: extractFormatArgs(template),
				Source:     name,
			}
		}
		catalogs[locale] = catalog
	}
	return catalogs, nil
}

// later files override earlier ones key by key
func mergeCatalogs(dst, src Catalogs) {
	for locale, messages := range src {
		bucket, ok := dst[locale]
		if !ok {
			bucket = make(map[string]Message, len(messages))
			dst[locale] = bucket
		}
		for key, message := range messages {
			bucket[key] = message
		}
	}
}

func extractFormatArgs(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	args := make([]string, 0, len(matches))
	for _, match := range matches {
		if _, ok := seen[match[1]]; ok {
			continue
		}
		seen[match[1]] = struct{}{}
		args = append(args, match[1])
	}
	return args
}
