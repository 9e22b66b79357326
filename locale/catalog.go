package locale

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMissingTranslation indicates that no message was found for locale/key
var ErrMissingTranslation = errors.New("locale: missing translation")

// Message is a single catalog entry with the placeholders its template uses
type Message struct {
	ID         string
	Locale     string
	Template   string
	FormatArgs []string
	Source     string
}

// Clone returns a copy that does not share the FormatArgs slice
func (m Message) Clone() Message {
	out := m
	if len(m.FormatArgs) > 0 {
		out.FormatArgs = append([]string(nil), m.FormatArgs...)
	}
	return out
}

// Catalogs maps a locale code to its messages keyed by id
type Catalogs map[string]map[string]Message

// MessageStore exposes read only access to message templates
type MessageStore interface {
	// Get returns the template for locale/key and ok=false if missing
	Get(locale, key string) (string, bool)
	// Message returns the full entry for locale/key
	Message(locale, key string) (Message, bool)
	// Locales returns the locales known to the store
	Locales() []string
}

// Loader retrieves the catalogs used to seed a MessageStore
type Loader interface {
	Load() (Catalogs, error)
}

// LoaderFunc adapts a bare function to Loader
type LoaderFunc func() (Catalogs, error)

// Load implements Loader
func (fn LoaderFunc) Load() (Catalogs, error) {
	return fn()
}

// StaticStore is an in memory store, read only after construction
type StaticStore struct {
	catalogs Catalogs
	locales  []string
}

var _ MessageStore = &StaticStore{}

// NewStaticStore builds an immutable snapshot of the given catalogs
func NewStaticStore(data Catalogs) *StaticStore {
	if len(data) == 0 {
		return &StaticStore{catalogs: make(Catalogs)}
	}

	catalogs := make(Catalogs, len(data))
	locales := make([]string, 0, len(data))
	for locale, messages := range data {
		if messages == nil {
			continue
		}
		clone := make(map[string]Message, len(messages))
		for key, message := range messages {
			clone[key] = message.Clone()
		}
		catalogs[locale] = clone
		locales = append(locales, locale)
	}

	sort.Strings(locales)

	return &StaticStore{catalogs: catalogs, locales: locales}
}

// NewStaticStoreFromLoader hydrates a StaticStore using the provided loader
func NewStaticStoreFromLoader(loader Loader) (*StaticStore, error) {
	if loader == nil {
		return NewStaticStore(nil), nil
	}
	catalogs, err := loader.Load()
	if err != nil {
		return nil, err
	}
	return NewStaticStore(catalogs), nil
}

// Message returns a copy of the entry for locale/key
func (s *StaticStore) Message(locale, key string) (Message, bool) {
	if s == nil {
		return Message{}, false
	}
	msg, ok := s.catalogs[locale][key]
	if !ok {
		return Message{}, false
	}
	return msg.Clone(), true
}

// Get returns the template for locale/key
func (s *StaticStore) Get(locale, key string) (string, bool) {
	msg, ok := s.Message(locale, key)
	if !ok {
		return "", false
	}
	return msg.Template, true
}

// Locales returns the sorted locale codes
func (s *StaticStore) Locales() []string {
	if s == nil || len(s.locales) == 0 {
		return nil
	}
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}

// FallbackResolver resolves the locales tried after the requested one
type FallbackResolver interface {
	Resolve(locale string) []string
}

// DefaultFallback falls back to the default locale
type DefaultFallback struct{}

func (DefaultFallback) Resolve(locale string) []string {
	if locale == string(DefaultCode) {
		return nil
	}
	return []string{string(DefaultCode)}
}

// Translator resolves a string for a given locale and message key.
// args are name/value pairs filling the {name} placeholders.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// CatalogTranslator looks messages up in a store, walking the fallback chain
type CatalogTranslator struct {
	store    MessageStore
	fallback FallbackResolver
}

var _ Translator = &CatalogTranslator{}

// NewCatalogTranslator uses DefaultFallback when fallback is nil
func NewCatalogTranslator(store MessageStore, fallback FallbackResolver) *CatalogTranslator {
	if fallback == nil {
		fallback = DefaultFallback{}
	}
	return &CatalogTranslator{store: store, fallback: fallback}
}

func (t *CatalogTranslator) Translate(locale, key string, args ...any) (string, error) {
	if t == nil || t.store == nil {
		return "", ErrMissingTranslation
	}
	chain := append([]string{locale}, t.fallback.Resolve(locale)...)
	for _, candidate := range chain {
		if template, ok := t.store.Get(candidate, key); ok {
			return formatMessage(template, args), nil
		}
	}
	return "", fmt.Errorf("%w: %s/%s", ErrMissingTranslation, locale, key)
}

func formatMessage(template string, args []any) string {
	if len(args) < 2 || !strings.Contains(template, "{") {
		return template
	}
	values := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		name, ok := args[i].(string)
		if !ok {
			continue
		}
		values[name] = fmt.Sprint(args[i+1])
	}
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		if value, ok := values[match[1:len(match)-1]]; ok {
			return value
		}
		return match
	})
}
