package locale

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestStaticStoreCopiesInput(t *testing.T) {
	source := Catalogs{
		"fr-BE": {
			"greeting": {ID: "greeting", Locale: "fr-BE", Template: "Bonjour {name}", FormatArgs: []string{"name"}},
		},
		"fr-CH": {},
	}

	store := NewStaticStore(source)

	source["fr-BE"]["greeting"] = Message{Template: "changed"}
	got, ok := store.Get("fr-BE", "greeting")
	if !ok || got != "Bonjour {name}" {
		t.Fatalf("store changed with source: %q, %v", got, ok)
	}

	msg, _ := store.Message("fr-BE", "greeting")
	msg.FormatArgs[0] = "mutated"
	again, _ := store.Message("fr-BE", "greeting")
	if again.FormatArgs[0] != "name" {
		t.Fatalf("message format args shared with caller: %v", again.FormatArgs)
	}

	locales := store.Locales()
	if len(locales) != 2 || locales[0] != "fr-BE" || locales[1] != "fr-CH" {
		t.Fatalf("locales = %v", locales)
	}
	locales[0] = "zz"
	if store.Locales()[0] != "fr-BE" {
		t.Fatal("locales slice shared with caller")
	}

	if _, ok := store.Get("fr-CH", "greeting"); ok {
		t.Fatal("expected miss for key absent in locale")
	}
}

func TestNilStaticStore(t *testing.T) {
	var store *StaticStore
	if _, ok := store.Get("fr-BE", "any"); ok {
		t.Fatal("nil store returned a message")
	}
	if store.Locales() != nil {
		t.Fatal("nil store returned locales")
	}
}

func TestFSLoaderDecodesEveryFormat(t *testing.T) {
	fsys := fstest.MapFS{
		"catalogs/a.yaml": {Data: []byte("fr-BE:\n  hello: \"Bonjour {name}\"\n")},
		"catalogs/b.json": {Data: []byte(`{"fr-FR": {"hello": "Salut {name}"}}`)},
		"catalogs/c.toml": {Data: []byte("[fr-CH]\nhello = \"Grüezi {name}\"\n")},
		"catalogs/d.yml":  {Data: []byte("fr-BE:\n  bye: \"Au revoir\"\n")},
	}

	store, err := NewStaticStoreFromLoader(NewFSLoader(fsys, "catalogs/*"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	tests := []struct {
		locale string
		key    string
		want   string
	}{
		{"fr-BE", "hello", "Bonjour {name}"},
		{"fr-BE", "bye", "Au revoir"},
		{"fr-FR", "hello", "Salut {name}"},
		{"fr-CH", "hello", "Grüezi {name}"},
	}
	for _, tc := range tests {
		got, ok := store.Get(tc.locale, tc.key)
		if !ok || got != tc.want {
			t.Fatalf("%s/%s = %q, %v", tc.locale, tc.key, got, ok)
		}
	}

	msg, _ := store.Message("fr-FR", "hello")
	if len(msg.FormatArgs) != 1 || msg.FormatArgs[0] != "name" {
		t.Fatalf("format args = %v", msg.FormatArgs)
	}
	if msg.Source != "catalogs/b.json" {
		t.Fatalf("source = %q", msg.Source)
	}
}

func TestFSLoaderErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{name: "unsupported extension", fsys: fstest.MapFS{"m/a.ini": {Data: []byte("x=1")}}},
		{name: "invalid yaml", fsys: fstest.MapFS{"m/a.yaml": {Data: []byte("fr-BE: [")}}},
		{name: "empty catalog", fsys: fstest.MapFS{"m/a.json": {Data: []byte(`{}`)}}},
	}
	for _, tc := range tests {
		if _, err := NewFSLoader(tc.fsys, "m/*").Load(); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}

	var empty *FSLoader
	if _, err := empty.Load(); err == nil {
		t.Fatal("expected error for unconfigured loader")
	}
}

func TestCatalogTranslatorFallsBackToDefault(t *testing.T) {
	store := NewStaticStore(Catalogs{
		"fr-BE": {
			"required": {Template: "Le champ « {label} » est obligatoire."},
			"only_be":  {Template: "Belgique"},
		},
		"fr-CH": {
			"only_be": {Template: "Suisse"},
		},
	})
	translator := NewCatalogTranslator(store, nil)

	got, err := translator.Translate("fr-CH", "required", "label", "IDE")
	if err != nil || got != "Le champ « IDE » est obligatoire." {
		t.Fatalf("fallback translate = %q, %v", got, err)
	}

	got, err = translator.Translate("fr-CH", "only_be")
	if err != nil || got != "Suisse" {
		t.Fatalf("direct translate = %q, %v", got, err)
	}

	if _, err := translator.Translate("fr-CH", "absent"); !errors.Is(err, ErrMissingTranslation) {
		t.Fatalf("expected ErrMissingTranslation, got %v", err)
	}
}

func TestFormatMessageKeepsUnknownPlaceholders(t *testing.T) {
	got := formatMessage("{known} et {unknown}", []any{"known", 42, 7, "ignored"})
	if got != "42 et {unknown}" {
		t.Fatalf("formatMessage = %q", got)
	}
}

func TestEmbeddedMessagesLoad(t *testing.T) {
	store, err := NewStaticStoreFromLoader(NewFSLoader(messageFiles, "messages/*.yaml"))
	if err != nil {
		t.Fatalf("load embedded messages: %v", err)
	}
	for _, code := range supportedCodes {
		got, err := NewCatalogTranslator(store, DefaultFallback{}).Translate(string(code), msgComplianceRequired, "label", "X")
		if err != nil {
			t.Fatalf("%s: %v", code, err)
		}
		if !strings.Contains(got, "« X »") {
			t.Fatalf("%s: message = %q", code, got)
		}
	}
	if got := localize("fr-BE", "does_not_exist", "repli"); got != "repli" {
		t.Fatalf("missing key should use fallback text, got %q", got)
	}
}
