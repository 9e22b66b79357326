package doctemplate

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func sampleTemplate() DocumentTemplate {
	return DocumentTemplate{
		ID:   "tpl-1",
		Name: "Devis {{client_name}}",
		Type: TypeQuote,
		Blocks: []TemplateBlock{
			{ID: "header", Type: BlockHeader, Order: 0, Visible: true, Config: HeaderConfig{Title: "Devis {{document_number}}", Subtitle: "Pour {{client_name}} {{missing_key}}"}},
			{ID: "items", Type: BlockItemsTable, Order: 1, Visible: true, Config: ItemsTableConfig{
				Columns: []TableColumn{{Field: "description", Header: "{{column_label}}"}},
			}},
			{ID: "footer", Type: BlockFooter, Order: 2, Visible: true, Config: FooterConfig{LegalText: "TVA {{tax_rate}} % - {{company_name}}", ShowPageNumbers: true}},
			{ID: "future", Type: BlockType("chart"), Order: 3, Visible: true, Config: UnknownConfig{Type: "chart", Raw: json.RawMessage(`{"caption":"{{client_name}}","points":[1,2.50,3]}`)}},
		},
	}
}

func TestInterpolateTemplateReplacesKnownKeys(t *testing.T) {
	tpl := sampleTemplate()
	data := map[string]any{
		"document_number": "DEV-2024-0042",
		"client_name":     "Marie",
		"column_label":    "Désignation",
		"tax_rate":        21.0,
		"company_name":    nil,
	}

	out := InterpolateTemplate(tpl, data)

	header := out.Blocks[0].Config.(HeaderConfig)
	if header.Title != "Devis DEV-2024-0042" {
		t.Fatalf("title = %q", header.Title)
	}
	if header.Subtitle != "Pour Marie {{missing_key}}" {
		t.Fatalf("subtitle = %q", header.Subtitle)
	}
	items := out.Blocks[1].Config.(ItemsTableConfig)
	if items.Columns[0].Header != "Désignation" {
		t.Fatalf("column header = %q", items.Columns[0].Header)
	}
	footer := out.Blocks[2].Config.(FooterConfig)
	if footer.LegalText != "TVA 21 % - " {
		t.Fatalf("legal text = %q", footer.LegalText)
	}
	if !footer.ShowPageNumbers {
		t.Fatal("non-string fields must survive interpolation")
	}

	unknown, ok := out.Blocks[3].Config.(UnknownConfig)
	if !ok {
		t.Fatalf("unknown config type = %T", out.Blocks[3].Config)
	}
	var raw map[string]any
	if err := json.Unmarshal(unknown.Raw, &raw); err != nil {
		t.Fatalf("unknown config: %v", err)
	}
	if raw["caption"] != "Marie" {
		t.Fatalf("unknown block strings should be interpolated, got %v", raw["caption"])
	}

	if out.Name != "Devis {{client_name}}" {
		t.Fatalf("only blocks are interpolated, name = %q", out.Name)
	}
}

func TestInterpolateTemplateDoesNotMutateInput(t *testing.T) {
	tpl := sampleTemplate()
	before := tpl.Clone()

	out := InterpolateTemplate(tpl, map[string]any{"document_number": "X", "column_label": "Y", "client_name": "Z"})
	out.Blocks[1].Config.(ItemsTableConfig).Columns[0].Header = "changed"

	if !reflect.DeepEqual(tpl, before) {
		t.Fatalf("input template was modified:\n got %+v\nwant %+v", tpl, before)
	}
}

func TestInterpolateTemplateWithoutDataCopies(t *testing.T) {
	tpl := sampleTemplate()
	out := InterpolateTemplate(tpl, nil)
	if !reflect.DeepEqual(out, tpl) {
		t.Fatal("empty data should yield an identical copy")
	}
	out.Blocks[0].ID = "other"
	if tpl.Blocks[0].ID != "header" {
		t.Fatal("copy shares the blocks slice")
	}
}

func TestInterpolateTemplateSkipsUnencodableBlock(t *testing.T) {
	tpl := DocumentTemplate{
		Type: TypeQuote,
		Blocks: []TemplateBlock{
			{ID: "greeting", Type: BlockText, Order: 0, Visible: true, Config: TextConfig{Content: "Bonjour {{client_name}}"}},
			{ID: "gap", Type: BlockSpacer, Order: 1, Visible: true, Style: BlockStyle{FontSize: math.NaN()}, Config: SpacerConfig{Height: 20}},
		},
	}
	data := map[string]any{"client_name": "Marie"}

	out := InterpolateTemplate(tpl, data)
	if got := out.Blocks[0].Config.(TextConfig).Content; got != "Bonjour Marie" {
		t.Fatalf("text block content = %q", got)
	}
	if !math.IsNaN(out.Blocks[1].Style.FontSize) {
		t.Fatalf("spacer block should be copied as is, got %+v", out.Blocks[1].Style)
	}

	if html := GenerateHTMLPreview(tpl, data); !strings.Contains(html, "Marie") {
		t.Fatalf("preview missing substituted name:\n%s", html)
	}
	if vars := ExtractVariables(tpl); len(vars) != 1 || vars[0] != "client_name" {
		t.Fatalf("variables = %v", vars)
	}
}

func TestInterpolateTemplateNilValueBecomesEmpty(t *testing.T) {
	tpl := DocumentTemplate{
		Blocks: []TemplateBlock{
			{ID: "note", Type: BlockText, Visible: true, Config: TextConfig{Content: "Réf. [{{reference}}]"}},
		},
	}
	out := InterpolateTemplate(tpl, map[string]any{"reference": nil})
	if got := out.Blocks[0].Config.(TextConfig).Content; got != "Réf. []" {
		t.Fatalf("nil value should interpolate to empty text, got %q", got)
	}
}

func TestInterpolateStringLeavesUnknownPlaceholders(t *testing.T) {
	data := map[string]any{"a": "1", "b": 2, "n": nil}
	tests := []struct {
		in   string
		want string
	}{
		{in: "{{a}}-{{b}}-{{c}}", want: "1-2-{{c}}"},
		{in: "{{ a }}", want: "{{ a }}"},
		{in: "{{a}}{{a}}", want: "11"},
		{in: "no placeholders", want: "no placeholders"},
		{in: "{{}}", want: "{{}}"},
		{in: "[{{n}}]", want: "[]"},
	}
	for _, tc := range tests {
		if got := InterpolateString(tc.in, data); got != tc.want {
			t.Fatalf("InterpolateString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{in: nil, want: ""},
		{in: "text", want: "text"},
		{in: 21.0, want: "21"},
		{in: 1234.56, want: "1234.56"},
		{in: 0.1, want: "0.1"},
		{in: 42, want: "42"},
		{in: int64(-7), want: "-7"},
		{in: true, want: "true"},
		{in: json.Number("3.10"), want: "3.10"},
		{in: decimal.RequireFromString("36.92"), want: "36.92"},
		{in: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), want: "2024-01-15"},
		{in: []any{"a", 1.0}, want: `["a",1]`},
	}
	for _, tc := range tests {
		if got := Stringify(tc.in); got != tc.want {
			t.Fatalf("Stringify(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExtractVariables(t *testing.T) {
	got := ExtractVariables(sampleTemplate())
	want := []string{"client_name", "column_label", "company_name", "document_number", "missing_key", "tax_rate"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractVariables = %v, want %v", got, want)
	}
}

func TestVariableCatalog(t *testing.T) {
	v, ok := LookupVariable("structured_reference")
	if !ok || v.Example == "" {
		t.Fatalf("LookupVariable = %+v,%v", v, ok)
	}
	if _, ok := LookupVariable("nope"); ok {
		t.Fatal("unexpected catalog entry")
	}

	vars := Variables()
	vars[0].Key = "changed"
	if Variables()[0].Key == "changed" {
		t.Fatal("Variables should return a copy")
	}
}
