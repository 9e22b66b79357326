package doctemplate

import (
	"bytes"
	"html/template"
	"sort"
	"strings"

	"github.com/martingeoffreyprive-hub/DEAL-sub001/locale"
)

const documentShellTemplate = `<!doctype html>
<html lang="{{.Lang}}">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    @page {
      size: {{.Styles.PageSize}} {{.Styles.Orientation}};
      margin: {{.Styles.MarginTop}} {{.Styles.MarginRight}} {{.Styles.MarginBottom}} {{.Styles.MarginLeft}};
    }
    :root {
      --primary-color: {{.Styles.PrimaryColor}};
      --secondary-color: {{.Styles.SecondaryColor}};
      --font-family: "{{.Styles.FontFamily}}";
      --font-size: {{.Styles.FontSize}};
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      font-family: var(--font-family), Arial, sans-serif;
      font-size: var(--font-size);
      color: #111827;
    }
    .document { position: relative; }
    .block { margin-bottom: 12px; }
    .header { display: flex; align-items: center; gap: 16px; border-bottom: 2px solid var(--primary-color); padding-bottom: 8px; }
    .header-logo-center { flex-direction: column; }
    .header-logo-right { flex-direction: row-reverse; justify-content: space-between; }
    .header .logo { max-height: 64px; }
    .title { margin: 0; color: var(--primary-color); }
    .subtitle, .party-title, .document-title, .notes-title { color: var(--secondary-color); }
    .party-name { font-weight: bold; }
    .label { color: var(--secondary-color); }
    table { width: 100%; border-collapse: collapse; }
    .items th { background: var(--primary-color); color: #ffffff; padding: 6px; }
    .items td { padding: 6px; border-bottom: 1px solid #e5e7eb; }
    .items tr.row-odd td { background: #f8fafc; }
    .document-meta th { text-align: left; color: var(--secondary-color); font-weight: normal; }
    .totals { width: auto; margin-left: auto; }
    .totals th { text-align: left; font-weight: normal; padding: 4px 12px 4px 0; }
    .totals td { text-align: right; padding: 4px 0; }
    .totals .totals-total th, .totals .totals-total td { font-weight: bold; font-size: 1.25em; border-top: 2px solid var(--primary-color); color: var(--primary-color); }
    .notes-body, .text-content, .legal-text, .legal-mentions { white-space: pre-wrap; }
    .footer { border-top: 1px solid #e5e7eb; padding-top: 8px; font-size: 0.8em; color: var(--secondary-color); }
    .signature-area { height: 64px; }
    .signature-line .signature-area { border-bottom: 1px solid #111827; }
    .signature-box .signature-area { border: 1px solid #111827; }
    .watermark { position: fixed; top: 50%; left: 50%; font-size: 6em; color: var(--secondary-color); pointer-events: none; z-index: 0; }
  </style>
</head>
<body>
  <div class="document">{{.Body}}</div>
</body>
</html>
`

var documentShell = template.Must(template.New("document").Parse(documentShellTemplate))

type documentView struct {
	Lang   string
	Title  string
	Styles shellStyles
	Body   template.HTML
}

// Renderer turns templates into HTML documents.
// A Renderer is immutable and safe for concurrent use.
type Renderer struct {
	formatter Formatter
	pack      *locale.Pack
	qrSize    int
}

// NewRenderer returns a Renderer configured by opts.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{qrSize: defaultQRSize}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// GenerateHTMLPreview interpolates tpl with data and renders it as a complete HTML document.
func GenerateHTMLPreview(tpl DocumentTemplate, data map[string]any, opts ...Option) string {
	return NewRenderer(opts...).Render(tpl, data)
}

// RenderBlock renders one block without interpolation or document shell.
func RenderBlock(block TemplateBlock, data map[string]any, styles GlobalStyles, opts ...Option) string {
	r := NewRenderer(opts...)
	return r.RenderBlock(block, data, styles)
}

// renderContext is what a single render resolves once from the renderer and the data.
type renderContext struct {
	pack      locale.Pack
	formatter Formatter
	styles    GlobalStyles
	qrSize    int
}

func (r *Renderer) context(data map[string]any, styles GlobalStyles) renderContext {
	var pack locale.Pack
	if r.pack != nil {
		pack = *r.pack
	} else {
		pack = locale.GetQuoteLocalePack(data["locale"])
	}
	var formatter Formatter = pack
	if r.formatter != nil {
		formatter = r.formatter
	}
	return renderContext{pack: pack, formatter: formatter, styles: styles, qrSize: r.qrSize}
}

// Render interpolates tpl with data, keeps the visible blocks in ascending
// order and renders them inside the document shell.
func (r *Renderer) Render(tpl DocumentTemplate, data map[string]any) string {
	interpolated := InterpolateTemplate(tpl, data)
	ctx := r.context(data, interpolated.GlobalStyles)

	var body strings.Builder
	for _, block := range visibleBlocks(interpolated.Blocks) {
		body.WriteString(renderBlock(ctx, block, data))
	}

	view := documentView{
		Lang:   string(ctx.pack.Code),
		Title:  interpolated.Name,
		Styles: resolveShellStyles(interpolated.Page, interpolated.GlobalStyles),
		Body:   template.HTML(body.String()),
	}
	var buf bytes.Buffer
	if err := documentShell.Execute(&buf, view); err != nil {
		return body.String()
	}
	return buf.String()
}

// RenderBlock renders block with its wrapper. Unknown types, configurations
// that do not match the type and blocks with nothing to show render as "".
func (r *Renderer) RenderBlock(block TemplateBlock, data map[string]any, styles GlobalStyles) string {
	return renderBlock(r.context(data, styles), block, data)
}

// visibleBlocks filters out hidden blocks and stable-sorts the rest by order.
func visibleBlocks(blocks []TemplateBlock) []TemplateBlock {
	out := make([]TemplateBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.Visible {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

type wrapperView struct {
	Type  BlockType
	ID    string
	Style template.CSS
	Inner template.HTML
}

func renderBlock(ctx renderContext, block TemplateBlock, data map[string]any) (out string) {
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()

	if block.Config == nil || block.Config.BlockType() != block.Type {
		return ""
	}
	name, view, ok := blockView(ctx, block.Config, data)
	if !ok {
		return ""
	}

	var inner bytes.Buffer
	if err := blockTemplates.ExecuteTemplate(&inner, name, view); err != nil {
		return ""
	}
	var buf bytes.Buffer
	err := blockTemplates.ExecuteTemplate(&buf, "block", wrapperView{
		Type:  block.Type,
		ID:    block.ID,
		Style: blockCSS(block.Style),
		Inner: template.HTML(inner.String()),
	})
	if err != nil {
		return ""
	}
	return buf.String()
}
