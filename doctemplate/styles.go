package doctemplate

import (
	"html/template"
	"regexp"
	"strconv"
	"strings"
)

const (
	defaultPrimaryColor   = "#1e3a5f"
	defaultSecondaryColor = "#64748b"
	defaultFontFamily     = "Helvetica Neue"
	defaultFontSize       = 10.0
	defaultPageSize       = "A4"
	defaultOrientation    = "portrait"
	defaultMargin         = 15.0
)

var (
	hexColorPattern  = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	fontFamilyFilter = regexp.MustCompile(`^[A-Za-z0-9 \-]+$`)
	lengthPattern    = regexp.MustCompile(`^-?\d+(\.\d+)?(px|mm|cm|pt|%|em|rem)?( -?\d+(\.\d+)?(px|mm|cm|pt|%|em|rem)?){0,3}$`)
	fontWeights      = map[string]bool{"normal": true, "bold": true, "lighter": true, "bolder": true, "100": true, "200": true, "300": true, "400": true, "500": true, "600": true, "700": true, "800": true, "900": true}
	textAligns       = map[string]bool{"left": true, "center": true, "right": true, "justify": true}
	lineStyles       = map[string]bool{"solid": true, "dashed": true, "dotted": true, "double": true}
	pageSizes        = map[string]bool{"A4": true, "A5": true, "Letter": true, "Legal": true}
)

func sanitizeColor(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if hexColorPattern.MatchString(trimmed) {
		return trimmed
	}
	return fallback
}

func sanitizeFont(value string) string {
	trimmed := strings.TrimSpace(value)
	if fontFamilyFilter.MatchString(trimmed) {
		return trimmed
	}
	return defaultFontFamily
}

func sanitizeLength(value string) string {
	trimmed := strings.TrimSpace(value)
	if lengthPattern.MatchString(trimmed) {
		return trimmed
	}
	return ""
}

func sanitizeAlign(value string) string {
	if textAligns[value] {
		return value
	}
	return ""
}

// safeURL only lets through http(s) links and inline raster images.
func safeURL(raw string) (template.URL, bool) {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lower, "https://"), strings.HasPrefix(lower, "http://"):
		if strings.ContainsAny(trimmed, "\"'<> ") {
			return "", false
		}
		return template.URL(trimmed), true
	case strings.HasPrefix(lower, "data:image/png;base64,"),
		strings.HasPrefix(lower, "data:image/jpeg;base64,"),
		strings.HasPrefix(lower, "data:image/gif;base64,"),
		strings.HasPrefix(lower, "data:image/webp;base64,"):
		if strings.ContainsAny(trimmed, "\"'<> ") {
			return "", false
		}
		return template.URL(trimmed), true
	}
	return "", false
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// blockCSS turns a BlockStyle into an inline declaration list. Values that do
// not pass their sanitizer are dropped.
func blockCSS(style BlockStyle) template.CSS {
	var decls []string
	add := func(prop, value string) {
		if value != "" {
			decls = append(decls, prop+": "+value)
		}
	}

	add("margin", sanitizeLength(style.Margin))
	add("padding", sanitizeLength(style.Padding))
	add("background-color", sanitizeColor(style.BackgroundColor, ""))
	add("color", sanitizeColor(style.TextColor, ""))
	if style.FontSize > 0 && style.FontSize <= 96 {
		add("font-size", strconv.FormatFloat(style.FontSize, 'f', -1, 64)+"pt")
	}
	if fontWeights[style.FontWeight] {
		add("font-weight", style.FontWeight)
	}
	add("text-align", sanitizeAlign(style.TextAlign))
	if style.BorderWidth > 0 && style.BorderWidth <= 20 {
		add("border", px(style.BorderWidth)+" solid "+sanitizeColor(style.BorderColor, "#e5e7eb"))
	}
	if style.BorderRadius > 0 && style.BorderRadius <= 100 {
		add("border-radius", px(style.BorderRadius))
	}
	add("width", sanitizeLength(style.Width))
	add("height", sanitizeLength(style.Height))

	return template.CSS(strings.Join(decls, "; "))
}

// shellStyles are the resolved page and global style values of a document.
type shellStyles struct {
	PageSize       string
	Orientation    string
	MarginTop      string
	MarginRight    string
	MarginBottom   string
	MarginLeft     string
	PrimaryColor   string
	SecondaryColor string
	FontFamily     string
	FontSize       string
}

func resolveShellStyles(page PageSettings, styles GlobalStyles) shellStyles {
	size := page.Size
	if !pageSizes[size] {
		size = defaultPageSize
	}
	orientation := page.Orientation
	if orientation != "landscape" {
		orientation = defaultOrientation
	}
	fontSize := styles.FontSize
	if fontSize <= 0 || fontSize > 72 {
		fontSize = defaultFontSize
	}
	return shellStyles{
		PageSize:       size,
		Orientation:    orientation,
		MarginTop:      marginMM(page.Margins.Top),
		MarginRight:    marginMM(page.Margins.Right),
		MarginBottom:   marginMM(page.Margins.Bottom),
		MarginLeft:     marginMM(page.Margins.Left),
		PrimaryColor:   sanitizeColor(styles.PrimaryColor, defaultPrimaryColor),
		SecondaryColor: sanitizeColor(styles.SecondaryColor, defaultSecondaryColor),
		FontFamily:     sanitizeFont(styles.FontFamily),
		FontSize:       strconv.FormatFloat(fontSize, 'f', -1, 64) + "pt",
	}
}

func marginMM(v float64) string {
	if v <= 0 || v > 100 {
		v = defaultMargin
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "mm"
}
