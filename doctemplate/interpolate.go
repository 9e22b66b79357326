package doctemplate

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"time"
)

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// InterpolateTemplate returns a deep copy of tpl in which every {{key}} found
// in a string under its blocks is replaced by the text of data[key]. Keys
// missing from data are left as written. A block that cannot be encoded, for
// instance one holding a NaN size, is copied without substitution.
// tpl itself is never modified.
func InterpolateTemplate(tpl DocumentTemplate, data map[string]any) DocumentTemplate {
	out := tpl.Clone()
	if len(tpl.Blocks) == 0 || len(data) == 0 {
		return out
	}
	for i, block := range tpl.Blocks {
		if rewritten, err := interpolateBlock(block, data); err == nil {
			out.Blocks[i] = rewritten
		}
	}
	return out
}

func interpolateBlock(block TemplateBlock, data map[string]any) (TemplateBlock, error) {
	tree, err := blockTree(block)
	if err != nil {
		return TemplateBlock{}, err
	}
	tree = tree.MapStrings(func(s string) string {
		return InterpolateString(s, data)
	})
	rewritten, err := json.Marshal(tree)
	if err != nil {
		return TemplateBlock{}, err
	}
	var out TemplateBlock
	if err := json.Unmarshal(rewritten, &out); err != nil {
		return TemplateBlock{}, err
	}
	return out, nil
}

func blockTree(block TemplateBlock) (Value, error) {
	encoded, err := json.Marshal(block)
	if err != nil {
		return Value{}, err
	}
	return ParseValue(encoded)
}

// InterpolateString replaces the {{key}} placeholders of s present in data.
func InterpolateString(s string, data map[string]any) string {
	if len(data) == 0 {
		return s
	}
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		key := match[2 : len(match)-2]
		value, ok := data[key]
		if !ok {
			return match
		}
		return Stringify(value)
	})
}

// Placeholders returns the distinct placeholder keys of s in order of appearance.
func Placeholders(s string) []string {
	var keys []string
	seen := map[string]bool{}
	for _, m := range placeholderPattern.FindAllStringSubmatch(s, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			keys = append(keys, m[1])
		}
	}
	return keys
}

// ExtractVariables lists, sorted, every placeholder key used by the blocks of tpl.
func ExtractVariables(tpl DocumentTemplate) []string {
	seen := map[string]bool{}
	for _, block := range tpl.Blocks {
		tree, err := blockTree(block)
		if err != nil {
			continue
		}
		tree.Walk(func(s string) {
			for _, key := range Placeholders(s) {
				seen[key] = true
			}
		})
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Stringify is the text a data value takes once substituted into a template.
// nil becomes "", floats use the shortest exact decimal form and lists or
// maps are written as JSON.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatFloat(v, 64)
	case float32:
		return formatFloat(float64(v), 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case json.Number:
		return v.String()
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format("2006-01-02")
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}
	switch value.(type) {
	case []any, map[string]any, []map[string]any, []string:
		if encoded, err := json.Marshal(value); err == nil {
			return string(encoded)
		}
	}
	return fmt.Sprint(value)
}

func formatFloat(f float64, bits int) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 0) {
		if f > 0 {
			return "Infinity"
		}
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}
