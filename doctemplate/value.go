package doctemplate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
	KindMap
)

// Value is a JSON document as a tagged tree. Numbers keep their literal
// text so a decode/encode cycle never changes them.
type Value struct {
	kind Kind
	str  string
	num  json.Number
	b    bool
	list []Value
	m    map[string]Value
}

// StringValue wraps s
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// Kind reports which field of v is set
func (v Value) Kind() Kind { return v.kind }

// Str returns the string held by v, or "" for other kinds.
func (v Value) Str() string { return v.str }

// ParseValue decodes a JSON document into a Value.
func ParseValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, err
	}
	return valueOf(raw)
}

func valueOf(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Value{kind: KindNull}, nil
	case string:
		return Value{kind: KindString, str: x}, nil
	case json.Number:
		return Value{kind: KindNumber, num: x}, nil
	case bool:
		return Value{kind: KindBool, b: x}, nil
	case []any:
		list := make([]Value, len(x))
		for i, item := range x {
			v, err := valueOf(item)
			if err != nil {
				return Value{}, err
			}
			list[i] = v
		}
		return Value{kind: KindList, list: list}, nil
	case map[string]any:
		m := make(map[string]Value, len(x))
		for k, item := range x {
			v, err := valueOf(item)
			if err != nil {
				return Value{}, err
			}
			m[k] = v
		}
		return Value{kind: KindMap, m: m}, nil
	default:
		return Value{}, fmt.Errorf("unsupported JSON value %T", raw)
	}
}

// MarshalJSON encodes v back to JSON. Map keys are written in sorted order.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return []byte(v.num.String()), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	case KindMap:
		if v.m == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.m)
	default:
		return []byte("null"), nil
	}
}

// MapStrings returns a copy of v where every string leaf went through fn.
// Map keys, numbers, booleans and nulls are left as they are.
func (v Value) MapStrings(fn func(string) string) Value {
	switch v.kind {
	case KindString:
		return Value{kind: KindString, str: fn(v.str)}
	case KindList:
		list := make([]Value, len(v.list))
		for i, item := range v.list {
			list[i] = item.MapStrings(fn)
		}
		return Value{kind: KindList, list: list}
	case KindMap:
		m := make(map[string]Value, len(v.m))
		for k, item := range v.m {
			m[k] = item.MapStrings(fn)
		}
		return Value{kind: KindMap, m: m}
	default:
		return v
	}
}

// Walk calls fn for every string leaf of v, maps in key order.
func (v Value) Walk(fn func(string)) {
	switch v.kind {
	case KindString:
		fn(v.str)
	case KindList:
		for _, item := range v.list {
			item.Walk(fn)
		}
	case KindMap:
		keys := make([]string, 0, len(v.m))
		for k := range v.m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v.m[k].Walk(fn)
		}
	}
}
