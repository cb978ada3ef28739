package store

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Field is one member of a decoded JSON object, in document order.
type Field struct {
	Key   string
	Value json.RawMessage
}

// DecodeObject decodes raw as a JSON object and keeps member order. ok is
// false when raw is not a single well-formed object; values in the store are
// schema-loose, so that is an expected outcome rather than an error.
// A repeated key keeps its first position and takes its last value.
func DecodeObject(raw string) (fields []Field, ok bool) {
	if !gjson.Valid(raw) {
		return nil, false
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return nil, false
	}
	fields = []Field{}
	seen := make(map[string]int)
	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if i, dup := seen[name]; dup {
			fields[i].Value = json.RawMessage(value.Raw)
			return true
		}
		seen[name] = len(fields)
		fields = append(fields, Field{Key: name, Value: json.RawMessage(value.Raw)})
		return true
	})
	return fields, true
}

// Lookup returns the value stored under key.
func Lookup(fields []Field, key string) (json.RawMessage, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Text renders a JSON value for display: strings lose their quotes,
// anything else is shown as compact JSON.
func Text(value json.RawMessage) string {
	if r := gjson.ParseBytes(value); r.Type == gjson.String {
		return r.Str
	}
	return strings.TrimSpace(string(value))
}

// DecodeList decodes value as a JSON array. null decodes as an empty list.
func DecodeList(value json.RawMessage) ([]json.RawMessage, bool) {
	if !gjson.ValidBytes(value) {
		return nil, false
	}
	r := gjson.ParseBytes(value)
	if r.Type == gjson.Null {
		return nil, true
	}
	if !r.IsArray() {
		return nil, false
	}
	elems := r.Array()
	items := make([]json.RawMessage, 0, len(elems))
	for _, e := range elems {
		items = append(items, json.RawMessage(e.Raw))
	}
	return items, true
}

// Number decodes value as a JSON number, accepting numeric strings too.
// null counts as zero.
func Number(value json.RawMessage) (float64, bool) {
	if !gjson.ValidBytes(value) {
		return 0, false
	}
	r := gjson.ParseBytes(value)
	switch r.Type {
	case gjson.Number:
		return r.Num, true
	case gjson.Null:
		return 0, true
	case gjson.String:
		n, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
