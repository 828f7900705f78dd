// Package form coerces raw calculator form values into typed fields. Every
// accessor is total: missing or unparsable values fall back instead of
// failing.
package form

import (
	"math"
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

// Values holds raw field values keyed by field name, as decoded from a JSON
// body or a urlencoded form.
type Values map[string]any

// FromURL converts urlencoded values. Repeated keys become lists.
func FromURL(in url.Values) Values {
	out := make(Values, len(in))
	for key, list := range in {
		switch len(list) {
		case 0:
		case 1:
			out[key] = list[0]
		default:
			items := make([]any, len(list))
			for i, item := range list {
				items[i] = item
			}
			out[key] = items
		}
	}
	return out
}

// Has reports whether key is present with a non-blank value.
func (v Values) Has(key string) bool {
	raw, ok := v[key]
	if !ok || raw == nil {
		return false
	}
	if s, isString := raw.(string); isString {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// Float returns the numeric value of key, or zero.
func (v Values) Float(key string) float64 {
	return toFloat(v[key])
}

// Int returns the integer part of the numeric value of key, or zero.
// Values beyond the int32 range saturate at its bounds.
func (v Values) Int(key string) int {
	f := math.Trunc(v.Float(key))
	return int(math.Max(math.MinInt32, math.Min(f, math.MaxInt32)))
}

func (v Values) String(key string) string {
	s, err := cast.ToStringE(v[key])
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// Bool returns the boolean value of key, or fallback when the key is absent
// or not a recognisable boolean. Checkbox style "on"/"off" is accepted.
func (v Values) Bool(key string, fallback bool) bool {
	if !v.Has(key) {
		return fallback
	}
	switch strings.ToLower(v.String(key)) {
	case "on", "yes", "y":
		return true
	case "off", "no", "n":
		return false
	}
	b, err := cast.ToBoolE(v[key])
	if err != nil {
		return fallback
	}
	return b
}

// Floats returns the numeric items of a list field. ok is false when key is
// absent or is not a list.
func (v Values) Floats(key string) ([]float64, bool) {
	switch items := v[key].(type) {
	case []any:
		out := make([]float64, len(items))
		for i, item := range items {
			out[i] = toFloat(item)
		}
		return out, true
	case []string:
		out := make([]float64, len(items))
		for i, item := range items {
			out[i] = toFloat(item)
		}
		return out, true
	case []float64:
		return append([]float64(nil), items...), true
	}
	return nil, false
}

func toFloat(raw any) float64 {
	if s, ok := raw.(string); ok {
		raw = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
