// Package sanitize prepares payload maps for JSON encoding.
package sanitize

import "math"

// Value returns v with every NaN or infinite float replaced by nil, at any depth of
// nested maps and slices. encoding/json refuses to encode those values, so payloads
// go through here right before json.Marshal.
//
// Maps and slices are rebuilt, the input is left untouched.
func Value(v any) any {
	switch t := v.(type) {
	case float64:
		if !finite(t) {
			return nil
		}
		return t
	case float32:
		if !finite(float64(t)) {
			return nil
		}
		return t
	case *float64:
		if t == nil || !finite(*t) {
			return nil
		}
		return *t
	case map[string]any:
		return Map(t)
	case []map[string]any:
		out := make([]any, len(t))
		for i, m := range t {
			out[i] = Map(m)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Value(e)
		}
		return out
	case []float64:
		out := make([]any, len(t))
		for i, f := range t {
			out[i] = Value(f)
		}
		return out
	default:
		return v
	}
}

// Map sanitizes every value of m.
func Map(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Value(v)
	}
	return out
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
