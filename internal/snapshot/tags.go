// internal/snapshot/tags.go
package snapshot

import "encoding/json"

// Tag accessors. Keys are exact flat strings: the dots carry no structure,
// so there is no path traversal here. A missing key or a nil map yields
// the default, never an error.

// Get returns the raw tag value, or def when absent.
func Get(tags map[string]any, key string, def any) any {
	if tags == nil {
		return def
	}
	v, ok := tags[key]
	if !ok {
		return def
	}
	return v
}

// Float returns a tag as float64, coercing any JSON numeric type.
// Non-numeric values yield the default.
func Float(tags map[string]any, key string, def float64) float64 {
	switch v := Get(tags, key, nil).(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}

// Bool returns a tag as a truth value. Fault bits arrive either as JSON
// booleans or as 0/1 numbers, so non-zero numbers count as true.
func Bool(tags map[string]any, key string, def bool) bool {
	switch v := Get(tags, key, nil).(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case float32:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return def
		}
		return f != 0
	default:
		return def
	}
}

// String returns a tag as a string. Non-string values yield the default.
func String(tags map[string]any, key string, def string) string {
	if v, ok := Get(tags, key, nil).(string); ok {
		return v
	}
	return def
}
