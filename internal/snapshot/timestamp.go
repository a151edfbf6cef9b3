// internal/snapshot/timestamp.go
package snapshot

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// ISO-8601 layouts tried in order after epoch interpretation fails.
// The publisher emits naive UTC or an explicit offset; a trailing Z is
// stripped before parsing so both zone styles land on the naive layouts.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ResolveTimestamp normalizes a raw timestamp value into seconds since
// epoch. Ordered attempts, first success wins:
//
//  1. numeric epoch (any finite number, or a string holding one)
//  2. ISO-8601 string, trailing "Z" stripped, fractional seconds and an
//     explicit offset accepted; no offset means UTC
//
// Unresolved is an expected outcome, never an error. Never panics.
func ResolveTimestamp(raw any) (float64, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false

	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true

	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return finite(f)

	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return finite(f)
		}
		return resolveISO(s)

	default:
		return 0, false
	}
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func resolveISO(s string) (float64, bool) {
	s = strings.TrimSuffix(s, "Z")

	for _, layout := range isoLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err != nil {
			continue
		}
		// Whole seconds and the fraction are combined separately:
		// UnixNano as one float64 loses sub-second precision at
		// present-day epoch magnitudes.
		return float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second), true
	}
	return 0, false
}
