// internal/snapshot/snapshot.go
package snapshot

import (
	"encoding/json"
	"errors"
)

// Snapshot is one point-in-time reading from the instrument.
// It contains no logic and no memory of the past beyond current state.
// Immutable after Parse.
type Snapshot struct {
	// RawTimestamp is the timestamp value as delivered (number or string).
	// nil when the payload carried none.
	RawTimestamp any

	// Instant is the resolved timestamp in seconds since epoch.
	// Valid only when HasInstant is true.
	Instant    float64
	HasInstant bool

	// Tags maps flat dotted keys to scalar values.
	// The key set is publisher-defined; keys are opaque strings.
	Tags map[string]any
}

// Parse failures. The two cases must stay distinguishable:
// an empty fetch is routine, a malformed payload is operator-visible.
var (
	ErrEmptyPayload     = errors.New("snapshot: empty payload")
	ErrMalformedPayload = errors.New("snapshot: malformed payload")
)

// UnwrapFunc strips a transport-specific envelope before JSON decode.
// nil means the payload is already the snapshot document.
type UnwrapFunc func(raw []byte) ([]byte, error)

// Parse turns one raw transport payload into a Snapshot.
// Pure transformation: no IO, no side effects.
//
// Two payload shapes are accepted, auto-detected by the "data" key:
//
//	flat:      { "<tag>": <scalar>, ..., "timestamp": <epoch-or-iso> }
//	enveloped: { "timestamp": <epoch-or-iso>, "data": { "<tag>": <scalar> } }
func Parse(raw []byte, unwrap UnwrapFunc) (*Snapshot, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyPayload
	}

	if unwrap != nil {
		inner, err := unwrap(raw)
		if err != nil {
			return nil, ErrMalformedPayload
		}
		if len(inner) == 0 {
			return nil, ErrEmptyPayload
		}
		raw = inner
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, ErrMalformedPayload
	}

	s := &Snapshot{}

	if ts, ok := doc["timestamp"]; ok {
		s.RawTimestamp = ts
		s.Instant, s.HasInstant = ResolveTimestamp(ts)
	}

	// Envelope detection: a "data" object carries the tags,
	// otherwise the whole document is the tag map.
	if inner, ok := doc["data"].(map[string]any); ok {
		s.Tags = inner
	} else {
		s.Tags = doc
	}

	return s, nil
}
