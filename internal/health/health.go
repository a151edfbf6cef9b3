// internal/health/health.go
package health

import "time"

// Tier is the coarse health classification of the displayed state.
// Ordering is by severity of what the operator sees, not by comparison:
// tiers are matched exactly, never range-checked.
type Tier int

const (
	// Connecting: no snapshot was ever accepted.
	Connecting Tier = iota
	// Online: the tracked snapshot is inside the slow threshold.
	Online
	// Slow: elapsed time passed the slow threshold.
	Slow
	// Offline: elapsed time passed the offline threshold.
	Offline
	// Fault: a fault condition is active. Overrides every staleness tier.
	Fault
	// Invalid: a timestamp was delivered but could not be resolved,
	// and nothing was ever accepted in its place.
	Invalid
)

func (t Tier) String() string {
	switch t {
	case Connecting:
		return "CONNECTING"
	case Online:
		return "ONLINE"
	case Slow:
		return "SLOW"
	case Offline:
		return "OFFLINE"
	case Fault:
		return "FAULT"
	case Invalid:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// Thresholds are the staleness boundaries. Publish cadence differs per
// deployment, so both are independently configurable.
type Thresholds struct {
	Slow    time.Duration
	Offline time.Duration
}

// Default staleness boundaries, matched to an assumed ~60 s publish
// interval.
const (
	DefaultSlow    = 80 * time.Second
	DefaultOffline = 300 * time.Second
)

// DefaultThresholds returns the stock boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{Slow: DefaultSlow, Offline: DefaultOffline}
}

// Classify maps elapsed time since the tracked instant onto a staleness
// tier. Fault override happens in Summarize, not here.
func Classify(elapsed time.Duration, cfg Thresholds) Tier {
	if cfg.Slow <= 0 {
		cfg.Slow = DefaultSlow
	}
	if cfg.Offline <= 0 {
		cfg.Offline = DefaultOffline
	}

	switch {
	case elapsed > cfg.Offline:
		return Offline
	case elapsed > cfg.Slow:
		return Slow
	default:
		return Online
	}
}

// ClassifyAt is Classify against a wall-clock now and a tracked instant.
// ok=false means nothing was ever accepted.
func ClassifyAt(now time.Time, instant float64, ok bool, cfg Thresholds) Tier {
	if !ok {
		return Connecting
	}
	elapsed := time.Duration((float64(now.UnixNano())/float64(time.Second) - instant) * float64(time.Second))
	return Classify(elapsed, cfg)
}
