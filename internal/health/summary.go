// internal/health/summary.go
package health

import (
	"time"

	"github.com/ipids/ion-monitor/internal/fault"
	"github.com/ipids/ion-monitor/internal/track"
)

// Summary is everything the render collaborator consumes.
// Derived fresh on every cycle from tracked state; never stored.
type Summary struct {
	Tier Tier

	// ElapsedSeconds since the accepted snapshot's instant.
	// Zero while nothing was accepted.
	ElapsedSeconds float64

	// LastUpdate is the accepted snapshot's instant as wall-clock UTC.
	// Zero value while nothing was accepted.
	LastUpdate time.Time

	// Tags of the snapshot being displayed: the accepted one, or the
	// last unresolved one before first acceptance. May be nil.
	Tags map[string]any

	// Faults active on the displayed snapshot, ascending by index.
	// May be empty while Tier is Fault: the global flag was set with no
	// indexed bits, and the renderer shows a generic fallback.
	Faults []fault.Entry
}

// Summarize derives the displayed health from tracked state at now.
//
// Precedence: a fault condition beats every staleness tier. With nothing
// accepted yet, a delivered-but-unresolvable timestamp reports Invalid,
// otherwise Connecting. After the first acceptance the last good snapshot
// stays visible through any number of failed polls, with elapsed time
// growing until the staleness tiers take over.
func Summarize(now time.Time, tr *track.Tracker, table map[int]string, scanLimit int, cfg Thresholds) Summary {
	snap, instant, ok := tr.Current()

	if !ok {
		sum := Summary{Tier: Connecting}
		if last := tr.LastUnresolved(); last != nil {
			sum.Tags = last.Tags
			if last.RawTimestamp != nil {
				sum.Tier = Invalid
			}
		}
		return sum
	}

	sum := Summary{
		Tier:           ClassifyAt(now, instant, true, cfg),
		ElapsedSeconds: float64(now.UnixNano())/float64(time.Second) - instant,
		LastUpdate:     time.Unix(0, int64(instant*float64(time.Second))).UTC(),
		Tags:           snap.Tags,
	}

	if fault.Active(snap.Tags, scanLimit) {
		sum.Tier = Fault
		sum.Faults = fault.Decode(snap.Tags, table, scanLimit)
	}

	return sum
}
