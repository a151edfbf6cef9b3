// internal/track/tracker.go
package track

import (
	"math"
	"sync"

	"github.com/ipids/ion-monitor/internal/snapshot"
)

// Tracker retains the best snapshot seen so far across polls.
// One instance per dashboard session, injected into the poll loop.
//
// The transport is unordered and duplicate-prone: re-fetching an
// eventually-consistent file can return a payload older than one already
// seen. The monotonic filter below prevents displayed time-travel while
// still accepting newer data as soon as it exists.
type Tracker struct {
	mu sync.Mutex

	best        *snapshot.Snapshot
	bestInstant float64

	// lastUnresolved holds the most recent snapshot whose timestamp could
	// not be resolved. Kept for tag display only, never promoted to best.
	lastUnresolved *snapshot.Snapshot
}

// New creates an empty tracker. The initial instant is the lowest
// possible value so the first resolvable snapshot is always accepted.
func New() *Tracker {
	return &Tracker{bestInstant: math.Inf(-1)}
}

// Consider offers a snapshot and reports whether it was accepted.
//
// A snapshot with no resolved instant is never accepted: retained state
// must always carry a usable time. Otherwise acceptance is
// instant >= best: ties go to the newer fetch, so a republished payload
// with an unchanged clock still refreshes the displayed tags.
// Best snapshot and best instant are replaced as one step; a concurrent
// reader never observes them torn.
func (t *Tracker) Consider(s *snapshot.Snapshot) bool {
	if s == nil {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !s.HasInstant {
		t.lastUnresolved = s
		return false
	}
	if s.Instant < t.bestInstant {
		return false
	}

	t.best = s
	t.bestInstant = s.Instant
	return true
}

// Current returns the accepted snapshot and its instant.
// ok is false before the first acceptance.
func (t *Tracker) Current() (s *snapshot.Snapshot, instant float64, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.best == nil {
		return nil, 0, false
	}
	return t.best, t.bestInstant, true
}

// LastUnresolved returns the most recent snapshot that carried no usable
// timestamp, or nil. Used to report an invalid-timestamp condition and to
// show tags before any snapshot was ever accepted.
func (t *Tracker) LastUnresolved() *snapshot.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastUnresolved
}
