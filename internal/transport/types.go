// internal/transport/types.go
package transport

import "github.com/ipids/ion-monitor/internal/snapshot"

// Fetcher is the exact contract the poll loop uses.
// One call per cycle. A fetcher applies its own bounded timeout and maps
// every transport-level failure to an empty result: network errors never
// cross into the core.
type Fetcher interface {
	// FetchLatest returns the most recent raw payload, or (nil, nil)
	// when nothing is available this cycle.
	FetchLatest() ([]byte, error)
}

// Source is a built transport: the fetcher plus the unwrap step the
// parser must apply to its payloads (nil when payloads are delivered
// bare).
type Source struct {
	Fetcher Fetcher
	Unwrap  snapshot.UnwrapFunc
}
