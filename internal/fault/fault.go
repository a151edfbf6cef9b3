// internal/fault/fault.go
package fault

import (
	"fmt"

	"github.com/ipids/ion-monitor/internal/snapshot"
)

// Fault tag keys and the default scan bound.
// The bound is a publisher convention (the instrument writes at most 99
// indexed bits), not a domain invariant, so callers may override it.
const (
	SystemFaultKey = "system.general.systemFault"

	arrayKeyFormat = "system.general.faultArray[%d]"

	// DefaultScanLimit is the highest fault index scanned (inclusive).
	DefaultScanLimit = 98
)

// Entry is one decoded fault.
type Entry struct {
	Index       int
	Description string
}

// Decode scans the indexed fault bits and returns the active entries in
// ascending index order. Missing keys are inactive; an index without a
// table entry still yields an entry with a generated placeholder.
// No IO. No side effects.
func Decode(tags map[string]any, table map[int]string, limit int) []Entry {
	if limit < 0 {
		limit = DefaultScanLimit
	}

	var entries []Entry
	for i := 0; i <= limit; i++ {
		key := fmt.Sprintf(arrayKeyFormat, i)
		if !snapshot.Bool(tags, key, false) {
			continue
		}

		desc, ok := table[i]
		if !ok {
			desc = fmt.Sprintf("Fault Code #%d", i)
		}
		entries = append(entries, Entry{Index: i, Description: desc})
	}
	return entries
}

// Active reports whether a fault condition exists: the global flag is set
// or any indexed bit is active. The global flag can be set with no bits
// active; the caller must then render a generic fallback.
func Active(tags map[string]any, limit int) bool {
	if snapshot.Bool(tags, SystemFaultKey, false) {
		return true
	}
	if limit < 0 {
		limit = DefaultScanLimit
	}
	for i := 0; i <= limit; i++ {
		if snapshot.Bool(tags, fmt.Sprintf(arrayKeyFormat, i), false) {
			return true
		}
	}
	return false
}
