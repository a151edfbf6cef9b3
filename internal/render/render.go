// internal/render/render.go
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ipids/ion-monitor/internal/config"
	"github.com/ipids/ion-monitor/internal/health"
	"github.com/ipids/ion-monitor/internal/snapshot"
)

// Console renderer. Pure formatting over a health.Summary; the caller
// owns the output stream and the refresh cadence. Units, precision and
// wording live here and in the card config, never in the core.

// statusKey is the instrument's coarse run-state tag; its numeric codes
// render as words.
const statusKey = "system.ionSource.general.status"

var statusWords = map[int]string{
	0:  "OFF",
	1:  "STARTING",
	2:  "RUNNING",
	99: "FAULT",
}

// Render formats one full dashboard frame.
func Render(sum health.Summary, cards []config.CardConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Ion Source Monitor [%s]\n", sum.Tier)
	b.WriteString(statusLine(sum))
	b.WriteByte('\n')

	if len(sum.Tags) == 0 {
		return b.String()
	}

	b.WriteByte('\n')
	writeCards(&b, sum.Tags, cards)

	if sum.Tier == health.Fault {
		b.WriteByte('\n')
		writeFaults(&b, sum)
	}

	b.WriteByte('\n')
	writeTagTable(&b, sum.Tags)

	return b.String()
}

// statusLine is the one-line condition summary under the title.
func statusLine(sum health.Summary) string {
	switch sum.Tier {
	case health.Connecting:
		return "Waiting for lab PC connection..."
	case health.Invalid:
		return "Snapshot received but its timestamp is unreadable"
	case health.Offline:
		return fmt.Sprintf("Source disconnected, last update %s (%s ago)",
			sum.LastUpdate.Format("2006-01-02 15:04:05 MST"),
			elapsed(sum.ElapsedSeconds))
	default:
		return fmt.Sprintf("Last update %s (%s ago)",
			sum.LastUpdate.Format("2006-01-02 15:04:05 MST"),
			elapsed(sum.ElapsedSeconds))
	}
}

func writeCards(b *strings.Builder, tags map[string]any, cards []config.CardConfig) {
	width := 0
	for _, c := range cards {
		if len(c.Label) > width {
			width = len(c.Label)
		}
	}

	for _, c := range cards {
		fmt.Fprintf(b, "  %-*s  %s\n", width, c.Label, cardValue(tags, c))
	}
}

// cardValue formats one card. Float verbs pull a coerced numeric; the
// run-state tag maps through its word table first.
func cardValue(tags map[string]any, c config.CardConfig) string {
	if c.Tag == statusKey {
		code := int(snapshot.Float(tags, c.Tag, -1))
		if word, ok := statusWords[code]; ok {
			return word
		}
		return fmt.Sprintf(c.Format, snapshot.Get(tags, c.Tag, "n/a"))
	}

	if hasFloatVerb(c.Format) {
		return fmt.Sprintf(c.Format, snapshot.Float(tags, c.Tag, 0))
	}
	return fmt.Sprintf(c.Format, snapshot.Get(tags, c.Tag, "n/a"))
}

// hasFloatVerb reports whether a format string carries a floating-point
// verb, so the tag value can be coerced before formatting.
func hasFloatVerb(format string) bool {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		j := i + 1
		for j < len(format) && (format[j] == '.' || format[j] == '+' ||
			format[j] == '-' || (format[j] >= '0' && format[j] <= '9')) {
			j++
		}
		if j < len(format) {
			switch format[j] {
			case 'e', 'E', 'f', 'F', 'g', 'G':
				return true
			}
		}
		i = j
	}
	return false
}

func writeFaults(b *strings.Builder, sum health.Summary) {
	b.WriteString("Active faults:\n")
	if len(sum.Faults) == 0 {
		// Global flag set with no indexed bits.
		b.WriteString("  system fault active, check instrument logs\n")
		return
	}
	for _, f := range sum.Faults {
		fmt.Fprintf(b, "  [%2d] %s\n", f.Index, f.Description)
	}
}

func writeTagTable(b *strings.Builder, tags map[string]any) {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString("Tags:\n")
	for _, k := range keys {
		fmt.Fprintf(b, "  %-50s %v\n", k, tags[k])
	}
}

func elapsed(seconds float64) string {
	switch {
	case seconds < 0:
		return "0s"
	case seconds < 120:
		return fmt.Sprintf("%.0fs", seconds)
	case seconds < 7200:
		return fmt.Sprintf("%.0fm", seconds/60)
	default:
		return fmt.Sprintf("%.1fh", seconds/3600)
	}
}
