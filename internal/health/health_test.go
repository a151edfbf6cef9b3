// internal/health/health_test.go
package health

import (
	"testing"
	"time"
)

func TestClassify_Boundaries(t *testing.T) {
	cfg := Thresholds{Slow: 80 * time.Second, Offline: 300 * time.Second}

	cases := []struct {
		elapsed time.Duration
		want    Tier
	}{
		{0, Online},
		{79*time.Second + 900*time.Millisecond, Online},
		{80 * time.Second, Online}, // boundary itself is not "above"
		{80*time.Second + 100*time.Millisecond, Slow},
		{300 * time.Second, Slow},
		{300*time.Second + 100*time.Millisecond, Offline},
		{24 * time.Hour, Offline},
	}

	for _, c := range cases {
		if got := Classify(c.elapsed, cfg); got != c.want {
			t.Fatalf("Classify(%v)=%v, want %v", c.elapsed, got, c.want)
		}
	}
}

func TestClassify_ZeroConfigUsesDefaults(t *testing.T) {
	if got := Classify(time.Minute, Thresholds{}); got != Online {
		t.Fatalf("60s under default thresholds should be Online, got %v", got)
	}
	if got := Classify(10*time.Minute, Thresholds{}); got != Offline {
		t.Fatalf("600s under default thresholds should be Offline, got %v", got)
	}
}

func TestClassifyAt_Connecting(t *testing.T) {
	if got := ClassifyAt(time.Now(), 0, false, DefaultThresholds()); got != Connecting {
		t.Fatalf("no accepted instant should classify Connecting, got %v", got)
	}
}

func TestClassifyAt_Elapsed(t *testing.T) {
	now := time.Unix(1700000100, 0)
	got := ClassifyAt(now, 1700000000, true, Thresholds{Slow: 80 * time.Second, Offline: 300 * time.Second})
	if got != Slow {
		t.Fatalf("elapsed 100s should be Slow, got %v", got)
	}
}

func TestTier_String(t *testing.T) {
	cases := map[Tier]string{
		Connecting: "CONNECTING",
		Online:     "ONLINE",
		Slow:       "SLOW",
		Offline:    "OFFLINE",
		Fault:      "FAULT",
		Invalid:    "INVALID",
		Tier(42):   "UNKNOWN",
	}
	for tier, want := range cases {
		if got := tier.String(); got != want {
			t.Fatalf("%d.String()=%q, want %q", tier, got, want)
		}
	}
}
