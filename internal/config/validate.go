// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	m := &cfg.Monitor

	// ------------------------------------------------------------
	// SOURCE
	// ------------------------------------------------------------

	switch m.Source.Kind {
	case "gist":
		if m.Source.URL == "" {
			return fmt.Errorf("config: source kind %q requires url", m.Source.Kind)
		}
	case "relay":
		if m.Source.Broker == "" {
			return fmt.Errorf("config: source kind %q requires broker", m.Source.Kind)
		}
		if m.Source.Topic == "" {
			return fmt.Errorf("config: source kind %q requires topic", m.Source.Kind)
		}
	case "ntfy":
		if m.Source.Topic == "" {
			return fmt.Errorf("config: source kind %q requires topic", m.Source.Kind)
		}
	case "":
		return fmt.Errorf("config: source kind required (gist, relay or ntfy)")
	default:
		return fmt.Errorf("config: unknown source kind %q", m.Source.Kind)
	}

	if m.Source.TimeoutMs < 0 {
		return fmt.Errorf("config: timeout_ms must be >= 0")
	}

	// ------------------------------------------------------------
	// STALENESS
	// ------------------------------------------------------------

	if m.Staleness.SlowS < 0 || m.Staleness.OfflineS < 0 {
		return fmt.Errorf("config: staleness thresholds must be >= 0")
	}
	if m.Staleness.SlowS > 0 && m.Staleness.OfflineS > 0 &&
		m.Staleness.SlowS >= m.Staleness.OfflineS {
		return fmt.Errorf(
			"config: slow_s (%d) must be below offline_s (%d)",
			m.Staleness.SlowS,
			m.Staleness.OfflineS,
		)
	}

	// ------------------------------------------------------------
	// FAULTS
	// ------------------------------------------------------------

	if m.Faults.ScanLimit != nil && *m.Faults.ScanLimit < 0 {
		return fmt.Errorf("config: faults scan_limit must be >= 0")
	}
	for idx := range m.Faults.Codes {
		if idx < 0 {
			return fmt.Errorf("config: fault code index %d must be >= 0", idx)
		}
	}

	// ------------------------------------------------------------
	// REFRESH
	// ------------------------------------------------------------

	if m.Refresh.OnlineMs < 0 || m.Refresh.OfflineMs < 0 {
		return fmt.Errorf("config: refresh intervals must be >= 0")
	}

	// ------------------------------------------------------------
	// CARDS
	// ------------------------------------------------------------

	for i, c := range m.Cards {
		if c.Tag == "" {
			return fmt.Errorf("config: card %d: tag required", i)
		}
	}

	return nil
}
