// internal/config/normalize.go
package config

// Built-in defaults. Thresholds match an assumed ~60 s publish interval;
// the fetch timeout matches the original dashboard's 5 s request budget.
const (
	DefaultTimeoutMs = 5000
	DefaultSlowS     = 80
	DefaultOfflineS  = 300
	DefaultOnlineMs  = 5000
	DefaultOfflineMs = 30000

	DefaultNtfyServer = "https://ntfy.sh"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	m := &cfg.Monitor

	if m.Source.TimeoutMs == 0 {
		m.Source.TimeoutMs = DefaultTimeoutMs
	}
	if m.Source.Kind == "ntfy" && m.Source.URL == "" {
		m.Source.URL = DefaultNtfyServer
	}

	if m.Staleness.SlowS == 0 {
		m.Staleness.SlowS = DefaultSlowS
	}
	if m.Staleness.OfflineS == 0 {
		m.Staleness.OfflineS = DefaultOfflineS
	}

	if m.Refresh.OnlineMs == 0 {
		m.Refresh.OnlineMs = DefaultOnlineMs
	}
	if m.Refresh.OfflineMs == 0 {
		m.Refresh.OfflineMs = DefaultOfflineMs
	}

	if len(m.Cards) == 0 {
		m.Cards = defaultCards()
	}
	for i := range m.Cards {
		if m.Cards[i].Label == "" {
			m.Cards[i].Label = m.Cards[i].Tag
		}
		if m.Cards[i].Format == "" {
			m.Cards[i].Format = "%v"
		}
	}
}

// defaultCards mirrors the stock dashboard layout.
func defaultCards() []CardConfig {
	return []CardConfig{
		{
			Tag:    "system.ionSource.general.beamVoltage",
			Label:  "Beam Voltage",
			Format: "%.1f kV",
		},
		{
			Tag:    "system.vacuumSystem.gauges.source.readback_mB",
			Label:  "Source Pressure",
			Format: "%.1e mbar",
		},
		{
			Tag:    "beamline.magnet.readbackA",
			Label:  "Magnet",
			Format: "%.2f A",
		},
		{
			Tag:    "system.ionSource.general.status",
			Label:  "State",
			Format: "%v",
		},
	}
}
