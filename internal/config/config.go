// internal/config/config.go
package config

type Config struct {
	Monitor MonitorConfig `yaml:"monitor"`
}

type MonitorConfig struct {
	Source    SourceConfig    `yaml:"source"`
	Staleness StalenessConfig `yaml:"staleness"`
	Faults    FaultsConfig    `yaml:"faults"`
	Refresh   RefreshConfig   `yaml:"refresh"`
	Cards     []CardConfig    `yaml:"cards"`
}

// ---- SOURCE ----

// SourceConfig selects and parameterizes the transport.
// kind: gist (raw-file HTTP poll), relay (MQTT retained-latest),
// ntfy (notification-topic poll).
type SourceConfig struct {
	Kind      string `yaml:"kind"`
	URL       string `yaml:"url"`    // gist: raw file URL; ntfy: server base (optional)
	Broker    string `yaml:"broker"` // relay only
	Topic     string `yaml:"topic"`  // relay + ntfy
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- STALENESS ----

type StalenessConfig struct {
	SlowS    int `yaml:"slow_s"`
	OfflineS int `yaml:"offline_s"`
}

// ---- FAULTS ----

// FaultsConfig shapes fault decoding. ScanLimit is a pointer so an
// explicit 0 stays distinguishable from absent.
type FaultsConfig struct {
	ScanLimit *int           `yaml:"scan_limit"`
	Codes     map[int]string `yaml:"codes"`
}

// ---- REFRESH ----

// RefreshConfig is the poll cadence per health tier. The core exposes the
// tier only; the loop owns timing.
type RefreshConfig struct {
	OnlineMs  int `yaml:"online_ms"`
	OfflineMs int `yaml:"offline_ms"`
}

// ---- CARDS ----

// CardConfig is one metric card: a tag rendered through a format verb.
type CardConfig struct {
	Tag    string `yaml:"tag"`
	Label  string `yaml:"label"`
	Format string `yaml:"format"`
}
