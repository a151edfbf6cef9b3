// internal/config/validate_test.go
package config

import "testing"

// helper to build a minimal valid config quickly
func gistConfig() *Config {
	return &Config{
		Monitor: MonitorConfig{
			Source: SourceConfig{
				Kind: "gist",
				URL:  "https://gist.githubusercontent.com/x/raw/status.json",
			},
		},
	}
}

// ---- tests ----

func TestValidate_GistOK(t *testing.T) {
	if err := Validate(gistConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_KindRequired(t *testing.T) {
	cfg := gistConfig()
	cfg.Monitor.Source.Kind = ""
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for missing kind")
	}
}

func TestValidate_UnknownKind(t *testing.T) {
	cfg := gistConfig()
	cfg.Monitor.Source.Kind = "carrier-pigeon"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestValidate_GistNeedsURL(t *testing.T) {
	cfg := gistConfig()
	cfg.Monitor.Source.URL = ""
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for gist without url")
	}
}

func TestValidate_RelayNeedsBrokerAndTopic(t *testing.T) {
	cfg := gistConfig()
	cfg.Monitor.Source = SourceConfig{Kind: "relay", Broker: "tcp://host:1883"}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for relay without topic")
	}

	cfg.Monitor.Source = SourceConfig{Kind: "relay", Topic: "lab/ion-source"}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for relay without broker")
	}

	cfg.Monitor.Source = SourceConfig{Kind: "relay", Broker: "tcp://host:1883", Topic: "lab/ion-source"}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_NtfyNeedsTopic(t *testing.T) {
	cfg := gistConfig()
	cfg.Monitor.Source = SourceConfig{Kind: "ntfy"}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for ntfy without topic")
	}

	// Server base is optional; Normalize fills the public default.
	cfg.Monitor.Source = SourceConfig{Kind: "ntfy", Topic: "lab-ion-source"}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_SlowMustBeBelowOffline(t *testing.T) {
	cfg := gistConfig()
	cfg.Monitor.Staleness = StalenessConfig{SlowS: 300, OfflineS: 300}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for slow >= offline")
	}

	cfg.Monitor.Staleness = StalenessConfig{SlowS: 80, OfflineS: 300}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_NegativeValuesRejected(t *testing.T) {
	cfg := gistConfig()
	cfg.Monitor.Source.TimeoutMs = -1
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for negative timeout")
	}

	cfg = gistConfig()
	neg := -5
	cfg.Monitor.Faults.ScanLimit = &neg
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for negative scan limit")
	}

	cfg = gistConfig()
	cfg.Monitor.Faults.Codes = map[int]string{-2: "nope"}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for negative fault index")
	}
}

func TestValidate_CardNeedsTag(t *testing.T) {
	cfg := gistConfig()
	cfg.Monitor.Cards = []CardConfig{{Label: "Beam Voltage"}}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for card without tag")
	}
}
