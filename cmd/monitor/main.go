// cmd/monitor/main.go
package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ipids/ion-monitor/internal/config"
	"github.com/ipids/ion-monitor/internal/fault"
	"github.com/ipids/ion-monitor/internal/health"
	"github.com/ipids/ion-monitor/internal/render"
	"github.com/ipids/ion-monitor/internal/snapshot"
	"github.com/ipids/ion-monitor/internal/track"
	"github.com/ipids/ion-monitor/internal/transport"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: monitor <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	applyEnvOverrides(&cfg.Monitor.Source)

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	m := cfg.Monitor

	// --------------------
	// Build transport + core state
	// --------------------

	source, closeSource, err := transport.Build(m.Source)
	if err != nil {
		log.Fatalf("transport build failed: %v", err)
	}
	defer closeSource()

	tracker := track.New()

	thresholds := health.Thresholds{
		Slow:    time.Duration(m.Staleness.SlowS) * time.Second,
		Offline: time.Duration(m.Staleness.OfflineS) * time.Second,
	}

	scanLimit := fault.DefaultScanLimit
	if m.Faults.ScanLimit != nil {
		scanLimit = *m.Faults.ScanLimit
	}
	table := fault.DefaultTable()
	for idx, desc := range m.Faults.Codes {
		table[idx] = desc
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	log.Printf("monitor: source kind=%s, polling", m.Source.Kind)

	// --------------------
	// Poll + render loop
	// --------------------

	// One cycle runs to completion before the next; a failed poll leaves
	// tracked state untouched and the next cycle retries. Nothing here
	// terminates the process.
	for {
		runCycle(source, tracker)

		sum := health.Summarize(time.Now(), tracker, table, scanLimit, thresholds)
		os.Stdout.WriteString(render.Render(sum, m.Cards))

		// Cadence follows the tier: back off while the source is gone.
		delay := time.Duration(m.Refresh.OnlineMs) * time.Millisecond
		if sum.Tier == health.Offline {
			delay = time.Duration(m.Refresh.OfflineMs) * time.Millisecond
		}

		select {
		case <-stop:
			log.Print("monitor: shutting down")
			return
		case <-time.After(delay):
		}
	}
}

// runCycle performs one fetch-parse-consider step.
func runCycle(source transport.Source, tracker *track.Tracker) {
	raw, err := source.Fetcher.FetchLatest()
	if err != nil {
		// Fetchers map transport failures to empty results; an error
		// here is a programming problem, not a network one.
		log.Printf("monitor: fetch: %v", err)
		return
	}

	snap, err := snapshot.Parse(raw, source.Unwrap)
	switch {
	case err == nil:
		tracker.Consider(snap)
	case errors.Is(err, snapshot.ErrEmptyPayload):
		// Routine: nothing published yet, or the fetch came up empty.
	case errors.Is(err, snapshot.ErrMalformedPayload):
		// Operator-visible: data arrived but could not be read.
		log.Printf("monitor: %v", err)
	default:
		log.Printf("monitor: parse: %v", err)
	}
}

// applyEnvOverrides lets deployment environments point the monitor at a
// different intermediary without editing the config file.
func applyEnvOverrides(src *config.SourceConfig) {
	// Missing .env is fine; the variables may come from the real env.
	_ = godotenv.Load()

	if v := os.Getenv("MONITOR_SOURCE_URL"); v != "" {
		src.URL = v
	}
	if v := os.Getenv("MONITOR_SOURCE_BROKER"); v != "" {
		src.Broker = v
	}
	if v := os.Getenv("MONITOR_SOURCE_TOPIC"); v != "" {
		src.Topic = v
	}
}
