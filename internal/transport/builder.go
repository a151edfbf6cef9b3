// internal/transport/builder.go
package transport

import (
	"fmt"
	"time"

	cfg "github.com/ipids/ion-monitor/internal/config"
	"github.com/ipids/ion-monitor/internal/transport/gist"
	"github.com/ipids/ion-monitor/internal/transport/ntfy"
	"github.com/ipids/ion-monitor/internal/transport/relay"
)

// Build constructs the configured transport and its closer.
// Selection only: each client owns its own timeout and failure mapping.
func Build(src cfg.SourceConfig) (Source, func() error, error) {
	timeout := time.Duration(src.TimeoutMs) * time.Millisecond

	switch src.Kind {
	case "gist":
		c, err := gist.New(gist.Config{
			URL:     src.URL,
			Timeout: timeout,
		})
		if err != nil {
			return Source{}, nil, err
		}
		return Source{Fetcher: c}, c.Close, nil

	case "relay":
		c, err := relay.New(relay.Config{
			Broker:  src.Broker,
			Topic:   src.Topic,
			Timeout: timeout,
		})
		if err != nil {
			return Source{}, nil, err
		}
		return Source{Fetcher: c}, c.Close, nil

	case "ntfy":
		c, err := ntfy.New(ntfy.Config{
			Server:  src.URL,
			Topic:   src.Topic,
			Timeout: timeout,
		})
		if err != nil {
			return Source{}, nil, err
		}
		return Source{Fetcher: c, Unwrap: ntfy.Unwrap}, c.Close, nil

	default:
		return Source{}, nil, fmt.Errorf("transport: unknown source kind %q", src.Kind)
	}
}
