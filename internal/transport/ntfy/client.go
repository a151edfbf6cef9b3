// internal/transport/ntfy/client.go
package ntfy

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client polls a ntfy notification topic for the latest published
// snapshot. One poll returns the server's cached notifications as
// newline-delimited JSON; the newest message event wins.
type Client struct {
	url  string
	http *http.Client
}

// Config is minimal transport config.
type Config struct {
	Server  string // base URL, e.g. https://ntfy.sh
	Topic   string
	Timeout time.Duration
}

// New creates a topic poller.
func New(cfg Config) (*Client, error) {
	if cfg.Server == "" {
		return nil, errors.New("ntfy: server required")
	}
	if cfg.Topic == "" {
		return nil, errors.New("ntfy: topic required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Client{
		url:  fmt.Sprintf("%s/%s/json?poll=1", strings.TrimRight(cfg.Server, "/"), cfg.Topic),
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// FetchLatest returns the newest cached notification object, raw.
// The snapshot body still sits inside its "message" field; Unwrap peels
// it. Any transport failure is an empty result.
func (c *Client) FetchLatest() ([]byte, error) {
	resp, err := c.http.Get(c.url)
	if err != nil {
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var latest []byte
	sc := bufio.NewScanner(resp.Body)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		// Keep-open and other housekeeping events carry no message.
		var probe struct {
			Event   string `json:"event"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(line, &probe); err != nil {
			continue
		}
		if probe.Event != "" && probe.Event != "message" {
			continue
		}
		if probe.Message == "" {
			continue
		}
		latest = append(latest[:0], line...)
	}
	if sc.Err() != nil || latest == nil {
		return nil, nil
	}
	return latest, nil
}

// Close satisfies the transport closer contract. Nothing to release.
func (c *Client) Close() error { return nil }

// Unwrap extracts the snapshot body from a notification object.
// This is the transport's parser hook.
func Unwrap(raw []byte) ([]byte, error) {
	var note struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &note); err != nil {
		return nil, err
	}
	if note.Message == "" {
		return nil, errors.New("ntfy: notification has no message body")
	}
	return []byte(note.Message), nil
}
