// internal/transport/gist/client.go
package gist

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client polls a raw-file URL (a gist raw link, or any static JSON file
// behind HTTP). The file sits behind caches, so every request carries a
// cache-busting query parameter.
type Client struct {
	url  string
	http *http.Client
	now  func() time.Time
}

// Config is minimal transport config.
type Config struct {
	URL     string
	Timeout time.Duration
}

// maxPayloadBytes bounds a single fetch. Snapshots are a few KB; anything
// near this size is not ours.
const maxPayloadBytes = 1 << 20

// New creates a raw-file poller.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("gist: url required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Client{
		url:  cfg.URL,
		http: &http.Client{Timeout: cfg.Timeout},
		now:  time.Now,
	}, nil
}

// FetchLatest GETs the file once. Any failure (network, non-200, oversize
// body) is an empty result: the caller retries next cycle.
func (c *Client) FetchLatest() ([]byte, error) {
	resp, err := c.http.Get(c.bustedURL())
	if err != nil {
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes+1))
	if err != nil || len(body) > maxPayloadBytes {
		return nil, nil
	}
	return body, nil
}

// Close satisfies the transport closer contract. Nothing to release.
func (c *Client) Close() error { return nil }

// bustedURL appends t=<unix-nanos> so intermediate caches never serve a
// stale copy of the file.
func (c *Client) bustedURL() string {
	u, err := url.Parse(c.url)
	if err != nil {
		return c.url
	}
	q := u.Query()
	q.Set("t", strconv.FormatInt(c.now().UnixNano(), 10))
	u.RawQuery = q.Encode()
	return u.String()
}
