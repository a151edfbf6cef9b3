// internal/transport/gist/client_test.go
package gist

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchLatest_Body(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"timestamp": 1700000000}`))
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL, Timeout: time.Second})
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	body, err := c.FetchLatest()
	if err != nil {
		t.Fatalf("FetchLatest err=%v", err)
	}
	if string(body) != `{"timestamp": 1700000000}` {
		t.Fatalf("body=%s", body)
	}
}

// Every request must carry a fresh cache-buster so intermediate caches
// never serve a stale copy.
func TestFetchLatest_CacheBuster(t *testing.T) {
	seen := make(chan string, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.URL.Query().Get("t")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL, Timeout: time.Second})
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	c.FetchLatest()
	c.FetchLatest()

	first, second := <-seen, <-seen
	if first == "" || second == "" {
		t.Fatalf("cache-buster missing: %q %q", first, second)
	}
	if first == second {
		t.Fatalf("cache-buster did not change between fetches: %q", first)
	}
}

func TestFetchLatest_Non200IsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	c, _ := New(Config{URL: srv.URL, Timeout: time.Second})
	body, err := c.FetchLatest()
	if err != nil || body != nil {
		t.Fatalf("body=%v err=%v, want empty result", body, err)
	}
}

// A dead endpoint is a bounded empty fetch, never an error and never a hang.
func TestFetchLatest_NetworkFailureIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c, _ := New(Config{URL: srv.URL, Timeout: 500 * time.Millisecond})

	done := make(chan struct{})
	var body []byte
	var err error
	go func() {
		body, err = c.FetchLatest()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("fetch did not respect its timeout")
	}
	if err != nil || body != nil {
		t.Fatalf("body=%v err=%v, want empty result", body, err)
	}
}

func TestNew_RequiresURL(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error for missing url")
	}
}
