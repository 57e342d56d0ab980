package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"ArticlesRate/internal/ports"
)

const (
	userAgent = "ArticlesRate/1.0"

	// maxBodySize caps how much of a response we are willing to read.
	maxBodySize = int64(5 << 20)
)

// StatusError reports a non-200 response for an article URL.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Code)
}

// Fetcher performs a single HTTP GET per article. No retries: one failed
// request is terminal for that URL.
type Fetcher struct {
	client *http.Client
	delay  time.Duration
}

var _ ports.Fetcher = (*Fetcher)(nil)

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithDelay inserts a fixed pause before each request. Timeout scenarios in
// tests use it instead of a slow remote.
func WithDelay(d time.Duration) Option {
	return func(f *Fetcher) { f.delay = d }
}

// New wires an HTTP client; a nil client gets a 30-second default.
func New(client *http.Client, opts ...Option) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	f := &Fetcher{client: client}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads the page body as a string. Transport failures and non-200
// statuses are both fetch errors; context expiry surfaces as ctx.Err().
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.delay > 0 {
		timer := time.NewTimer(f.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return string(body), nil
}
