package ports

import "context"

// Fetcher retrieves the raw HTML of an article page. Implementations must
// honor ctx cancellation and make exactly one request per call.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Normalizer reduces a single cleaned word to its canonical dictionary form.
// Implementations that are not safe for concurrent use should be wrapped
// with morph.Synchronized before being shared across workers.
type Normalizer interface {
	Normalize(word string) string
}
