package adapters

import (
	"fmt"
	"net/url"
	"strings"
)

// SanitizeFunc converts raw article HTML into a title and body text. When
// plaintext is false the body keeps minimal markup (paragraph breaks only).
type SanitizeFunc func(html string, plaintext bool) (title string, body string, err error)

// ArticleNotFoundError reports that no sanitizer is registered for the URL,
// or that the URL carries no parseable host at all.
type ArticleNotFoundError struct {
	Source string
}

func (e *ArticleNotFoundError) Error() string {
	return fmt.Sprintf("article source %s is not supported", e.Source)
}

// Registry keeps a mapping from host-derived keys to sanitizer functions.
type Registry struct {
	sanitizers map[string]SanitizeFunc
}

// NewRegistry builds a registry with the built-in site sanitizers.
func NewRegistry() *Registry {
	r := &Registry{sanitizers: map[string]SanitizeFunc{}}
	r.Register("inosmi_ru", SanitizeInosmi)
	r.Register("lenta_ru", SanitizeLenta)
	return r
}

// Register adds or replaces a sanitizer under the given host key.
func (r *Registry) Register(key string, fn SanitizeFunc) {
	if r.sanitizers == nil {
		r.sanitizers = map[string]SanitizeFunc{}
	}
	r.sanitizers[key] = fn
}

// Resolve maps an article URL to its sanitizer. Both a malformed URL and an
// unregistered host surface as ArticleNotFoundError carrying the offending
// label.
func (r *Registry) Resolve(rawURL string) (SanitizeFunc, error) {
	key, err := HostKey(rawURL)
	if err != nil {
		return nil, err
	}
	if fn, ok := r.sanitizers[key]; ok {
		return fn, nil
	}
	return nil, &ArticleNotFoundError{Source: key}
}

// HostKey derives the registry key from the URL host: labels joined with
// underscores, leading www dropped ("https://inosmi.ru/a" -> "inosmi_ru").
func HostKey(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return "", &ArticleNotFoundError{Source: rawURL}
	}
	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	return strings.ReplaceAll(host, ".", "_"), nil
}
