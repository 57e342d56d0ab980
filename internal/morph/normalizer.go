package morph

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"ArticlesRate/internal/ports"
)

// Dictionary normalizes words via a lemma lookup table. Unknown words pass
// through lower-cased. The table is immutable after construction, so one
// Dictionary is safe to share across concurrent workers.
type Dictionary struct {
	lemmas map[string]string
}

var _ ports.Normalizer = (*Dictionary)(nil)

// NewDictionary builds a normalizer from an in-memory word→lemma mapping.
// Keys and values are lower-cased on the way in.
func NewDictionary(lemmas map[string]string) *Dictionary {
	table := make(map[string]string, len(lemmas))
	for word, lemma := range lemmas {
		table[strings.ToLower(word)] = strings.ToLower(lemma)
	}
	return &Dictionary{lemmas: table}
}

// LoadDictionary reads a tab-separated "word<TAB>lemma" file. Blank lines
// and lines starting with # are skipped.
func LoadDictionary(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lemma dictionary: %w", err)
	}
	defer file.Close()

	lemmas := map[string]string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, lemma, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("malformed dictionary line %q in %s", line, path)
		}
		lemmas[strings.TrimSpace(word)] = strings.TrimSpace(lemma)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lemma dictionary: %w", err)
	}

	return NewDictionary(lemmas), nil
}

// Normalize returns the canonical form of the word.
func (d *Dictionary) Normalize(word string) string {
	lower := strings.ToLower(word)
	if lemma, ok := d.lemmas[lower]; ok {
		return lemma
	}
	return lower
}

// Synchronized serializes access to a normalizer that is not safe for
// concurrent invocation.
type Synchronized struct {
	mu    sync.Mutex
	inner ports.Normalizer
}

var _ ports.Normalizer = (*Synchronized)(nil)

// NewSynchronized wraps the given normalizer with a mutex.
func NewSynchronized(inner ports.Normalizer) *Synchronized {
	return &Synchronized{inner: inner}
}

// Normalize delegates to the wrapped normalizer under the lock.
func (s *Synchronized) Normalize(word string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Normalize(word)
}
