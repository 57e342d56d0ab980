package charged

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadDir assembles the charged-word lexicon from every *.txt file in dir,
// one word per line, lower-cased, blanks skipped. The returned set is never
// mutated after load and is safe to share across workers.
func LoadDir(dir string) (map[string]struct{}, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("list charged dictionaries: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no charged dictionaries found in %s", dir)
	}

	words := map[string]struct{}{}
	for _, path := range files {
		if err := loadFile(path, words); err != nil {
			return nil, err
		}
	}
	return words, nil
}

func loadFile(path string, words map[string]struct{}) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open charged dictionary: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		words[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read charged dictionary %s: %w", path, err)
	}
	return nil
}
