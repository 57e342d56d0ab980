package text

import (
	"context"
	"strings"
	"unicode/utf8"

	"ArticlesRate/internal/ports"
)

// negationWord is the one short token the length filter lets through: "не"
// flips the meaning of its neighbors, so dropping it would skew the rate.
const negationWord = "не"

// asciiPunctuation mirrors the punctuation set trimmed from token edges.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// glyphReplacer removes quotation and ellipsis glyphs anywhere in a token.
var glyphReplacer = strings.NewReplacer("«", "", "»", "", "…", "")

// deadlineCheckEvery bounds how many tokens are processed between context
// checks, so a huge article cannot outlive its per-article budget.
const deadlineCheckEvery = 64

// CleanWord strips typographic glyphs and edge punctuation from one token.
func CleanWord(word string) string {
	word = glyphReplacer.Replace(word)
	return strings.Trim(word, asciiPunctuation)
}

// SplitByWords tokenizes text into normalized words: whitespace split, glyph
// and punctuation cleanup, canonical form via the normalizer, then a length
// filter keeping words longer than two runes plus the negation particle.
// Original token order is preserved.
func SplitByWords(ctx context.Context, normalizer ports.Normalizer, text string) ([]string, error) {
	var words []string
	for i, raw := range strings.Fields(text) {
		if i%deadlineCheckEvery == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		cleaned := CleanWord(raw)
		if cleaned == "" {
			continue
		}

		normalized := normalizer.Normalize(cleaned)
		if utf8.RuneCountInString(normalized) > 2 || normalized == negationWord {
			words = append(words, normalized)
		}
	}
	return words, nil
}
