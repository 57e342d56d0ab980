package text

import "math"

// CalculateJaundiceRate returns the percentage of charged words among the
// article words, rounded half away from zero to two decimals. An empty word
// list rates exactly 0.0.
func CalculateJaundiceRate(words []string, charged map[string]struct{}) float64 {
	if len(words) == 0 {
		return 0.0
	}

	found := 0
	for _, word := range words {
		if _, ok := charged[word]; ok {
			found++
		}
	}

	score := float64(found) / float64(len(words)) * 100
	return math.Round(score*100) / 100
}
