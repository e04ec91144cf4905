package match

import (
	"github.com/pmezard/go-difflib/difflib"
)

// SequenceRatio computes a Ratcliff/Obershelp similarity score between two
// strings, compared rune by rune.
// 1.0 means identical strings, 0.0 means no common characters.
// The score is: 2*M / (len(a)+len(b)), where M is the number of matched runes.
func SequenceRatio(a, b string) float64 {
	if a == b {
		return 1.0
	}

	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

// TokenCoverage returns the fraction of query tokens that also appear in
// candidate. Returns 0 when query has no tokens.
func TokenCoverage(query, candidate map[string]struct{}) float64 {
	if len(query) == 0 {
		return 0
	}

	shared := 0

	for tok := range query {
		if _, ok := candidate[tok]; ok {
			shared++
		}
	}

	return float64(shared) / float64(len(query))
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}
