package match

import (
	"regexp"
	"strings"
)

var (
	// markupPattern matches markup commands such as `\textbf{` and the
	// closing braces they leave behind.
	markupPattern = regexp.MustCompile(`\\[A-Za-z]+\{?|\}`)

	// wordPattern matches word tokens (letters, digits, underscore).
	wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

// fillerWords are dropped from normalized titles.
var fillerWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "for": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "to": {},
}

// NormalizeTitle normalizes a project title for fuzzy matching.
// The normalization pipeline:
// 1. Strip markup commands and closing braces.
// 2. Collapse whitespace and trim.
// 3. Case-fold to lower.
// 4. Drop filler words.
func NormalizeTitle(s string) string {
	s = markupPattern.ReplaceAllString(s, "")

	words := strings.Fields(strings.ToLower(s))
	kept := words[:0]

	for _, w := range words {
		if IsFillerWord(w) {
			continue
		}

		kept = append(kept, w)
	}

	return strings.Join(kept, " ")
}

// TokenSet returns the set of case-folded word tokens in s.
func TokenSet(s string) map[string]struct{} {
	words := wordPattern.FindAllString(strings.ToLower(s), -1)
	if len(words) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}

	return set
}

// IsFillerWord reports whether w is dropped by NormalizeTitle.
func IsFillerWord(w string) bool {
	_, ok := fillerWords[strings.ToLower(w)]
	return ok
}
