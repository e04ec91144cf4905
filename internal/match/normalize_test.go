package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Markup
		{`\textbf{Human   Detection} and Tracking`, "human detection tracking"},
		{`\emph{Chess} Engine`, "chess engine"},
		{`\LaTeX Resume Builder`, "resume builder"},

		// Whitespace
		{"  Visual\tOdometry \n", "visual odometry"},
		{"Weather    App", "weather app"},

		// Filler words
		{"The Art of War", "art war"},
		{"A Tool for Planning in Teams", "tool planning teams"},
		{"Robots At Home To Go", "robots home go"},
		{"and or the", ""},

		// Punctuation is kept
		{"Visual-Encoding-Particle-Filter", "visual-encoding-particle-filter"},

		// Edge cases
		{"", ""},
		{"   ", ""},
		{"A", ""},
		{"X", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeTitle(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeTitle_Idempotent(t *testing.T) {
	inputs := []string{
		`\textbf{Human   Detection} and Tracking`,
		"The Art of War",
		"Distributed KV Store",
	}

	for _, in := range inputs {
		once := NormalizeTitle(in)
		assert.Equal(t, once, NormalizeTitle(once), "input %q", in)
	}
}

func TestTokenSet(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Visual-Encoding-Particle-Filter", []string{"visual", "encoding", "particle", "filter"}},
		{"Human Detection and Tracking", []string{"human", "detection", "and", "tracking"}},
		{`\textbf{Chess}`, []string{"textbf", "chess"}},
		{"snake_case v2", []string{"snake_case", "v2"}},
		{"Café Finder", []string{"café", "finder"}},
		{"chess CHESS Chess", []string{"chess"}},
		{"", nil},
		{"-- !! --", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			set := TokenSet(tt.input)
			assert.Len(t, set, len(tt.expected))

			for _, tok := range tt.expected {
				assert.Contains(t, set, tok)
			}
		})
	}
}

func TestIsFillerWord(t *testing.T) {
	for _, w := range []string{"a", "an", "the", "and", "or", "for", "of", "in", "on", "at", "to", "The", "AND"} {
		assert.True(t, IsFillerWord(w), w)
	}

	for _, w := range []string{"with", "by", "chess", ""} {
		assert.False(t, IsFillerWord(w), w)
	}
}
