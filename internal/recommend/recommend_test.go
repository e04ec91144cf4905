package recommend

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantInclude []string
		wantExclude []string
	}{
		{
			name:        "both lists",
			input:       `{"include_projects": ["Chess Engine", "Weather App"], "exclude_projects": ["Web Scraper"]}`,
			wantInclude: []string{"Chess Engine", "Weather App"},
			wantExclude: []string{"Web Scraper"},
		},
		{
			name:        "missing exclude",
			input:       `{"include_projects": ["Chess Engine"]}`,
			wantInclude: []string{"Chess Engine"},
			wantExclude: []string{},
		},
		{
			name:        "empty object",
			input:       `{}`,
			wantInclude: []string{},
			wantExclude: []string{},
		},
		{
			name:        "null fields",
			input:       `{"include_projects": null, "exclude_projects": null}`,
			wantInclude: []string{},
			wantExclude: []string{},
		},
		{
			name:        "list encoded as string",
			input:       `{"include_projects": "[\"Chess Engine\", \"Weather App\"]", "exclude_projects": []}`,
			wantInclude: []string{"Chess Engine", "Weather App"},
			wantExclude: []string{},
		},
		{
			name:        "titles trimmed, duplicates and empties kept",
			input:       `{"include_projects": ["  Chess Engine ", "Chess Engine", ""]}`,
			wantInclude: []string{"Chess Engine", "Chess Engine", ""},
			wantExclude: []string{},
		},
		{
			name:        "code fence",
			input:       "```json\n{\"include_projects\": [\"Chess Engine\"]}\n```",
			wantInclude: []string{"Chess Engine"},
			wantExclude: []string{},
		},
		{
			name:        "extra fields ignored",
			input:       `{"include_projects": ["A"], "reasoning": "because"}`,
			wantInclude: []string{"A"},
			wantExclude: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Parse([]byte(tt.input))
			require.NoError(t, err)

			assert.Equal(t, tt.wantInclude, rec.Include)
			assert.Equal(t, tt.wantExclude, rec.Exclude)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `include these please`},
		{"not an object", `["Chess Engine"]`},
		{"number field", `{"include_projects": 3}`},
		{"list of numbers", `{"exclude_projects": [1, 2]}`},
		{"string that is not a list", `{"include_projects": "Chess Engine"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidResponse), "err: %v", err)
		})
	}
}

func TestRecommendation_IsEmpty(t *testing.T) {
	assert.True(t, Recommendation{}.IsEmpty())
	assert.False(t, Recommendation{Exclude: []string{"A"}}.IsEmpty())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "response.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"include_projects": ["A"]}`), 0o644))

	rec, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, rec.Include)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidResponse))
}
