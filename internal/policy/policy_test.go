package policy

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-chooser/internal/match"
)

func TestDefault(t *testing.T) {
	p := Default()

	assert.InDelta(t, 0.5, p.MatchThreshold, 1e-9)
	assert.InDelta(t, 0.4, p.LenientThreshold, 1e-9)
	assert.InDelta(t, 0.85, p.ContainmentBoost, 1e-9)
	assert.InDelta(t, 0.9, p.CoverageCap, 1e-9)
	assert.Equal(t, 3, p.FallbackCount)
	require.NoError(t, p.Validate())

	assert.Equal(t, match.DefaultScorer(), p.Scorer())
}

func TestParse(t *testing.T) {
	yaml := `
match_threshold: 0.6
coverage_cap: 0.8
fallback_count: 2
`

	p, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.InDelta(t, 0.6, p.MatchThreshold, 1e-9)
	assert.InDelta(t, 0.8, p.CoverageCap, 1e-9)
	assert.Equal(t, 2, p.FallbackCount)

	// Defaults kept for omitted fields
	assert.InDelta(t, LenientThreshold, p.LenientThreshold, 1e-9)
	assert.InDelta(t, match.DefaultContainmentBoost, p.ContainmentBoost, 1e-9)
}

func TestParse_Empty(t *testing.T) {
	p, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), *p)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		isRange bool
	}{
		{"threshold above one", "match_threshold: 1.5", true},
		{"negative lenient", "lenient_threshold: -0.1", true},
		{"negative fallback", "fallback_count: -1", true},
		{"malformed yaml", "match_threshold: [", false},
		{"wrong type", "fallback_count: lots", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Equal(t, tt.isRange, errors.Is(err, ErrInvalidPolicy), "err: %v", err)
		})
	}
}

func TestValidate_ReportsField(t *testing.T) {
	p := Default()
	p.CoverageCap = 2

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CoverageCap")
	assert.Contains(t, err.Error(), "lte")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lenient_threshold: 0.3\n"), 0o644))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, p.LenientThreshold, 1e-9)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read policy file")
}

func TestMarshal_RoundTrip(t *testing.T) {
	p := Default()
	p.FallbackCount = 5

	data, err := Marshal(&p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fallback_count: 5")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, p, *back)
}
