package block

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	data := `[
  {"title": "Visual Odometry", "active": false, "start": 10, "end": 18, "content": ["Built a VO pipeline"]},
  null,
  {"title": "SfM Reconstruction", "active": true, "start": 18, "end": 25}
]`

	blocks, err := ParseList([]byte(data))
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, "Visual Odometry", blocks[0].Title)
	assert.False(t, blocks[0].Active)
	assert.Equal(t, 10, blocks[0].Start)
	assert.Equal(t, 18, blocks[0].End)
	assert.Equal(t, []string{"Built a VO pipeline"}, blocks[0].Content)

	assert.Equal(t, "SfM Reconstruction", blocks[1].Title)
	assert.True(t, blocks[1].Active)
	assert.Empty(t, blocks[1].Content)
}

func TestParseList_Invalid(t *testing.T) {
	_, err := ParseList([]byte(`{"title": "not a list"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse block list")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"title": "A", "active": true}]`), 0o644))

	blocks, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "A", blocks[0].Title)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestStatusAndCountActive(t *testing.T) {
	blocks := []*Block{
		{Title: "A", Active: true},
		{Title: "B"},
		nil,
		{Title: "C", Active: true},
	}

	assert.Equal(t, StatusActive, blocks[0].Status())
	assert.Equal(t, StatusInactive, blocks[1].Status())
	assert.Equal(t, 2, CountActive(blocks))
	assert.Equal(t, 0, CountActive(nil))
}
