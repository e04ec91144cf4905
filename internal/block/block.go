package block

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Block is one project section of the source document.
type Block struct {
	// Title is the canonical display name of the project.
	Title string `json:"title"`
	// Active is false when the block is commented out.
	Active bool `json:"active"`

	// Start is the index of the first line of the block.
	Start int `json:"start"`
	// End is the index of the line after the block.
	End int `json:"end"`
	// Content holds the bullet points found in the block.
	Content []string `json:"content,omitempty"`
}

// Status returns a human-readable state name.
func (b *Block) Status() string {
	if b.Active {
		return StatusActive
	}

	return StatusInactive
}

// LoadFile loads a JSON block list from the given path.
func LoadFile(path string) ([]*Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read block file %s: %w", path, err)
	}

	return ParseList(data)
}

// ParseList parses a JSON array of blocks. Null entries are dropped.
func ParseList(data []byte) ([]*Block, error) {
	var raw []*Block

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse block list: %w", err)
	}

	blocks := make([]*Block, 0, len(raw))
	for _, b := range raw {
		if b != nil {
			blocks = append(blocks, b)
		}
	}

	return blocks, nil
}

// CountActive returns the number of active blocks.
func CountActive(blocks []*Block) int {
	n := 0

	for _, b := range blocks {
		if b != nil && b.Active {
			n++
		}
	}

	return n
}
