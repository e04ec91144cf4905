package decide

import (
	"project-chooser/internal/block"
)

//go:generate go tool stringer -type=Action,Source -linecomment -output=types_string.go

// Action is the state change staged for a block.
type Action int

const (
	ActionActivate   Action = iota // activate
	ActionDeactivate               // deactivate
)

// Source records which pipeline stage staged a block.
type Source int

const (
	// SourceExact means the recommendation title equals the block title.
	SourceExact Source = iota // exact
	// SourceFuzzy means the title fuzzy-matched at the operational threshold.
	SourceFuzzy // fuzzy
	// SourceLenient means the title fuzzy-matched at the lenient threshold.
	SourceLenient // lenient
	// SourceFallback means the block was activated by the last-resort guard.
	SourceFallback // fallback
)

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Staged explains why a block was staged.
type Staged struct {
	Block  *block.Block `json:"-"`
	Action Action       `json:"action"`
	Source Source       `json:"source"`
	// Title is the recommendation title that resolved to Block.
	// Empty for SourceFallback.
	Title string `json:"title,omitempty"`
	// Score is the fuzzy score; 1 for exact matches, 0 for fallbacks.
	Score float64 `json:"score"`
}

// Decision is the outcome of reconciling a recommendation with blocks.
// ToActivate and ToDeactivate are disjoint and hold pointers from the input
// list in the order they were staged.
type Decision struct {
	ToActivate   []*block.Block
	ToDeactivate []*block.Block

	// Staged lists every staged block in staging order.
	Staged []Staged
	// Satisfied lists titles whose block is already in the recommended state.
	Satisfied []string
	// Unmatched lists titles that resolved to no block at the match threshold.
	Unmatched []string
	// Conflicts lists titles ignored because the other list already
	// resolved to the same block.
	Conflicts []string
}

// IsNoop returns true if nothing needs to change.
func (d Decision) IsNoop() bool {
	return len(d.ToActivate) == 0 && len(d.ToDeactivate) == 0
}
