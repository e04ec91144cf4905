package decide

import (
	"project-chooser/internal/block"
)

// stager accumulates a Decision. A block is staged at most once.
type stager struct {
	dec Decision

	staged map[*block.Block]bool
	// claimed holds blocks an include resolved to, staged or not.
	claimed map[*block.Block]bool
}

func newStager() *stager {
	return &stager{
		dec: Decision{
			ToActivate:   []*block.Block{},
			ToDeactivate: []*block.Block{},
			Staged:       []Staged{},
		},
		staged:  make(map[*block.Block]bool),
		claimed: make(map[*block.Block]bool),
	}
}

// activate stages an inactive, unstaged block. Reports whether it did.
func (s *stager) activate(b *block.Block, src Source, title string, score float64) bool {
	if b.Active || s.staged[b] {
		return false
	}

	s.staged[b] = true
	s.dec.ToActivate = append(s.dec.ToActivate, b)
	s.dec.Staged = append(s.dec.Staged, Staged{
		Block:  b,
		Action: ActionActivate,
		Source: src,
		Title:  title,
		Score:  score,
	})

	return true
}

// deactivate stages an active, unstaged block. Reports whether it did.
func (s *stager) deactivate(b *block.Block, src Source, title string, score float64) bool {
	if !b.Active || s.staged[b] {
		return false
	}

	s.staged[b] = true
	s.dec.ToDeactivate = append(s.dec.ToDeactivate, b)
	s.dec.Staged = append(s.dec.Staged, Staged{
		Block:  b,
		Action: ActionDeactivate,
		Source: src,
		Title:  title,
		Score:  score,
	})

	return true
}
