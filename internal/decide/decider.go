package decide

import (
	"fmt"
	"strings"

	"project-chooser/internal/block"
	"project-chooser/internal/diagnostic"
	"project-chooser/internal/match"
	"project-chooser/internal/policy"
	"project-chooser/internal/recommend"
)

// Decider turns recommendations into block toggles. A Decider holds no
// per-call state and is safe for concurrent use if its Sink is.
type Decider struct {
	policy policy.Policy
	scorer match.Scorer
	sink   diagnostic.Sink
}

// Option configures a Decider.
type Option func(*Decider)

// WithPolicy sets the thresholds used by the Decider.
func WithPolicy(p policy.Policy) Option {
	return func(d *Decider) {
		d.policy = p
	}
}

// WithSink sets where diagnostics are reported.
func WithSink(s diagnostic.Sink) Option {
	return func(d *Decider) {
		if s != nil {
			d.sink = s
		}
	}
}

// NewDecider creates a Decider with the default policy and a no-op sink.
func NewDecider(opts ...Option) *Decider {
	d := &Decider{
		policy: policy.Default(),
		sink:   diagnostic.Nop(),
	}

	for _, opt := range opts {
		opt(d)
	}

	d.scorer = d.policy.Scorer()

	return d
}

// Decide runs the default Decider.
func Decide(rec recommend.Recommendation, blocks []*block.Block) Decision {
	return NewDecider().Decide(rec, blocks)
}

// Decide reconciles rec against blocks. Nil entries in blocks are ignored.
func (d *Decider) Decide(rec recommend.Recommendation, blocks []*block.Block) Decision {
	d.sink.Report(diagnostic.Diagnostic{
		Code:    diagnostic.CodeRecommendation,
		Message: fmt.Sprintf("including: %s; excluding: %s", strings.Join(rec.Include, ", "), strings.Join(rec.Exclude, ", ")),
	})

	s := newStager()

	// Last write wins for duplicate titles.
	byTitle := make(map[string]*block.Block, len(blocks))
	for _, b := range blocks {
		if b != nil {
			byTitle[b.Title] = b
		}
	}

	var unmatchedIncludes, unmatchedExcludes []string

	for _, title := range rec.Include {
		b, ok := byTitle[title]
		if !ok {
			unmatchedIncludes = append(unmatchedIncludes, title)
			continue
		}

		d.include(s, b, SourceExact, title, 1)
	}

	for _, title := range rec.Exclude {
		b, ok := byTitle[title]
		if !ok {
			unmatchedExcludes = append(unmatchedExcludes, title)
			continue
		}

		d.exclude(s, b, SourceExact, title, 1)
	}

	for _, title := range unmatchedIncludes {
		b, score := d.scorer.FindBestMatch(title, blocks, d.policy.MatchThreshold)
		if b == nil {
			d.unmatched(s, title, score)
			continue
		}

		d.sink.Report(diagnostic.Diagnostic{
			Code:    diagnostic.CodeFuzzyInclude,
			Message: "fuzzy matched include",
			Title:   title,
			Block:   b.Title,
			Score:   score,
		})
		d.include(s, b, SourceFuzzy, title, score)
	}

	for _, title := range unmatchedExcludes {
		b, score := d.scorer.FindBestMatch(title, blocks, d.policy.MatchThreshold)
		if b == nil {
			d.unmatched(s, title, score)
			continue
		}

		d.sink.Report(diagnostic.Diagnostic{
			Code:    diagnostic.CodeFuzzyExclude,
			Message: "fuzzy matched exclude",
			Title:   title,
			Block:   b.Title,
			Score:   score,
		})
		d.exclude(s, b, SourceFuzzy, title, score)
	}

	if len(s.dec.ToActivate) == 0 && allInactive(blocks) {
		d.reviveInactive(s, rec, blocks)
	}

	return s.dec
}

// reviveInactive handles a document with every block hidden and nothing
// staged: includes are re-matched leniently, and failing that the leading
// blocks are shown.
func (d *Decider) reviveInactive(s *stager, rec recommend.Recommendation, blocks []*block.Block) {
	d.sink.Report(diagnostic.Diagnostic{
		Severity: diagnostic.SeverityWarning,
		Code:     diagnostic.CodeAllInactive,
		Message:  "all projects are inactive, re-matching recommendations leniently",
	})

	for _, title := range rec.Include {
		b, score := d.scorer.FindBestMatch(title, blocks, d.policy.LenientThreshold)
		if b != nil && s.activate(b, SourceLenient, title, score) {
			d.sink.Report(diagnostic.Diagnostic{
				Code:    diagnostic.CodeFuzzyInclude,
				Message: "lenient match for include",
				Title:   title,
				Block:   b.Title,
				Score:   score,
			})
		}
	}

	if len(s.dec.ToActivate) > 0 || len(rec.Include) == 0 {
		return
	}

	d.sink.Report(diagnostic.Diagnostic{
		Severity: diagnostic.SeverityWarning,
		Code:     diagnostic.CodeLastResort,
		Message:  fmt.Sprintf("no recommendation matched, activating the first %d blocks", d.policy.FallbackCount),
	})

	n := 0
	for _, b := range blocks {
		if n >= d.policy.FallbackCount {
			break
		}

		if b == nil {
			continue
		}

		n++
		s.activate(b, SourceFallback, "", 0)
	}
}

// include claims b and stages it for activation if it is inactive. A block
// an exact exclude already staged for deactivation stays excluded.
func (d *Decider) include(s *stager, b *block.Block, src Source, title string, score float64) {
	if s.staged[b] && b.Active {
		d.conflict(s, b, title, score, "include ignored, block is already excluded")
		return
	}

	s.claimed[b] = true

	if b.Active {
		s.dec.Satisfied = append(s.dec.Satisfied, title)
		return
	}

	s.activate(b, src, title, score)
}

// exclude stages b for deactivation unless an include already claimed it.
func (d *Decider) exclude(s *stager, b *block.Block, src Source, title string, score float64) {
	if s.claimed[b] {
		d.conflict(s, b, title, score, "exclude ignored, block is also included")
		return
	}

	if !b.Active {
		s.dec.Satisfied = append(s.dec.Satisfied, title)
		return
	}

	s.deactivate(b, src, title, score)
}

func (d *Decider) conflict(s *stager, b *block.Block, title string, score float64, msg string) {
	s.dec.Conflicts = append(s.dec.Conflicts, title)
	d.sink.Report(diagnostic.Diagnostic{
		Code:    diagnostic.CodeConflict,
		Message: msg,
		Title:   title,
		Block:   b.Title,
		Score:   score,
	})
}

func (d *Decider) unmatched(s *stager, title string, score float64) {
	s.dec.Unmatched = append(s.dec.Unmatched, title)
	d.sink.Report(diagnostic.Diagnostic{
		Code:    diagnostic.CodeNoMatch,
		Message: fmt.Sprintf("no block matched (best score %.2f)", score),
		Title:   title,
		Score:   score,
	})
}

func allInactive(blocks []*block.Block) bool {
	seen := false

	for _, b := range blocks {
		if b == nil {
			continue
		}

		if b.Active {
			return false
		}

		seen = true
	}

	return seen
}
