package match

import (
	"sort"
	"strings"

	"project-chooser/internal/block"
)

// Scoring policy defaults.
const (
	// DefaultThreshold is the minimum score for accepting a match.
	DefaultThreshold = 0.7
	// DefaultCoverageCap bounds the score token coverage alone can reach.
	DefaultCoverageCap = 0.9
	// DefaultContainmentBoost is the score given when one normalized title
	// contains the other.
	DefaultContainmentBoost = 0.85
	// DefaultAmbiguityGap is the score difference that marks ambiguity.
	DefaultAmbiguityGap = 0.1
)

// Scorer combines character-level and token-level signals into one score.
type Scorer struct {
	CoverageCap      float64
	ContainmentBoost float64
}

// DefaultScorer returns a Scorer with the default policy.
func DefaultScorer() Scorer {
	return Scorer{
		CoverageCap:      DefaultCoverageCap,
		ContainmentBoost: DefaultContainmentBoost,
	}
}

// Score is the breakdown of one title comparison.
type Score struct {
	Ratio     float64 // Sequence ratio of the normalized titles (0-1)
	Coverage  float64 // Share of query tokens found in the candidate (0-1)
	Contained bool    // One normalized title contains the other

	// Total is the final score used for ranking.
	Total float64
}

// query holds the per-title values computed once before scoring candidates.
type query struct {
	normalized string
	tokens     map[string]struct{}
}

func newQuery(title string) query {
	return query{
		normalized: NormalizeTitle(title),
		tokens:     TokenSet(title),
	}
}

// Score compares a free-text title against a candidate title.
func (s Scorer) Score(title, candidate string) Score {
	return s.score(newQuery(title), candidate)
}

func (s Scorer) score(q query, candidate string) Score {
	normCand := NormalizeTitle(candidate)

	var sc Score

	sc.Ratio = SequenceRatio(q.normalized, normCand)
	sc.Total = sc.Ratio

	if len(q.tokens) > 0 {
		sc.Coverage = TokenCoverage(q.tokens, TokenSet(candidate))
		sc.Total = max(sc.Total, min(sc.Coverage, s.CoverageCap))
	}

	// An empty side is a substring of anything; only non-empty titles count.
	if q.normalized != "" && normCand != "" &&
		(strings.Contains(normCand, q.normalized) || strings.Contains(q.normalized, normCand)) {
		sc.Contained = true
		sc.Total = max(sc.Total, s.ContainmentBoost)
	}

	return sc
}

// Candidate represents a block a free-text title may refer to.
type Candidate struct {
	Block *block.Block
	Score Score

	// Index is the position of Block in the input list.
	Index int

	// Metadata for debugging/explanation
	NormalizedTitle     string
	NormalizedCandidate string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every block against title with the default scorer.
// Returns candidates sorted by score (descending).
func RankCandidates(title string, blocks []*block.Block) CandidateList {
	return DefaultScorer().RankCandidates(title, blocks)
}

// RankCandidates scores every block against title.
// Returns candidates sorted by score (descending); equal scores keep input order.
// Nil blocks are skipped.
func (s Scorer) RankCandidates(title string, blocks []*block.Block) CandidateList {
	return s.rank(newQuery(title), blocks)
}

func (s Scorer) rank(q query, blocks []*block.Block) CandidateList {
	candidates := make(CandidateList, 0, len(blocks))

	for i, b := range blocks {
		if b == nil {
			continue
		}

		candidates = append(candidates, Candidate{
			Block:               b,
			Score:               s.score(q, b.Title),
			Index:               i,
			NormalizedTitle:     q.normalized,
			NormalizedCandidate: NormalizeTitle(b.Title),
		})
	}

	sort.Stable(candidates)

	return candidates
}

// FindBestMatch returns the block title most likely refers to, using the
// default scorer, together with its score.
func FindBestMatch(title string, blocks []*block.Block, threshold float64) (*block.Block, float64) {
	return DefaultScorer().FindBestMatch(title, blocks, threshold)
}

// FindBestMatch returns the highest-scoring block and its score, or nil when
// no block scores above zero and at least threshold. The first block wins ties.
// A title without any word token never matches; a filler-only title can still
// match on token coverage.
func (s Scorer) FindBestMatch(title string, blocks []*block.Block, threshold float64) (*block.Block, float64) {
	q := newQuery(title)
	if q.normalized == "" && len(q.tokens) == 0 {
		return nil, 0
	}

	best := s.rank(q, blocks).Best()
	if best == nil || best.Score.Total <= 0 {
		return nil, 0
	}

	if best.Score.Total < threshold {
		return nil, best.Score.Total
	}

	return best.Block, best.Score.Total
}

// Match returns the block title refers to at DefaultThreshold.
func (s Scorer) Match(title string, blocks []*block.Block) (*block.Block, float64) {
	return s.FindBestMatch(title, blocks, DefaultThreshold)
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by total score descending.
func (c CandidateList) Less(i, j int) bool {
	return c[i].Score.Total > c[j].Score.Total
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	diff := c[0].Score.Total - c[1].Score.Total

	return diff < threshold
}

// AboveThreshold returns candidates with total score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score.Total >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
