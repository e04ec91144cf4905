// Package match provides title normalization, sequence-ratio similarity,
// token coverage scoring, and candidate ranking for project title matching.
//
// Key functions:
//   - NormalizeTitle: strips markup and filler words before comparison
//   - SequenceRatio: character-level similarity in [0,1]
//   - Scorer.Score: combines ratio, token coverage and containment
//   - RankCandidates / FindBestMatch: pick the block a free-text title refers to
package match
