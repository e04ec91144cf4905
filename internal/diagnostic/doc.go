// Package diagnostic provides the sink the decision coordinator reports to,
// plus structured "why this was staged" explanations.
//
// Key capabilities:
//   - Recommendation summaries
//   - Fuzzy match reports with the matched block and score
//   - Degenerate-state and last-resort guard notices
//   - In-memory capture for tests, zerolog output for the CLI
package diagnostic
