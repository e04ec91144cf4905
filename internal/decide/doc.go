// Package decide reconciles a model's project recommendation against the
// project blocks of a document and returns the blocks to toggle.
//
// Decision pipeline:
//  1. Index blocks by exact title (last duplicate wins).
//  2. Resolve exact-title includes, then exact-title excludes.
//  3. Fuzzy-match the remaining titles at the operational threshold.
//  4. If nothing is staged for activation and every block is inactive,
//     re-match every include at the lenient threshold.
//  5. If that still stages nothing, activate the leading blocks.
//
// Exact matches resolve before fuzzy ones, and within each stage includes
// resolve before excludes; a block keeps the first resolution. Blocks are
// never mutated; the caller flips Active for the returned blocks.
package decide
