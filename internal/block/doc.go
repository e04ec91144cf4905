// Package block defines the project block record extracted from a resume
// document and loads block lists produced by the extractor.
//
// A Block carries a canonical title and its current active state. The
// remaining fields are extractor payload that the decision core passes
// through without inspecting.
package block
