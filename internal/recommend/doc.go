// Package recommend parses the model's project selection response into a
// Recommendation.
//
// Parsing is tolerant: missing fields become empty lists, a list delivered
// as a JSON-encoded string is decoded, and a Markdown code fence around
// the payload is stripped.
package recommend
