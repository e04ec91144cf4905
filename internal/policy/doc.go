// Package policy holds the tunable thresholds of the project decision
// pipeline and loads them from YAML.
//
// Example policy file:
//
//	match_threshold: 0.5
//	lenient_threshold: 0.4
//	containment_boost: 0.85
//	coverage_cap: 0.9
//	fallback_count: 3
package policy
