package diagnostic

import (
	"fmt"
	"strings"
)

// Event codes reported by the decision coordinator.
const (
	CodeRecommendation = "recommendation"
	CodeFuzzyInclude   = "fuzzy_include"
	CodeFuzzyExclude   = "fuzzy_exclude"
	CodeNoMatch        = "no_match"
	CodeAllInactive    = "all_inactive"
	CodeLastResort     = "last_resort"
	CodeConflict       = "conflict"
)

// Sink receives diagnostic events. Implementations must not retain the
// Diagnostic beyond the call unless they copy it.
type Sink interface {
	Report(d Diagnostic)
}

// Diagnostics holds all diagnostic information from a decision.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Title is the recommendation title this relates to (if any).
	Title string
	// Block is the title of the block this relates to (if any).
	Block string
	// Score is the match score (if any).
	Score float64
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Report implements Sink.
func (d *Diagnostics) Report(diag Diagnostic) {
	if diag.Severity == SeverityWarning {
		d.Warnings = append(d.Warnings, diag)
		return
	}

	d.Infos = append(d.Infos, diag)
}

// Codes returns the codes of all diagnostics, warnings first.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, 0, len(d.Warnings)+len(d.Infos))
	for _, w := range d.Warnings {
		codes = append(codes, w.Code)
	}

	for _, i := range d.Infos {
		codes = append(codes, i.Code)
	}

	return codes
}

// Has reports whether any diagnostic carries the given code.
func (d *Diagnostics) Has(code string) bool {
	for _, c := range d.Codes() {
		if c == code {
			return true
		}
	}

	return false
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Title != "" {
		prefix = append(prefix, fmt.Sprintf("%q", d.Title))
	}

	if d.Block != "" {
		prefix = append(prefix, fmt.Sprintf("-> %q", d.Block))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

type nopSink struct{}

func (nopSink) Report(Diagnostic) {}

// Nop returns a Sink that discards everything.
func Nop() Sink {
	return nopSink{}
}

type teeSink []Sink

func (t teeSink) Report(d Diagnostic) {
	for _, s := range t {
		s.Report(d)
	}
}

// Tee returns a Sink that reports every diagnostic to each of sinks in order.
// Nil sinks are skipped.
func Tee(sinks ...Sink) Sink {
	t := make(teeSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			t = append(t, s)
		}
	}

	return t
}
