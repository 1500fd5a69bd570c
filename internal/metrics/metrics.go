// Package metrics records analysis outcomes.
package metrics

import "time"

// Outcome classifies a finished analysis.
type Outcome string

const (
	OutcomeFound     Outcome = "found"
	OutcomeNoOverlap Outcome = "no_overlap"
	OutcomeInvalid   Outcome = "invalid"
	OutcomeReadError Outcome = "read_error"
)

// Recorder receives one observation per analysis.
type Recorder interface {
	// ObserveAnalysis records an analysis of the given kind ("longest", "rank"),
	// its outcome, how many records were parsed, and how long it took.
	ObserveAnalysis(kind string, outcome Outcome, records int, elapsed time.Duration)
}

// Nop discards all observations.
type Nop struct{}

var _ Recorder = Nop{}

// ObserveAnalysis does nothing.
func (Nop) ObserveAnalysis(string, Outcome, int, time.Duration) {}
