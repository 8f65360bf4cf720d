package metrics

import "time"

// Outcome enumerates validation run outcomes for counters.
type Outcome string

const (
	OutcomeClean    Outcome = "clean"
	OutcomeWarnings Outcome = "warnings"
	OutcomeErrors   Outcome = "errors"
	OutcomeFailed   Outcome = "failed" // configuration could not be loaded
)

// Recorder defines observability hooks for validation and render runs.
type Recorder interface {
	ObserveValidationDuration(d time.Duration)
	IncRun(outcome Outcome)
	IncIssue(rule, severity string)
	SetPages(n int)
	IncRender(success bool)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveValidationDuration(time.Duration) {}
func (NoopRecorder) IncRun(Outcome)                          {}
func (NoopRecorder) IncIssue(string, string)                 {}
func (NoopRecorder) SetPages(int)                            {}
func (NoopRecorder) IncRender(bool)                          {}
