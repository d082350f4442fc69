package generate

import "palpite/internal/core/lotto"

// EventKind tags a Progress value
type EventKind string

// Progress event kinds, emitted in strict order: one started, zero or more
// step/attempt, then exactly one finished or failed. A cancelled run closes
// the stream with no terminal event at all
const (
	EventStarted  EventKind = "started"
	EventStep     EventKind = "step"
	EventAttempt  EventKind = "attempt"
	EventFinished EventKind = "finished"
	EventFailed   EventKind = "failed"
)

// StepKind names the informational phase transitions of a run
type StepKind string

// Step kinds
const (
	StepRandomStart    StepKind = "random_start"
	StepHeuristicStart StepKind = "heuristic_start"
	StepRandomFallback StepKind = "random_fallback"
)

// Reason categorizes a failed run
type Reason string

// Failure reasons
const (
	// ReasonNoHistory means a filter needed a reference draw and none exists
	ReasonNoHistory Reason = "no_history"

	// ReasonGeneric covers any run that produced nothing at all
	ReasonGeneric Reason = "generic"
)

// Progress is one event on the generation stream
type Progress struct {
	Event   EventKind       `json:"event"`
	Step    StepKind        `json:"step,omitempty"`
	Current int             `json:"current,omitempty"`
	Total   int             `json:"total"`
	Games   []lotto.Numbers `json:"games,omitempty"`
	Reason  Reason          `json:"reason,omitempty"`
}
