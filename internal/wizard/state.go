// Package wizard holds the step-wise form state for creating a series.
//
// Every operation is a pure transition: it takes a State by value and returns
// the next State. Nothing here touches the terminal, the clock or the network,
// so the whole workflow can be driven from tests.
package wizard

import "github.com/mmcdole/showcraft/internal/domain"

// Step is the active wizard page
type Step int

const (
	StepSeries Step = iota // Series metadata entry
	StepSeason             // Season entry
)

// String returns the step indicator label
func (s Step) String() string {
	switch s {
	case StepSeries:
		return "Series"
	case StepSeason:
		return "Seasons"
	default:
		return "Unknown"
	}
}

// Phase is the presentation state of the form
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseError
	PhaseSuccess
)

// String returns a human-readable representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseLoading:
		return "Loading"
	case PhaseError:
		return "Error"
	case PhaseSuccess:
		return "Success"
	default:
		return "Unknown"
	}
}

// Status is exactly one of idle, loading, error(message) or success(payload)
type Status struct {
	Phase   Phase
	Message string         // Set only in PhaseError
	Payload *domain.Series // Set only in PhaseSuccess
}

// Loading reports whether a submission is in flight
func (s Status) Loading() bool { return s.Phase == PhaseLoading }

// Error returns the banner message, or "" when not in the error phase
func (s Status) Error() string {
	if s.Phase != PhaseError {
		return ""
	}
	return s.Message
}

// Success returns the submitted payload when the last submission succeeded
func (s Status) Success() (domain.Series, bool) {
	if s.Phase != PhaseSuccess || s.Payload == nil {
		return domain.Series{}, false
	}
	return *s.Payload, true
}

func idle() Status { return Status{Phase: PhaseIdle} }

func failed(msg string) Status { return Status{Phase: PhaseError, Message: msg} }

func succeeded(payload domain.Series) Status {
	return Status{Phase: PhaseSuccess, Payload: &payload}
}

// State is everything one form session owns
type State struct {
	Step   Step
	Series domain.Series // Record under edit, including committed seasons
	Draft  domain.Season // Season being entered, not yet in Series.Seasons
	Status Status
}

// New returns the state of a fresh form session
func New() State {
	return State{
		Step:   StepSeries,
		Draft:  domain.Season{Number: 1},
		Status: idle(),
	}
}
