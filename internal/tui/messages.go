package tui

import "github.com/mmcdole/showcraft/internal/domain"

// Message types for the TUI

// SubmitResultMsg carries the outcome of a finalize run
type SubmitResultMsg struct {
	Payload domain.Series
	Err     error
}

// TickMsg advances the spinner while a submission is in flight
type TickMsg struct{}
