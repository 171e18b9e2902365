package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmcdole/showcraft/internal/domain"
)

// ErrSubmitting is returned when the form is asked to act while a submission is in flight
var ErrSubmitting = errors.New("submission in progress")

// BeginSubmit clears both banners and enters the loading phase.
// It returns false, with s unchanged, when a submission is already in flight.
func (s State) BeginSubmit() (State, bool) {
	if s.Status.Loading() {
		return s, false
	}
	s.Status = idle()
	s.Status.Phase = PhaseLoading
	return s, true
}

// CompleteSubmit leaves the loading phase with exactly one outcome.
// A failed submission keeps no payload and leaves the form untouched so the
// user can edit and resubmit.
func (s State) CompleteSubmit(payload domain.Series, err error) State {
	if err != nil {
		s.Status = failed(domain.MsgSubmitFailed)
		return s
	}
	s.Status = succeeded(payload)
	return s
}

// Finalize runs f over a copy of series. A panic inside f is reported as an
// error wrapping domain.ErrSubmission so the caller always gets an outcome.
func Finalize(ctx context.Context, f domain.Finalizer, series domain.Series) (payload domain.Series, err error) {
	defer func() {
		if r := recover(); r != nil {
			payload = domain.Series{}
			err = fmt.Errorf("%w: finalizer panic: %v", domain.ErrSubmission, r)
		}
	}()

	payload, err = f.Finalize(ctx, series.Clone())
	if err != nil {
		return domain.Series{}, fmt.Errorf("%w: %w", domain.ErrSubmission, err)
	}
	return payload, nil
}

// Submit runs a whole submission synchronously: begin, finalize, complete.
// If a submission is already in flight s is returned unchanged.
func Submit(ctx context.Context, s State, f domain.Finalizer) State {
	s, ok := s.BeginSubmit()
	if !ok {
		return s
	}
	payload, err := Finalize(ctx, f, s.Series)
	return s.CompleteSubmit(payload, err)
}
