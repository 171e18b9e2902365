package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrValidation indicates the required-field gate rejected the series
	ErrValidation = errors.New("series is missing required fields")

	// ErrSubmission indicates the finalize step failed
	ErrSubmission = errors.New("series submission failed")

	// ErrSeriesNotFound indicates the requested catalog entry does not exist
	ErrSeriesNotFound = errors.New("series not found")
)

// User-facing messages shown in the form banner. They are static on purpose:
// no per-field or backend detail reaches the banner.
const (
	MsgRequiredFields = "Please fill in all required fields."
	MsgSubmitFailed   = "An error occurred. Please try again."
)
