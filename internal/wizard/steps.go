package wizard

import (
	"fmt"
	"math"

	"github.com/mmcdole/showcraft/internal/domain"
)

// Field names a required series field
type Field int

const (
	FieldTitle Field = iota
	FieldDescription
	FieldPoster
	FieldGenres
	FieldReleaseDate
	FieldRating
)

// String returns the form label for the field
func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldDescription:
		return "Description"
	case FieldPoster:
		return "Poster url"
	case FieldGenres:
		return "Genre"
	case FieldReleaseDate:
		return "Release date"
	case FieldRating:
		return "Rating"
	default:
		return "Unknown"
	}
}

// Missing returns the required fields that are empty, in form order
func Missing(series domain.Series) []Field {
	var missing []Field
	if series.Title == "" {
		missing = append(missing, FieldTitle)
	}
	if series.Description == "" {
		missing = append(missing, FieldDescription)
	}
	if series.Poster == "" {
		missing = append(missing, FieldPoster)
	}
	if len(series.Genres) == 0 {
		missing = append(missing, FieldGenres)
	}
	if series.ReleaseDate == "" {
		missing = append(missing, FieldReleaseDate)
	}
	if series.Rating == 0 || math.IsNaN(series.Rating) || math.IsInf(series.Rating, 0) {
		missing = append(missing, FieldRating)
	}
	return missing
}

// Advance moves from the series step to the season step if every required
// field is filled. On failure the step is unchanged and the banner shows
// MsgRequiredFields; the returned error wraps domain.ErrValidation.
func (s State) Advance() (State, error) {
	if s.Status.Loading() {
		return s, ErrSubmitting
	}
	if missing := Missing(s.Series); len(missing) > 0 {
		s.Status = failed(domain.MsgRequiredFields)
		return s, fmt.Errorf("%w: %v", domain.ErrValidation, missing)
	}
	s.Step = StepSeason
	if s.Status.Phase == PhaseError {
		s.Status = idle()
	}
	return s, nil
}

// JumpToSeries returns to the series step without validating anything
func (s State) JumpToSeries() State {
	s.Step = StepSeries
	return s
}
