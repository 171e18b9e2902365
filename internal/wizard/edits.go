package wizard

import (
	"slices"

	"github.com/mmcdole/showcraft/internal/domain"
)

// SeriesEdit is a single mutation of the series record.
// The set of edits is closed: only the types in this file implement it.
type SeriesEdit interface {
	seriesEdit()
}

type (
	SetTitle       string
	SetDescription string
	SetPoster      string
	SetReleaseDate string
	SetRating      float64
	ToggleGenre    string
)

func (SetTitle) seriesEdit()       {}
func (SetDescription) seriesEdit() {}
func (SetPoster) seriesEdit()      {}
func (SetReleaseDate) seriesEdit() {}
func (SetRating) seriesEdit()      {}
func (ToggleGenre) seriesEdit()    {}

// SeasonEdit is a single mutation of the season draft
type SeasonEdit interface {
	seasonEdit()
}

type (
	SetSeasonNumber int
	SetSeasonPoster string
	// SetEpisodes replaces the draft's episode list with whatever the
	// season editor last produced.
	SetEpisodes []domain.Episode
)

func (SetSeasonNumber) seasonEdit() {}
func (SetSeasonPoster) seasonEdit() {}
func (SetEpisodes) seasonEdit()     {}

// EditSeries applies e to the series record. The previous state's slices are
// never written to, so older snapshots stay valid.
func (s State) EditSeries(e SeriesEdit) State {
	series := s.Series
	switch e := e.(type) {
	case SetTitle:
		series.Title = string(e)
	case SetDescription:
		series.Description = string(e)
	case SetPoster:
		series.Poster = string(e)
	case SetReleaseDate:
		series.ReleaseDate = string(e)
	case SetRating:
		series.Rating = float64(e)
	case ToggleGenre:
		series.Genres = toggle(series.Genres, string(e))
	}
	s.Series = series
	return s
}

// toggle removes g if present, otherwise appends it. Always returns a new slice.
func toggle(genres []string, g string) []string {
	if i := slices.Index(genres, g); i >= 0 {
		return slices.Delete(slices.Clone(genres), i, i+1)
	}
	out := make([]string, len(genres), len(genres)+1)
	copy(out, genres)
	return append(out, g)
}

// AppendSeason adds a completed season to the end of the series
func (s State) AppendSeason(season domain.Season) State {
	seasons := make([]domain.Season, len(s.Series.Seasons), len(s.Series.Seasons)+1)
	copy(seasons, s.Series.Seasons)
	s.Series.Seasons = append(seasons, season.Clone())
	return s
}

// EditDraft applies e to the season draft
func (s State) EditDraft(e SeasonEdit) State {
	draft := s.Draft
	switch e := e.(type) {
	case SetSeasonNumber:
		draft.Number = int(e)
	case SetSeasonPoster:
		draft.Poster = string(e)
	case SetEpisodes:
		draft.Episodes = slices.Clone([]domain.Episode(e))
	}
	s.Draft = draft
	return s
}

// ResetDraft clears the draft's poster and episodes.
// The season number is kept as entered; choosing the next number is up to the user.
func (s State) ResetDraft() State {
	s.Draft = domain.Season{Number: s.Draft.Number}
	return s
}

// CommitDraft moves the draft into the series and starts a new draft
func (s State) CommitDraft() State {
	return s.AppendSeason(s.Draft).ResetDraft()
}
