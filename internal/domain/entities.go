package domain

import (
	"fmt"
	"slices"
)

// DefaultGenres is the genre palette offered by the series form
var DefaultGenres = []string{
	"Action",
	"Comedy",
	"Drama",
	"Fantasy",
	"Horror",
	"Mystery",
	"Romance",
	"Thriller",
}

// Series is the top-level record authored by the creation workflow
type Series struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Poster      string   `json:"poster"`      // Poster image URL
	ReleaseDate string   `json:"releaseDate"` // YYYY-MM-DD as entered
	Rating      float64  `json:"rating"`      // 0 means unset
	Genres      []string `json:"genre"`       // Ordered set, no duplicates
	Cast        []string `json:"cast"`        // Carried through untouched
	Seasons     []Season `json:"seasons"`     // In commit order
}

// Clone returns a deep copy that shares no slices with s
func (s Series) Clone() Series {
	out := s
	out.Genres = slices.Clone(s.Genres)
	out.Cast = slices.Clone(s.Cast)
	if s.Seasons != nil {
		out.Seasons = make([]Season, len(s.Seasons))
		for i, season := range s.Seasons {
			out.Seasons[i] = season.Clone()
		}
	}
	return out
}

// HasGenre reports whether g is in the genre set
func (s Series) HasGenre(g string) bool {
	return slices.Contains(s.Genres, g)
}

// EpisodeCount returns the number of episodes across all committed seasons
func (s Series) EpisodeCount() int {
	n := 0
	for _, season := range s.Seasons {
		n += len(season.Episodes)
	}
	return n
}

// Summary returns a one-line description used in banners and listings
func (s Series) Summary() string {
	seasons := "1 Season"
	if len(s.Seasons) != 1 {
		seasons = fmt.Sprintf("%d Seasons", len(s.Seasons))
	}
	return fmt.Sprintf("%s · %s · %d Episodes", s.Title, seasons, s.EpisodeCount())
}

// Season is a single season of a series
type Season struct {
	Number   int       `json:"number"`
	Poster   string    `json:"poster"`
	Episodes []Episode `json:"episodes"`
}

// Clone returns a deep copy of the season
func (s Season) Clone() Season {
	out := s
	out.Episodes = slices.Clone(s.Episodes)
	return out
}

// DisplayTitle returns the display title for the season
func (s Season) DisplayTitle() string {
	if s.Number == 0 {
		return "Specials"
	}
	return fmt.Sprintf("Season %d", s.Number)
}

// Episode is owned by the season editor; the form core only carries it
type Episode struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Summary string `json:"summary,omitempty"`
}

// Code returns the formatted episode code (e.g., "S01E05")
func (e Episode) Code(season int) string {
	return fmt.Sprintf("S%02dE%02d", season, e.Number)
}
