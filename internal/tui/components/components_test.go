package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/showcraft/internal/domain"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestTextFieldReportsChanges(t *testing.T) {
	for _, kind := range []FieldKind{FieldLine, FieldArea, FieldNumber, FieldDate} {
		f := NewTextField("title", "Title", "", kind)

		// Unfocused fields ignore input
		f, _, change := f.Update(runes("x"))
		assert.Nil(t, change)
		assert.Empty(t, f.Value())

		f.Focus()
		f.SetInvalid(true)
		f, _, change = f.Update(runes("Hi"))
		require.NotNil(t, change, "kind %d", kind)
		assert.Equal(t, FieldChange{ID: "title", Value: "Hi"}, *change)
		assert.False(t, f.Invalid(), "editing clears the invalid mark")

		// Cursor movement is not a change
		_, _, change = f.Update(keyOf(tea.KeyLeft))
		assert.Nil(t, change)
	}
}

func TestTextFieldSetValue(t *testing.T) {
	f := NewTextField("poster", "Poster url", "https://...", FieldLine)
	f.SetValue("http://x")
	assert.Equal(t, "http://x", f.Value())
	assert.False(t, f.Focused())
	assert.Contains(t, f.View(), "Poster url")
}

func TestGenrePickerNavigation(t *testing.T) {
	p := NewGenrePicker([]string{"Action", "Comedy", "Drama"})

	p, toggle := p.Update(keyOf(tea.KeySpace))
	assert.Nil(t, toggle, "unfocused picker ignores keys")

	p.Focus()
	assert.Equal(t, "Action", p.Current())

	p, _ = p.Update(keyOf(tea.KeyLeft))
	assert.Equal(t, "Action", p.Current(), "cursor stops at the first genre")

	for rep := 0; rep < 5; rep++ {
		p, _ = p.Update(runes("l"))
	}
	assert.Equal(t, "Drama", p.Current(), "cursor stops at the last genre")

	_, toggle = p.Update(keyOf(tea.KeySpace))
	require.NotNil(t, toggle)
	assert.Equal(t, "Drama", toggle.Genre)
}

func TestGenrePickerFilter(t *testing.T) {
	p := NewGenrePicker(domain.DefaultGenres)
	p.Focus()

	p, _ = p.Update(runes("/"))
	require.True(t, p.IsFiltering())
	p, _ = p.Update(runes("COM"))
	assert.Equal(t, "Comedy", p.Current(), "filter is case-insensitive")

	p, _ = p.Update(keyOf(tea.KeyBackspace))
	p, _ = p.Update(keyOf(tea.KeyBackspace))
	p, _ = p.Update(keyOf(tea.KeyBackspace))
	assert.Equal(t, "Action", p.Current(), "empty query shows every genre")

	p, _ = p.Update(runes("zzz"))
	assert.Empty(t, p.Current())
	assert.Contains(t, p.View(func(string) bool { return false }), "no matching genre")

	p, _ = p.Update(keyOf(tea.KeyEsc))
	assert.False(t, p.IsFiltering())
	assert.Equal(t, "Action", p.Current())
}

func TestGenrePickerBlurLeavesFilterMode(t *testing.T) {
	p := NewGenrePicker(domain.DefaultGenres)
	p.Focus()
	p, _ = p.Update(runes("/"))
	p.Blur()
	assert.False(t, p.IsFiltering())
	assert.False(t, p.Focused())
}

func focusedEditor(draft domain.Season) SeasonEditor {
	e := NewSeasonEditor()
	e.Sync(draft, nil)
	e.FocusFirst()
	return e
}

func TestSeasonEditorFocusRing(t *testing.T) {
	e := focusedEditor(domain.Season{Number: 1})
	assert.True(t, e.Focused())

	_, moved := e.FocusPrev()
	assert.False(t, moved, "already on the first field")

	_, moved = e.FocusNext()
	assert.True(t, moved)
	_, moved = e.FocusNext()
	assert.True(t, moved)
	_, moved = e.FocusNext()
	assert.False(t, moved, "already on the last field")

	e.Blur()
	assert.False(t, e.Focused())
	_, _, event := e.Update(runes("x"))
	assert.Nil(t, event)
}

func TestSeasonEditorEpisodes(t *testing.T) {
	e := focusedEditor(domain.Season{Number: 2})
	e.FocusLast()

	// Blank titles are not added
	e, _, event := e.Update(keyOf(tea.KeyEnter))
	assert.Nil(t, event)

	e, _, _ = e.Update(runes("Pilot"))
	e, _, event = e.Update(keyOf(tea.KeyEnter))
	require.IsType(t, EpisodesChange{}, event)
	episodes := event.(EpisodesChange).Episodes
	assert.Equal(t, []domain.Episode{{Number: 1, Title: "Pilot"}}, episodes)

	e.Sync(domain.Season{Number: 2, Episodes: episodes}, nil)
	assert.Contains(t, e.View(), "S02E01")

	_, _, event = e.Update(keyOf(tea.KeyCtrlX))
	require.IsType(t, EpisodesChange{}, event)
	assert.Empty(t, event.(EpisodesChange).Episodes)
}

func TestSeasonEditorAddSeason(t *testing.T) {
	e := focusedEditor(domain.Season{Number: 1})

	e, _, event := e.Update(keyOf(tea.KeyCtrlA))
	assert.Nil(t, event)
	assert.Contains(t, e.View(), "Add at least one episode")

	draft := domain.Season{Number: 1, Episodes: []domain.Episode{{Number: 1, Title: "Pilot"}}}
	e.Sync(draft, nil)
	e, _, event = e.Update(keyOf(tea.KeyCtrlA))
	require.IsType(t, AddSeasonRequest{}, event)
	assert.Equal(t, draft, event.(AddSeasonRequest).Season)
	assert.NotContains(t, e.View(), "Add at least one episode")
}

func TestSeasonEditorNumberAndPoster(t *testing.T) {
	e := focusedEditor(domain.Season{Number: 1})

	e, _, event := e.Update(runes("0"))
	require.IsType(t, SeasonNumberChange{}, event)
	assert.Equal(t, 10, event.(SeasonNumberChange).Number)

	e, _, event = e.Update(runes("-"))
	assert.Nil(t, event, "non-numeric input is not applied")

	e.FocusNext()
	_, _, event = e.Update(runes("http://s1"))
	require.IsType(t, SeasonPosterChange{}, event)
	assert.Equal(t, "http://s1", event.(SeasonPosterChange).Poster)
}

func TestSeasonEditorListsSeasons(t *testing.T) {
	e := NewSeasonEditor()
	e.Sync(domain.Season{Number: 3}, []domain.Season{
		{Number: 0, Episodes: []domain.Episode{{Number: 1, Title: "Holiday"}}},
		{Number: 1, Episodes: []domain.Episode{{Number: 1}, {Number: 2}}},
	})

	view := e.View()
	assert.Contains(t, view, "Added seasons (2)")
	assert.Contains(t, view, "Specials · 1 episode")
	assert.Contains(t, view, "Season 1 · 2 episodes")
}

func TestInspector(t *testing.T) {
	i := NewInspector()
	assert.Contains(t, i.View(), "Untitled series")

	i.SetSeries(domain.Series{
		Title:       "The Chi",
		Description: "A coming-of-age drama set on Chicago's South Side.",
		ReleaseDate: "2018-01-07",
		Rating:      8.5,
		Genres:      []string{"Drama", "Crime"},
		Seasons: []domain.Season{
			{Number: 1, Episodes: []domain.Episode{{Number: 1}, {Number: 2}}},
		},
	})
	i.SetWidth(40)

	view := i.View()
	assert.Contains(t, view, "The Chi")
	assert.Contains(t, view, "★ 8.5")
	assert.Contains(t, view, "Drama, Crime")
	assert.Contains(t, view, "1 Seasons · 2 Episodes")
}

func TestWordWrap(t *testing.T) {
	assert.Equal(t, "one two\nthree", wordWrap("one two three", 8))
	assert.Equal(t, "a\nb c", wordWrap("a\nb c", 10))
	assert.Equal(t, "keep", wordWrap("keep", 0))
	assert.Nil(t, splitLines(""))
}
