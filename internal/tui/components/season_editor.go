package components

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/showcraft/internal/domain"
	"github.com/mmcdole/showcraft/internal/tui/styles"
)

// SeasonEvent is emitted by the season editor for the form to apply
type SeasonEvent interface {
	seasonEvent()
}

// SeasonNumberChange reports an edited season number
type SeasonNumberChange struct{ Number int }

// SeasonPosterChange reports an edited season poster URL
type SeasonPosterChange struct{ Poster string }

// EpisodesChange carries the full episode list after an add or remove
type EpisodesChange struct{ Episodes []domain.Episode }

// AddSeasonRequest asks the form to commit a completed season
type AddSeasonRequest struct{ Season domain.Season }

func (SeasonNumberChange) seasonEvent() {}
func (SeasonPosterChange) seasonEvent() {}
func (EpisodesChange) seasonEvent()     {}
func (AddSeasonRequest) seasonEvent()   {}

const (
	seasonFocusNumber = iota
	seasonFocusPoster
	seasonFocusEpisode
	seasonFocusCount
)

// SeasonEditor edits one season draft and lists the seasons already added.
// It renders whatever draft it was last synced with and reports edits as
// SeasonEvents; it never changes the draft itself.
type SeasonEditor struct {
	number  TextField
	poster  TextField
	episode TextField
	focus   int
	focused bool
	hint    string

	draft   domain.Season
	seasons []domain.Season
}

// NewSeasonEditor creates a new season editor
func NewSeasonEditor() SeasonEditor {
	e := SeasonEditor{
		number:  NewTextField("number", "Season number", "1", FieldNumber),
		poster:  NewTextField("seasonPoster", "Season poster url", "https://...", FieldLine),
		episode: NewTextField("episode", "New episode title", "Pilot", FieldLine),
	}
	e.number.SetValue("1")
	return e
}

// Sync points the editor at the current draft and committed seasons
func (e *SeasonEditor) Sync(draft domain.Season, seasons []domain.Season) {
	e.draft = draft
	e.seasons = seasons
	if !e.number.Focused() {
		e.number.SetValue(strconv.Itoa(draft.Number))
		e.number.SetInvalid(false)
	}
	if !e.poster.Focused() {
		e.poster.SetValue(draft.Poster)
	}
}

func (e *SeasonEditor) field(i int) *TextField {
	switch i {
	case seasonFocusNumber:
		return &e.number
	case seasonFocusPoster:
		return &e.poster
	default:
		return &e.episode
	}
}

// Focus gives keyboard focus to the current field
func (e *SeasonEditor) Focus() tea.Cmd {
	e.focused = true
	return e.field(e.focus).Focus()
}

// Blur removes keyboard focus
func (e *SeasonEditor) Blur() {
	e.focused = false
	e.field(e.focus).Blur()
}

// Focused returns whether the editor has focus
func (e SeasonEditor) Focused() bool {
	return e.focused
}

// FocusFirst focuses the editor on its first field
func (e *SeasonEditor) FocusFirst() tea.Cmd {
	e.field(e.focus).Blur()
	e.focus = seasonFocusNumber
	return e.Focus()
}

// FocusLast focuses the editor on its last field
func (e *SeasonEditor) FocusLast() tea.Cmd {
	e.field(e.focus).Blur()
	e.focus = seasonFocusEpisode
	return e.Focus()
}

// FocusNext moves to the next field. It reports false, leaving focus where it
// is, when already on the last field.
func (e *SeasonEditor) FocusNext() (tea.Cmd, bool) {
	if e.focus == seasonFocusCount-1 {
		return nil, false
	}
	e.field(e.focus).Blur()
	e.focus++
	return e.field(e.focus).Focus(), true
}

// FocusPrev moves to the previous field. It reports false when already on
// the first field.
func (e *SeasonEditor) FocusPrev() (tea.Cmd, bool) {
	if e.focus == 0 {
		return nil, false
	}
	e.field(e.focus).Blur()
	e.focus--
	return e.field(e.focus).Focus(), true
}

// Update handles a message while focused. Non-key messages such as cursor
// blinks go to the focused field.
func (e SeasonEditor) Update(msg tea.Msg) (SeasonEditor, tea.Cmd, SeasonEvent) {
	if !e.focused {
		return e, nil, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	switch {
	case !isKey:
	case key.Matches(keyMsg, SeasonEditorKeys.AddSeason):
		if len(e.draft.Episodes) == 0 {
			e.hint = "Add at least one episode before adding the season."
			return e, nil, nil
		}
		e.hint = ""
		return e, nil, AddSeasonRequest{Season: e.draft.Clone()}

	case key.Matches(keyMsg, SeasonEditorKeys.RemoveEpisode):
		n := len(e.draft.Episodes)
		if n == 0 {
			return e, nil, nil
		}
		return e, nil, EpisodesChange{Episodes: slices.Clone(e.draft.Episodes[:n-1])}

	case e.focus == seasonFocusEpisode && key.Matches(keyMsg, SeasonEditorKeys.AddEpisode):
		title := strings.TrimSpace(e.episode.Value())
		if title == "" {
			return e, nil, nil
		}
		e.episode.SetValue("")
		e.hint = ""
		episodes := slices.Clone(e.draft.Episodes)
		episodes = append(episodes, domain.Episode{Number: len(episodes) + 1, Title: title})
		return e, nil, EpisodesChange{Episodes: episodes}
	}

	var cmd tea.Cmd
	var change *FieldChange
	switch e.focus {
	case seasonFocusNumber:
		e.number, cmd, change = e.number.Update(msg)
		if change == nil {
			return e, cmd, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(change.Value))
		if err != nil || n < 0 {
			e.number.SetInvalid(true)
			return e, cmd, nil
		}
		return e, cmd, SeasonNumberChange{Number: n}

	case seasonFocusPoster:
		e.poster, cmd, change = e.poster.Update(msg)
		if change == nil {
			return e, cmd, nil
		}
		return e, cmd, SeasonPosterChange{Poster: change.Value}

	default:
		e.episode, cmd, _ = e.episode.Update(msg)
		return e, cmd, nil
	}
}

// View renders the editor
func (e SeasonEditor) View() string {
	var lines []string

	lines = append(lines, styles.TitleStyle.Render(e.draft.DisplayTitle()))
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
		e.number.View(), " ", e.poster.View(),
	))

	lines = append(lines, styles.LabelStyle.Render("Episodes"))
	if len(e.draft.Episodes) == 0 {
		lines = append(lines, styles.DimStyle.Render("  no episodes yet"))
	}
	for _, ep := range e.draft.Episodes {
		lines = append(lines, fmt.Sprintf("  %s  %s",
			styles.AccentStyle.Render(ep.Code(e.draft.Number)),
			styles.Truncate(ep.Title, 40),
		))
	}
	lines = append(lines, e.episode.View())

	if e.hint != "" {
		lines = append(lines, styles.ErrorStyle.Render(e.hint))
	}

	lines = append(lines, "")
	lines = append(lines, styles.LabelStyle.Render(fmt.Sprintf("Added seasons (%d)", len(e.seasons))))
	for _, s := range e.seasons {
		episodes := "1 episode"
		if len(s.Episodes) != 1 {
			episodes = fmt.Sprintf("%d episodes", len(s.Episodes))
		}
		lines = append(lines, fmt.Sprintf("  %s · %s", s.DisplayTitle(), episodes))
	}

	return strings.Join(lines, "\n")
}
