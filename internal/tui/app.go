package tui

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/showcraft/internal/config"
	"github.com/mmcdole/showcraft/internal/domain"
	"github.com/mmcdole/showcraft/internal/tui/components"
	"github.com/mmcdole/showcraft/internal/wizard"
)

// Focus positions on the series step, in tab order
const (
	focusTitle = iota
	focusDescription
	focusPoster
	focusGenres
	focusReleaseDate
	focusRating
	focusNextButton
	seriesFocusCount
)

// Focus positions on the season step
const (
	focusSeasonEditor = iota
	focusPostButton
)

// Model is the main Bubble Tea model for the application
type Model struct {
	// Form state; every change goes through a wizard transition
	Form wizard.State

	// Dimensions
	Width  int
	Height int

	SpinnerFrame int

	// UI Components
	fields  [focusRating + 1]components.TextField // Indexed by focus position; the genres slot is unused
	genres  components.GenrePicker
	seasons components.SeasonEditor
	focus   int

	finalizer domain.Finalizer
	timeout   time.Duration
	logger    *slog.Logger
}

// NewModel creates a new application model
func NewModel(finalizer domain.Finalizer, cfg *config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	genres := domain.DefaultGenres
	timeout := 30 * time.Second
	if cfg != nil {
		if len(cfg.UI.Genres) > 0 {
			genres = cfg.UI.Genres
		}
		if cfg.Submit.Timeout > 0 {
			timeout = cfg.Submit.Timeout
		}
	}

	m := Model{
		Form:      wizard.New(),
		genres:    components.NewGenrePicker(genres),
		seasons:   components.NewSeasonEditor(),
		finalizer: finalizer,
		timeout:   timeout,
		logger:    logger,
	}
	m.fields[focusTitle] = components.NewTextField("title", "Title", "The Chi", components.FieldLine)
	m.fields[focusDescription] = components.NewTextField("description", "Description", "What is the series about?", components.FieldArea)
	m.fields[focusPoster] = components.NewTextField("poster", "Poster url", "https://...", components.FieldLine)
	m.fields[focusReleaseDate] = components.NewTextField("releaseDate", "Release date", "YYYY-MM-DD", components.FieldDate)
	m.fields[focusRating] = components.NewTextField("rating", "Rating", "0-10", components.FieldNumber)

	m.fields[focusTitle].Focus()
	m.seasons.Sync(m.Form.Draft, m.Form.Series.Seasons)
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		if !m.Form.Status.Loading() {
			return m, nil
		}
		m.SpinnerFrame++
		return m, TickCmd(spinnerInterval)

	case SubmitResultMsg:
		m.Form = m.Form.CompleteSubmit(msg.Payload, msg.Err)
		if msg.Err != nil {
			// Shown to the user as a static banner; details only go to the log file
			m.logger.Debug("submit failed", "error", msg.Err)
			return m, nil
		}
		m.logger.Info("series submitted",
			"title", msg.Payload.Title,
			"seasons", len(msg.Payload.Seasons),
			"episodes", msg.Payload.EpisodeCount(),
		)
		return m, nil
	}

	// Cursor blinks and similar go to whatever has focus
	return m.updateFocused(msg)
}

// isTextFocus reports whether focus position i on the series step is a text field
func isTextFocus(i int) bool {
	return i >= focusTitle && i <= focusRating && i != focusGenres
}

// editFor maps a text field's new value to the series edit it stands for
func editFor(focus int, value string) wizard.SeriesEdit {
	switch focus {
	case focusTitle:
		return wizard.SetTitle(value)
	case focusDescription:
		return wizard.SetDescription(value)
	case focusPoster:
		return wizard.SetPoster(value)
	case focusReleaseDate:
		return wizard.SetReleaseDate(value)
	case focusRating:
		// Unparseable or non-finite input counts as no rating
		rating, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || math.IsNaN(rating) || math.IsInf(rating, 0) {
			rating = 0
		}
		return wizard.SetRating(rating)
	default:
		return nil
	}
}

// focusFor returns the focus position of a required field
func focusFor(f wizard.Field) int {
	switch f {
	case wizard.FieldTitle:
		return focusTitle
	case wizard.FieldDescription:
		return focusDescription
	case wizard.FieldPoster:
		return focusPoster
	case wizard.FieldGenres:
		return focusGenres
	case wizard.FieldReleaseDate:
		return focusReleaseDate
	default:
		return focusRating
	}
}

// updateFocused forwards msg to the focused field on the current step
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Form.Step == wizard.StepSeason {
		if m.focus == focusSeasonEditor {
			return m.updateSeasonEditor(msg)
		}
		return m, nil
	}
	if isTextFocus(m.focus) {
		return m.updateSeriesField(msg)
	}
	return m, nil
}

// updateSeriesField feeds msg to the focused text field and applies any edit
func (m Model) updateSeriesField(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var change *components.FieldChange
	m.fields[m.focus], cmd, change = m.fields[m.focus].Update(msg)
	if change != nil {
		if edit := editFor(m.focus, change.Value); edit != nil {
			m.Form = m.Form.EditSeries(edit)
		}
	}
	return m, cmd
}

// updateSeasonEditor feeds msg to the season editor and applies its event
func (m Model) updateSeasonEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var event components.SeasonEvent
	m.seasons, cmd, event = m.seasons.Update(msg)

	switch event := event.(type) {
	case components.SeasonNumberChange:
		m.Form = m.Form.EditDraft(wizard.SetSeasonNumber(event.Number))
	case components.SeasonPosterChange:
		m.Form = m.Form.EditDraft(wizard.SetSeasonPoster(event.Poster))
	case components.EpisodesChange:
		m.Form = m.Form.EditDraft(wizard.SetEpisodes(event.Episodes))
	case components.AddSeasonRequest:
		m.Form = m.Form.AppendSeason(event.Season).ResetDraft()
		m.logger.Debug("season added",
			"number", event.Season.Number,
			"episodes", len(event.Season.Episodes),
		)
	}

	m.seasons.Sync(m.Form.Draft, m.Form.Series.Seasons)
	return m, cmd
}

// advance asks the form to move to the season step
func (m Model) advance() (tea.Model, tea.Cmd) {
	next, err := m.Form.Advance()
	if err != nil {
		m.Form = next
		for _, f := range wizard.Missing(m.Form.Series) {
			m.markInvalid(f)
		}
		m.logger.Debug("advance refused", "error", err)
		return m, nil
	}

	m.blur()
	m.Form = next
	m.focus = focusSeasonEditor
	m.seasons.Sync(m.Form.Draft, m.Form.Series.Seasons)
	return m, m.seasons.FocusFirst()
}

// jumpToSeries returns to the series step without validation
func (m Model) jumpToSeries() (tea.Model, tea.Cmd) {
	m.blur()
	m.Form = m.Form.JumpToSeries()
	m.focus = focusTitle
	return m, m.focusCurrent()
}

// submit starts a submission unless one is already in flight
func (m Model) submit() (tea.Model, tea.Cmd) {
	next, ok := m.Form.BeginSubmit()
	if !ok {
		return m, nil
	}
	m.Form = next
	m.SpinnerFrame = 0
	m.logger.Info("submitting series",
		"title", m.Form.Series.Title,
		"seasons", len(m.Form.Series.Seasons),
	)
	return m, tea.Batch(
		SubmitCmd(m.finalizer, m.Form.Series, m.timeout),
		TickCmd(spinnerInterval),
	)
}

func (m *Model) markInvalid(f wizard.Field) {
	i := focusFor(f)
	if i == focusGenres {
		m.genres.SetInvalid(true)
		return
	}
	m.fields[i].SetInvalid(true)
}
