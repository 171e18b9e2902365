package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/showcraft/internal/tui/components"
	"github.com/mmcdole/showcraft/internal/wizard"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.Quit) {
		return m, tea.Quit
	}

	// Filter input in the genre picker takes every other key
	if m.Form.Step == wizard.StepSeries && m.focus == focusGenres && m.genres.IsFiltering() {
		m.genres, _ = m.genres.Update(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, Keys.Next):
		return m, m.moveFocus(1)

	case key.Matches(msg, Keys.Prev):
		return m, m.moveFocus(-1)

	case key.Matches(msg, Keys.Back):
		if m.Form.Step == wizard.StepSeason {
			return m.jumpToSeries()
		}
		return m, nil

	case key.Matches(msg, Keys.Submit):
		if m.Form.Step == wizard.StepSeason {
			return m.submit()
		}
		return m, nil
	}

	if m.Form.Step == wizard.StepSeries {
		return m.handleSeriesKey(msg)
	}
	return m.handleSeasonKey(msg)
}

func (m Model) handleSeriesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusNextButton:
		if key.Matches(msg, Keys.Confirm) && !m.Form.Status.Loading() {
			return m.advance()
		}
		return m, nil

	case focusGenres:
		var toggle *components.GenreToggle
		m.genres, toggle = m.genres.Update(msg)
		if toggle != nil {
			m.Form = m.Form.EditSeries(wizard.ToggleGenre(toggle.Genre))
			m.genres.SetInvalid(false)
		}
		return m, nil
	}

	// Enter on a single-line field moves on; the description keeps its newlines
	if key.Matches(msg, Keys.Confirm) && m.focus != focusDescription {
		return m, m.moveFocus(1)
	}
	return m.updateSeriesField(msg)
}

func (m Model) handleSeasonKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus == focusPostButton {
		if key.Matches(msg, Keys.Confirm) {
			return m.submit()
		}
		return m, nil
	}
	return m.updateSeasonEditor(msg)
}

// moveFocus moves focus by delta (+1 or -1) around the current step's ring
func (m *Model) moveFocus(delta int) tea.Cmd {
	if m.Form.Step == wizard.StepSeason {
		return m.moveSeasonFocus(delta)
	}

	m.blur()
	m.focus = (m.focus + delta + seriesFocusCount) % seriesFocusCount
	return m.focusCurrent()
}

// moveSeasonFocus walks the editor's own fields before reaching the Post button
func (m *Model) moveSeasonFocus(delta int) tea.Cmd {
	if m.focus == focusSeasonEditor {
		var cmd tea.Cmd
		var moved bool
		if delta > 0 {
			cmd, moved = m.seasons.FocusNext()
		} else {
			cmd, moved = m.seasons.FocusPrev()
		}
		if moved {
			return cmd
		}
		m.seasons.Blur()
		m.focus = focusPostButton
		return nil
	}

	m.focus = focusSeasonEditor
	if delta > 0 {
		return m.seasons.FocusFirst()
	}
	return m.seasons.FocusLast()
}

// focusCurrent gives focus to the component at m.focus on the series step
func (m *Model) focusCurrent() tea.Cmd {
	switch {
	case isTextFocus(m.focus):
		return m.fields[m.focus].Focus()
	case m.focus == focusGenres:
		m.genres.Focus()
	}
	return nil
}

// blur removes focus from whatever holds it
func (m *Model) blur() {
	if m.Form.Step == wizard.StepSeason {
		m.seasons.Blur()
		return
	}
	switch {
	case isTextFocus(m.focus):
		m.fields[m.focus].Blur()
	case m.focus == focusGenres:
		m.genres.Blur()
	}
}
