package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/showcraft/internal/tui/components"
	"github.com/mmcdole/showcraft/internal/tui/styles"
	"github.com/mmcdole/showcraft/internal/wizard"
)

// View renders the whole form
func (m Model) View() string {
	sections := []string{
		styles.TitleStyle.Render("Create series"),
		m.renderSteps(),
	}
	if banner := m.renderBanner(); banner != "" {
		sections = append(sections, banner)
	}

	sections = append(sections, "")
	if m.Form.Step == wizard.StepSeries {
		sections = append(sections, m.renderSeriesForm())
	} else {
		preview := components.NewInspector()
		preview.SetSeries(m.Form.Series)
		preview.SetWidth(m.formWidth())
		sections = append(sections, preview.View(), "", m.seasons.View())
	}
	sections = append(sections, "", m.renderButton(), "", m.renderHelp())

	return m.place(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderSteps renders the two-item step indicator
func (m Model) renderSteps() string {
	var parts []string
	for i, step := range []wizard.Step{wizard.StepSeries, wizard.StepSeason} {
		style := styles.StepInactiveStyle
		if m.Form.Step == step {
			style = styles.StepActiveStyle
		}
		parts = append(parts, style.Render(strconv.Itoa(i+1)+" "+step.String()))
	}
	return strings.Join(parts, styles.DimStyle.Render(" › "))
}

// renderBanner renders at most one of: spinner, error or success
func (m Model) renderBanner() string {
	status := m.Form.Status
	switch status.Phase {
	case wizard.PhaseLoading:
		return RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Posting series...")
	case wizard.PhaseError:
		return styles.ErrorBanner.Render(status.Message)
	case wizard.PhaseSuccess:
		payload, _ := status.Success()
		return styles.SuccessBanner.Render("Series posted: " + payload.Summary())
	default:
		return ""
	}
}

func (m Model) renderSeriesForm() string {
	rows := []string{
		m.fields[focusTitle].View(),
		m.fields[focusDescription].View(),
		m.fields[focusPoster].View(),
		m.genres.View(m.Form.Series.HasGenre),
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.fields[focusReleaseDate].View(), " ", m.fields[focusRating].View(),
		),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderButton renders the Next or Post control; it is disabled while loading
func (m Model) renderButton() string {
	label, focused := "Next", m.focus == focusNextButton
	if m.Form.Step == wizard.StepSeason {
		label, focused = "Post", m.focus == focusPostButton
	}

	switch {
	case m.Form.Status.Loading():
		return styles.ButtonDisabledStyle.Render("Loading...")
	case focused:
		return styles.ButtonFocusedStyle.Render(label)
	default:
		return styles.ButtonStyle.Render(label)
	}
}

// renderHelp renders the key hints for the current step
func (m Model) renderHelp() string {
	bindings := []key.Binding{Keys.Next, Keys.Prev}
	if m.Form.Step == wizard.StepSeries {
		if m.focus == focusGenres {
			bindings = append(bindings, components.GenrePickerKeys.Toggle, components.GenrePickerKeys.Filter)
		} else {
			bindings = append(bindings, Keys.Confirm)
		}
	} else {
		bindings = append(bindings,
			components.SeasonEditorKeys.AddEpisode,
			components.SeasonEditorKeys.RemoveEpisode,
			components.SeasonEditorKeys.AddSeason,
			Keys.Submit,
			Keys.Back,
		)
	}
	bindings = append(bindings, Keys.Quit)

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.HelpKeyStyle.Render(h.Key)+" "+styles.HelpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

// RenderSpinner renders a loading spinner
func RenderSpinner(frame int) string {
	return styles.SpinnerStyle.Render(styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])
}
