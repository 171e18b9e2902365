package tui

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	FormMaxWidth = 76 // Widest the form grows on large terminals
	FormPaddingX = 2
	FormPaddingY = 1
)

// formWidth returns the width the form is rendered at; 0 means the window
// size is unknown and the form renders at its natural width
func (m Model) formWidth() int {
	w := min(m.Width-2*FormPaddingX, FormMaxWidth)
	if w <= 0 {
		return 0
	}
	return w
}

// place pads the rendered form and clamps it to the window width
func (m Model) place(content string) string {
	style := lipgloss.NewStyle().Padding(FormPaddingY, FormPaddingX)
	if w := m.formWidth(); w > 0 {
		style = style.Width(w + 2*FormPaddingX)
	}
	return style.Render(content)
}
