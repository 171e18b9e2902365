package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/showcraft/internal/tui/styles"
)

// GenreToggle is emitted when the user toggles a genre chip
type GenreToggle struct {
	Genre string
}

// GenrePicker renders the genre palette as chips with a cursor.
// Selection is owned by the caller and passed to View.
type GenrePicker struct {
	genres []string

	cursor    int   // Index into visible()
	filtered  []int // Indices into genres; nil when not filtering
	query     string
	filtering bool
	focused   bool
	invalid   bool
}

// NewGenrePicker creates a picker over genres
func NewGenrePicker(genres []string) GenrePicker {
	return GenrePicker{genres: genres}
}

func (p *GenrePicker) Focus()                  { p.focused = true }
func (p GenrePicker) Focused() bool            { return p.focused }
func (p GenrePicker) IsFiltering() bool        { return p.filtering }
func (p *GenrePicker) SetInvalid(invalid bool) { p.invalid = invalid }

// Blur removes focus and leaves filter input mode
func (p *GenrePicker) Blur() {
	p.focused = false
	p.filtering = false
}

// Current returns the genre under the cursor, or "" if nothing is visible
func (p GenrePicker) Current() string {
	vis := p.visible()
	if p.cursor < 0 || p.cursor >= len(vis) {
		return ""
	}
	return p.genres[vis[p.cursor]]
}

// visible returns the indices of genres that pass the filter
func (p GenrePicker) visible() []int {
	if p.filtered != nil {
		return p.filtered
	}
	all := make([]int, len(p.genres))
	for i := range all {
		all[i] = i
	}
	return all
}

func (p *GenrePicker) applyFilter() {
	if p.query == "" {
		p.filtered = nil
		p.cursor = 0
		return
	}

	lower := make([]string, len(p.genres))
	for i, g := range p.genres {
		lower[i] = strings.ToLower(g)
	}
	matches := fuzzy.Find(strings.ToLower(p.query), lower)

	p.filtered = make([]int, len(matches))
	for i, match := range matches {
		p.filtered[i] = match.Index
	}
	p.cursor = 0
}

// ClearFilter drops the filter and shows every genre again
func (p *GenrePicker) ClearFilter() {
	p.query = ""
	p.filtering = false
	p.applyFilter()
}

// Update handles a key while focused. The returned toggle is non-nil when
// the user asked to flip a genre.
func (p GenrePicker) Update(msg tea.KeyMsg) (GenrePicker, *GenreToggle) {
	if !p.focused {
		return p, nil
	}

	if p.filtering {
		switch {
		case key.Matches(msg, GenrePickerKeys.Escape):
			p.ClearFilter()
		case key.Matches(msg, GenrePickerKeys.Accept):
			p.filtering = false
		case msg.Type == tea.KeyBackspace:
			if r := []rune(p.query); len(r) > 0 {
				p.query = string(r[:len(r)-1])
				p.applyFilter()
			}
		case msg.Type == tea.KeyRunes:
			p.query += string(msg.Runes)
			p.applyFilter()
		}
		return p, nil
	}

	switch {
	case key.Matches(msg, GenrePickerKeys.Left):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, GenrePickerKeys.Right):
		if p.cursor < len(p.visible())-1 {
			p.cursor++
		}
	case key.Matches(msg, GenrePickerKeys.Toggle):
		if g := p.Current(); g != "" {
			return p, &GenreToggle{Genre: g}
		}
	case key.Matches(msg, GenrePickerKeys.Filter):
		p.filtering = true
	case key.Matches(msg, GenrePickerKeys.Escape):
		p.ClearFilter()
	}
	return p, nil
}

// View renders the chips; selected genres are highlighted
func (p GenrePicker) View(selected func(string) bool) string {
	label := "Choose genre(s)"
	if p.filtering || p.query != "" {
		label += "  " + styles.AccentStyle.Render("/"+p.query)
	}

	vis := p.visible()
	chips := make([]string, 0, len(vis))
	for i, idx := range vis {
		g := p.genres[idx]
		style := styles.ChipStyle
		if selected(g) {
			style = styles.ChipSelectedStyle
		}
		if p.focused && i == p.cursor {
			style = styles.ChipCursorStyle
			if selected(g) {
				style = styles.ChipSelectedStyle.Underline(true)
			}
		}
		chips = append(chips, style.Render(g))
	}
	if len(chips) == 0 {
		chips = append(chips, styles.DimStyle.Render("no matching genre"))
	}

	box := styles.BlurredField
	switch {
	case p.invalid:
		box = styles.InvalidField
	case p.focused:
		box = styles.FocusedField
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.LabelStyle.Render(label),
		box.Render(lipgloss.JoinHorizontal(lipgloss.Top, chips...)),
	)
}
