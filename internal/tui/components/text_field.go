package components

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/showcraft/internal/tui/styles"
)

// FieldKind selects the editor behind a TextField
type FieldKind int

const (
	FieldLine   FieldKind = iota // Single line
	FieldArea                    // Multi-line text
	FieldNumber                  // Single line, numeric content
	FieldDate                    // Single line, YYYY-MM-DD
)

// FieldChange is emitted when the user edits a field
type FieldChange struct {
	ID    string
	Value string
}

// TextField is a labelled input that reports edits as FieldChange values.
// It keeps only the text buffer; the record being edited lives elsewhere.
type TextField struct {
	ID      string
	Label   string
	kind    FieldKind
	invalid bool

	input textinput.Model
	area  textarea.Model
}

// NewTextField creates a new text field
func NewTextField(id, label, placeholder string, kind FieldKind) TextField {
	f := TextField{ID: id, Label: label, kind: kind}

	if kind == FieldArea {
		ta := textarea.New()
		ta.Placeholder = placeholder
		ta.ShowLineNumbers = false
		ta.Prompt = ""
		ta.SetHeight(4)
		ta.SetWidth(44)
		f.area = ta
		return f
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = 44
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	switch kind {
	case FieldNumber:
		ti.CharLimit = 8
	case FieldDate:
		ti.CharLimit = 10
	default:
		ti.CharLimit = 200
	}
	f.input = ti
	return f
}

// Focus gives the field keyboard focus
func (f *TextField) Focus() tea.Cmd {
	if f.kind == FieldArea {
		return f.area.Focus()
	}
	return f.input.Focus()
}

// Blur removes keyboard focus
func (f *TextField) Blur() {
	if f.kind == FieldArea {
		f.area.Blur()
		return
	}
	f.input.Blur()
}

// Focused returns whether the field has focus
func (f TextField) Focused() bool {
	if f.kind == FieldArea {
		return f.area.Focused()
	}
	return f.input.Focused()
}

// Value returns the current text
func (f TextField) Value() string {
	if f.kind == FieldArea {
		return f.area.Value()
	}
	return f.input.Value()
}

// SetValue replaces the text without emitting a change
func (f *TextField) SetValue(v string) {
	if f.kind == FieldArea {
		f.area.SetValue(v)
		return
	}
	f.input.SetValue(v)
}

// SetInvalid marks the field as failing validation
func (f *TextField) SetInvalid(invalid bool) {
	f.invalid = invalid
}

// Invalid returns whether the field is marked as failing validation
func (f TextField) Invalid() bool {
	return f.invalid
}

// Update forwards msg to the editor. The returned change is non-nil only
// when the text actually changed.
func (f TextField) Update(msg tea.Msg) (TextField, tea.Cmd, *FieldChange) {
	if !f.Focused() {
		return f, nil, nil
	}

	before := f.Value()
	var cmd tea.Cmd
	if f.kind == FieldArea {
		f.area, cmd = f.area.Update(msg)
	} else {
		f.input, cmd = f.input.Update(msg)
	}

	after := f.Value()
	if after == before {
		return f, cmd, nil
	}
	f.invalid = false
	return f, cmd, &FieldChange{ID: f.ID, Value: after}
}

// View renders the label and the bordered editor
func (f TextField) View() string {
	box := styles.BlurredField
	switch {
	case f.invalid:
		box = styles.InvalidField
	case f.Focused():
		box = styles.FocusedField
	}

	var body string
	if f.kind == FieldArea {
		body = f.area.View()
	} else {
		body = f.input.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.LabelStyle.Render(f.Label),
		box.Render(body),
	)
}
