package components

import "github.com/charmbracelet/bubbles/key"

// GenrePickerKeyMap defines key bindings for the genre picker
type GenrePickerKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Filter key.Binding
	Accept key.Binding
	Escape key.Binding
}

// DefaultGenrePickerKeyMap returns the default genre picker key bindings
func DefaultGenrePickerKeyMap() GenrePickerKeyMap {
	return GenrePickerKeyMap{
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "prev genre"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next genre"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept filter"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
	}
}

// SeasonEditorKeyMap defines key bindings for the season editor
type SeasonEditorKeyMap struct {
	AddEpisode    key.Binding
	RemoveEpisode key.Binding
	AddSeason     key.Binding
}

// DefaultSeasonEditorKeyMap returns the default season editor key bindings
func DefaultSeasonEditorKeyMap() SeasonEditorKeyMap {
	return SeasonEditorKeyMap{
		AddEpisode: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add episode"),
		),
		RemoveEpisode: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("C-x", "remove last episode"),
		),
		AddSeason: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("C-a", "add season"),
		),
	}
}

// Package-level key map instances
var (
	GenrePickerKeys  = DefaultGenrePickerKeyMap()
	SeasonEditorKeys = DefaultSeasonEditorKeyMap()
)
