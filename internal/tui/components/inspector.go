package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/showcraft/internal/domain"
	"github.com/mmcdole/showcraft/internal/tui/styles"
)

// Layout constants for inspector
const (
	InspectorMinWidth         = 24
	InspectorDescriptionLines = 3
)

// Inspector shows a read-only summary of the series being built
type Inspector struct {
	series domain.Series
	width  int
}

// NewInspector creates a new inspector component
func NewInspector() Inspector {
	return Inspector{}
}

// SetSeries sets the record to display
func (i *Inspector) SetSeries(series domain.Series) {
	i.series = series
}

// SetWidth sets the rendered width including the border; 0 renders at natural width
func (i *Inspector) SetWidth(width int) {
	i.width = width
}

// View renders the component
func (i Inspector) View() string {
	style := styles.BlurredField

	contentWidth := 60
	if i.width > 0 {
		frameW, _ := style.GetFrameSize()
		contentWidth = max(i.width-frameW, InspectorMinWidth)
		style = style.Width(contentWidth + style.GetHorizontalPadding())
	}

	s := i.series
	var lines []string

	title := s.Title
	if title == "" {
		title = "Untitled series"
	}
	lines = append(lines, styles.TitleStyle.Render(styles.Truncate(title, contentWidth)))

	// Meta line: Release date · Rating
	var meta []string
	if s.ReleaseDate != "" {
		meta = append(meta, styles.DimStyle.Render(s.ReleaseDate))
	}
	if s.Rating != 0 {
		meta = append(meta, ratingStyle(s.Rating).Render(fmt.Sprintf("★ %.1f", s.Rating)))
	}
	if len(meta) > 0 {
		lines = append(lines, strings.Join(meta, styles.DimStyle.Render(" · ")))
	}

	if len(s.Genres) > 0 {
		lines = append(lines, styles.AccentStyle.Render(styles.Truncate(strings.Join(s.Genres, ", "), contentWidth)))
	}

	if s.Description != "" {
		desc := splitLines(wordWrap(s.Description, contentWidth))
		if len(desc) > InspectorDescriptionLines {
			desc = desc[:InspectorDescriptionLines]
			desc[len(desc)-1] = styles.Truncate(desc[len(desc)-1]+"...", contentWidth)
		}
		lines = append(lines, styles.LabelStyle.Render(strings.Join(desc, "\n")))
	}

	lines = append(lines, styles.DimStyle.Render(fmt.Sprintf("%d Seasons · %d Episodes",
		len(s.Seasons), s.EpisodeCount())))

	return style.Render(strings.Join(lines, "\n"))
}

func ratingStyle(rating float64) lipgloss.Style {
	switch {
	case rating >= 7:
		return lipgloss.NewStyle().Foreground(styles.Green)
	case rating >= 5:
		return lipgloss.NewStyle().Foreground(styles.Amber)
	default:
		return lipgloss.NewStyle().Foreground(styles.Red)
	}
}

// splitLines splits text on newlines, returning nil for empty input
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// wordWrap wraps text at word boundaries to fit width. Existing newlines are kept.
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	for p, paragraph := range strings.Split(text, "\n") {
		if p > 0 {
			result.WriteString("\n")
		}
		lineLen := 0
		for _, word := range strings.Fields(paragraph) {
			wordLen := len([]rune(word))
			if lineLen > 0 && lineLen+1+wordLen > width {
				result.WriteString("\n")
				lineLen = 0
			}
			if lineLen > 0 {
				result.WriteString(" ")
				lineLen++
			}
			result.WriteString(word)
			lineLen += wordLen
		}
	}
	return result.String()
}
