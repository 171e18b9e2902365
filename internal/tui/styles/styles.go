package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Amber      = lipgloss.Color("#E5A00D")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Black      = lipgloss.Color("#0F1110")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
)

// SpinnerFrames are cycled on TickMsg while a submission is in flight
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Amber)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Amber)
)

// Field borders
var (
	FocusedField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Amber).
			Padding(0, 1)

	BlurredField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	InvalidField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Padding(0, 1)
)

// Banners
var (
	SuccessBanner = lipgloss.NewStyle().
			Foreground(Black).
			Background(Green).
			Padding(0, 1)

	ErrorBanner = lipgloss.NewStyle().
			Foreground(White).
			Background(Red).
			Padding(0, 1)
)

// Step indicator
var (
	StepActiveStyle = lipgloss.NewStyle().
			Foreground(Black).
			Background(Amber).
			Bold(true).
			Padding(0, 1)

	StepInactiveStyle = lipgloss.NewStyle().
				Foreground(LightGray).
				Background(SlateLight).
				Padding(0, 1)
)

// Genre chips
var (
	ChipStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	ChipSelectedStyle = lipgloss.NewStyle().
				Foreground(Black).
				Background(White).
				Padding(0, 1)

	ChipCursorStyle = lipgloss.NewStyle().
			Foreground(Amber).
			Underline(true).
			Padding(0, 1)
)

// Buttons
var (
	ButtonStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(SlateLight).
			Padding(0, 3)

	ButtonFocusedStyle = lipgloss.NewStyle().
				Foreground(Black).
				Background(Amber).
				Bold(true).
				Padding(0, 3)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(DimGray).
				Background(SlateDark).
				Padding(0, 3)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Amber)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Truncate truncates a string to the given width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
