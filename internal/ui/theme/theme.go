package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is one named color scheme. Two ship: "dark" (default) and
// "light"; the active one is persisted under the theme storage key.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Warning   color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

var dark = Palette{
	Primary:   lipgloss.Color("#8B5CF6"), // Vivid Purple
	Secondary: lipgloss.Color("#14B8A6"), // Teal
	Accent:    lipgloss.Color("#F97316"), // Orange
	Success:   lipgloss.Color("#22C55E"), // Green
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Warning:   lipgloss.Color("#EAB308"), // Amber
	Text:      lipgloss.Color("#F8FAFC"), // White
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	Bg:        lipgloss.Color("#0F172A"), // Deep Navy
	BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
	Border:    lipgloss.Color("#334155"), // Slate
}

var light = Palette{
	Primary:   lipgloss.Color("#6D28D9"),
	Secondary: lipgloss.Color("#0F766E"),
	Accent:    lipgloss.Color("#C2410C"),
	Success:   lipgloss.Color("#15803D"),
	Error:     lipgloss.Color("#BE123C"),
	Warning:   lipgloss.Color("#A16207"),
	Text:      lipgloss.Color("#0F172A"),
	TextDim:   lipgloss.Color("#64748B"),
	Bg:        lipgloss.Color("#F8FAFC"),
	BgCard:    lipgloss.Color("#E2E8F0"),
	Border:    lipgloss.Color("#CBD5E1"),
}

var (
	current     = dark
	currentName = "dark"
)

// Colors — read through these, not the palettes, so a theme switch takes
// effect everywhere on the next render.
var (
	Primary   = current.Primary
	Secondary = current.Secondary
	Accent    = current.Accent
	Success   = current.Success
	Error     = current.Error
	Warning   = current.Warning
	Text      = current.Text
	TextDim   = current.TextDim
	Bg        = current.Bg
	BgCard    = current.BgCard
	Border    = current.Border
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
	Marked     lipgloss.Style
	Notice     lipgloss.Style
)

func init() {
	rebuild()
}

// Name returns the active palette name ("dark" or "light").
func Name() string {
	return currentName
}

// Apply activates the named palette. Unknown names fall back to dark.
func Apply(name string) {
	if name == "light" {
		current, currentName = light, "light"
	} else {
		current, currentName = dark, "dark"
	}
	rebuild()
}

// Toggle switches between dark and light and returns the new name.
func Toggle() string {
	if currentName == "dark" {
		Apply("light")
	} else {
		Apply("dark")
	}
	return currentName
}

func rebuild() {
	Primary = current.Primary
	Secondary = current.Secondary
	Accent = current.Accent
	Success = current.Success
	Error = current.Error
	Warning = current.Warning
	Text = current.Text
	TextDim = current.TextDim
	Bg = current.Bg
	BgCard = current.BgCard
	Border = current.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Marked = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)

	Notice = lipgloss.NewStyle().
		Foreground(Accent).
		Italic(true)
}
