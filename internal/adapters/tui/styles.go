package tui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the TUI.
var (
	ColorTeal   = lipgloss.Color("#2DD4BF")
	ColorViolet = lipgloss.Color("#A78BFA")
	ColorRose   = lipgloss.Color("#FB7185")
	ColorAmber  = lipgloss.Color("#FBBF24")
	ColorGray   = lipgloss.Color("#666666")
	ColorDim    = lipgloss.Color("#444444")
	ColorWhite  = lipgloss.Color("#FFFFFF")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTeal)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorViolet)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorTeal).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRose)

	UserLabelStyle = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	AgentLabelStyle = lipgloss.NewStyle().
			Foreground(ColorViolet).
			Bold(true)

	InstructionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWhite).
				Background(ColorViolet).
				Padding(1, 4)

	CountStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTeal)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorViolet)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			Padding(0, 1)
)
