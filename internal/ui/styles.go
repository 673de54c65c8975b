package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary    = lipgloss.Color("#d1606b") // otify red
	ColorSecondary  = lipgloss.Color("#77565b") // dim rose
	ColorAccent     = lipgloss.Color("#c78854") // warm
	ColorBackground = lipgloss.Color("#16161d") // dark
	ColorText       = lipgloss.Color("#d7d9da") // main text
	ColorMuted      = lipgloss.Color("#9ba0bf") // muted text
	ColorSuccess    = lipgloss.Color("#3f866b") // green
	ColorError      = lipgloss.Color("#e06c75") // error red
	ColorBorder     = lipgloss.Color("#3a2a2d") // border
)

// --- Reusable Styles ---

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			PaddingBottom(1)
)
