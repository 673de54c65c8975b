package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
  ██████  ████████ ██ ███████ ██    ██
 ██    ██    ██    ██ ██       ██  ██
 ██    ██    ██    ██ █████     ████
 ██    ██    ██    ██ ██         ██
  ██████     ██    ██ ██         ██`

// RenderBanner returns the styled banner with its subtitle.
func RenderBanner() string {
	lines := strings.Split(bannerArt, "\n")
	rendered := ""

	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}

	for _, line := range lines {
		if line == "" {
			continue
		}
		rendered += BannerStyle.Render(line) + "\n"
	}

	subtitleText := "Admin Panel • Hospitals, Doctors & Services"
	subtitleWidth := lipgloss.Width(subtitleText)
	blockWidth := maxWidth
	if blockWidth < subtitleWidth {
		blockWidth = subtitleWidth
	}

	subtitle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(subtitleText)

	underline := lipgloss.NewStyle().
		Foreground(ColorBorder).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(strings.Repeat("─", subtitleWidth))

	return "\n" + rendered + "\n" + subtitle + "\n" + underline + "\n"
}
