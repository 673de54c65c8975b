package ui

import (
	"strings"

	"github.com/otifyhq/console/internal/config"
	"github.com/otifyhq/console/internal/ui/components"
)

// SettingsModel is a read-only view of the effective configuration.
type SettingsModel struct {
	cfg       *config.Config
	sessionID string
}

func NewSettingsModel(cfg *config.Config, sessionID string) SettingsModel {
	return SettingsModel{cfg: cfg, sessionID: sessionID}
}

func (m SettingsModel) View(width int) string {
	logFile := m.cfg.LogFile
	if logFile == "" {
		logFile = "disabled"
	}
	logLevel := m.cfg.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}

	vimKeys := "off"
	if m.cfg.VimKeys {
		vimKeys = "on"
	}

	rows := []string{
		components.InfoRow("Config file", config.Path()),
		components.InfoRow("Default section", m.cfg.DefaultSection),
		components.InfoRow("Vim keys", vimKeys),
		components.InfoRow("Log file", logFile),
		components.InfoRow("Log level", logLevel),
		components.InfoRow("Session", m.sessionID),
	}
	body := strings.Join(rows, "\n") + "\n\n" +
		MutedStyle.Render("Edit the config file and restart to change these.")

	return components.TitledBox("Settings", body, width)
}

func (m SettingsModel) Hints() []string {
	return []string{
		components.Hint("←/→", "section"),
		components.Hint("ctrl+q", "quit"),
	}
}
