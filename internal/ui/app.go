package ui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/otifyhq/console/internal/config"
	"github.com/otifyhq/console/internal/dashboard"
	"github.com/otifyhq/console/internal/schema"
	"github.com/otifyhq/console/internal/store"
	"github.com/otifyhq/console/internal/ui/components"
)

const settingsTab = "settings"

// App is the root model: the tab strip over the six collections plus
// the settings view, the welcome screen, and the snapshot dialogs.
type App struct {
	ctrl   *dashboard.Controller
	stores *store.Set
	cfg    *config.Config
	log    *slog.Logger

	width  int
	height int

	started bool
	tabs    []string
	tabIdx  int

	section  SectionModel
	settings SettingsModel
	impex    *ImpexModel

	errText string
}

func NewApp(ctrl *dashboard.Controller, stores *store.Set, cfg *config.Config, log *slog.Logger) App {
	tabs := append(append([]string{}, schema.Types()...), settingsTab)
	a := App{
		ctrl:     ctrl,
		stores:   stores,
		cfg:      cfg,
		log:      log,
		tabs:     tabs,
		settings: NewSettingsModel(cfg, ctrl.SessionID()),
	}
	a.tabIdx = a.indexOf(cfg.DefaultSection)
	// Only entity tabs are valid startup selections; anything else in
	// the config (including "settings") lands on the first section.
	if _, err := schema.Get(a.tabs[a.tabIdx]); err != nil {
		a.tabIdx = 0
	}
	return a
}

func (a App) indexOf(tab string) int {
	for i, t := range a.tabs {
		if t == tab {
			return i
		}
	}
	return 0
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuit(msg) {
		a.log.Info("session closed")
		return a, tea.Quit
	}
	a.errText = ""

	if a.impex != nil {
		next, done := a.impex.Update(msg)
		if done {
			a.impex = nil
			a.section.refresh()
		} else {
			a.impex = &next
		}
		return a, nil
	}

	if !a.started {
		return a.updateWelcome(msg)
	}

	busy := a.ctrl.ModalOpen() || a.section.confirming
	if !busy {
		// Vim-style list navigation is opt-in because j/k otherwise
		// feed the live search.
		if a.cfg.VimKeys {
			switch msg.String() {
			case "j":
				msg = tea.KeyMsg{Type: tea.KeyDown}
			case "k":
				msg = tea.KeyMsg{Type: tea.KeyUp}
			}
		}
		switch {
		case isKey(msg, "left"):
			a.tabIdx = (a.tabIdx - 1 + len(a.tabs)) % len(a.tabs)
			return a.enterTab()
		case isKey(msg, "right"):
			a.tabIdx = (a.tabIdx + 1) % len(a.tabs)
			return a.enterTab()
		case isKey(msg, "ctrl+e"):
			m := NewExportModel(a.stores)
			a.impex = &m
			return a, nil
		case isKey(msg, "ctrl+o"):
			m := NewImportModel(a.stores)
			a.impex = &m
			return a, nil
		}
	}

	if a.tabs[a.tabIdx] == settingsTab {
		return a, nil
	}
	a.section = a.section.Update(msg)
	return a, nil
}

func (a App) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isEnter(msg):
		return a.start(a.tabs[a.tabIdx])
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		n := int(msg.Runes[0] - '1')
		if n >= 0 && n < len(a.tabs)-1 {
			return a.start(a.tabs[n])
		}
	}
	return a, nil
}

// start leaves the welcome screen for the named section.
func (a App) start(tab string) (tea.Model, tea.Cmd) {
	a.started = true
	a.tabIdx = a.indexOf(tab)
	return a.enterTab()
}

// enterTab activates the current tab, rebuilding the section model so
// the cursor and search start clean.
func (a App) enterTab() (tea.Model, tea.Cmd) {
	tab := a.tabs[a.tabIdx]
	if tab == settingsTab {
		return a, nil
	}
	if err := a.ctrl.SelectSection(tab); err != nil {
		a.errText = err.Error()
		return a, nil
	}
	a.section = NewSectionModel(a.ctrl)
	return a, nil
}

func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderBanner())
	b.WriteString("\n")

	if !a.started {
		b.WriteString(a.welcomeView())
		return b.String()
	}

	b.WriteString(a.tabsView())
	b.WriteString("\n\n")

	switch {
	case a.impex != nil:
		b.WriteString(a.impex.View())
	case a.tabs[a.tabIdx] == settingsTab:
		b.WriteString(a.settings.View(a.width))
	default:
		b.WriteString(a.section.View(a.width))
	}

	if a.errText != "" {
		b.WriteString("\n")
		b.WriteString(components.ErrorBox("Error", a.errText, a.width))
	}

	b.WriteString("\n")
	b.WriteString(components.StatusBar(a.hints(), a.width))
	return b.String()
}

func (a App) welcomeView() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(components.CenterLine(MutedStyle.Render("Manage services, hospitals, doctors, departments, users and packages."), a.width))
	b.WriteString("\n\n")
	for i, t := range a.tabs {
		if t == settingsTab {
			continue
		}
		line := fmt.Sprintf("%d. %s", i+1, schema.MustGet(t).Plural)
		b.WriteString(components.CenterLine(NormalStyle.Render(line), a.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(components.CenterLine(AccentStyle.Render("Press a number, or enter for "+schema.MustGet(a.tabs[a.tabIdx]).Plural), a.width))
	b.WriteString("\n")
	b.WriteString(components.StatusBar([]string{
		components.Hint("1-6", "open section"),
		components.Hint("enter", "start"),
		components.Hint("ctrl+q", "quit"),
	}, a.width))
	return b.String()
}

func (a App) tabsView() string {
	parts := make([]string, len(a.tabs))
	for i, t := range a.tabs {
		label := "Settings"
		if t != settingsTab {
			label = schema.MustGet(t).Plural
		}
		if i == a.tabIdx {
			parts[i] = TabActiveStyle.Render(label)
		} else {
			parts[i] = TabInactiveStyle.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

func (a App) hints() []string {
	if a.impex != nil {
		return a.impex.Hints()
	}
	if a.tabs[a.tabIdx] == settingsTab {
		return a.settings.Hints()
	}
	hints := a.section.Hints()
	if !a.ctrl.ModalOpen() && !a.section.confirming {
		hints = append(hints,
			components.Hint("←/→", "section"),
			components.Hint("ctrl+e", "export"),
			components.Hint("ctrl+o", "import"),
			components.Hint("ctrl+q", "quit"),
		)
	}
	return hints
}
