package ui

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/otifyhq/console/internal/config"
	"github.com/otifyhq/console/internal/dashboard"
	"github.com/otifyhq/console/internal/record"
	"github.com/otifyhq/console/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestApp(t *testing.T) (App, *store.Set) {
	t.Helper()
	stores := store.NewSet()
	ctrl := dashboard.NewController(stores, discardLogger())
	app := NewApp(ctrl, stores, config.Default(), discardLogger())
	app.width = 100
	app.height = 40
	return app, stores
}

// startedApp returns an app already past the welcome screen, on the
// services section.
func startedApp(t *testing.T) (App, *store.Set) {
	t.Helper()
	app, stores := newTestApp(t)
	return press(t, app, keyEnter()), stores
}

func press(t *testing.T, app App, msgs ...tea.Msg) App {
	t.Helper()
	var m tea.Model = app
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	next, ok := m.(App)
	require.True(t, ok)
	return next
}

// typeText delivers text one rune at a time, like a terminal would.
func typeText(t *testing.T, app App, text string) App {
	t.Helper()
	for _, r := range text {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace}
		}
		app = press(t, app, msg)
	}
	return app
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyEsc() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEsc} }
func keySpace() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeySpace} }
func keyUp() tea.KeyMsg    { return tea.KeyMsg{Type: tea.KeyUp} }
func keyDown() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyDown} }
func keyLeft() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyLeft} }
func keyRight() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRight} }

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func serviceRecord(id, name string, active bool) record.Record {
	return record.Record{
		ID: id,
		Fields: record.Fields{
			"name":         name,
			"description":  "Imaging and diagnostics",
			"primeOptions": []string{"Call Booking"},
			"isActive":     active,
		},
	}
}

func seedService(t *testing.T, stores *store.Set, id, name string, active bool) {
	t.Helper()
	coll, err := stores.Collection("service")
	require.NoError(t, err)
	require.NoError(t, coll.Insert(serviceRecord(id, name, active)))
}
