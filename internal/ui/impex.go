package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/otifyhq/console/internal/snapshot"
	"github.com/otifyhq/console/internal/store"
	"github.com/otifyhq/console/internal/ui/components"
)

type impexKind int

const (
	impexExport impexKind = iota
	impexImport
)

// ImpexModel prompts for a snapshot path and runs the export or
// import against the store set once the path is confirmed.
type ImpexModel struct {
	kind   impexKind
	stores *store.Set
	path   string
	result string
	failed bool
	done   bool
}

func NewExportModel(stores *store.Set) ImpexModel {
	return ImpexModel{kind: impexExport, stores: stores, path: "otify-snapshot.yaml"}
}

func NewImportModel(stores *store.Set) ImpexModel {
	return ImpexModel{kind: impexImport, stores: stores, path: "otify-snapshot.yaml"}
}

// Update handles one key. The returned bool is true once the dialog
// should close.
func (m ImpexModel) Update(msg tea.KeyMsg) (ImpexModel, bool) {
	if m.done {
		return m, true
	}
	if m.result != "" {
		if isEnter(msg) || isBack(msg) {
			m.done = true
			return m, true
		}
		return m, false
	}

	switch {
	case isBack(msg):
		m.done = true
		return m, true

	case isEnter(msg):
		m = m.run()

	case isKey(msg, "backspace"):
		m.path = dropLastRune(m.path)

	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		ch := msg.String()
		if msg.Type == tea.KeySpace {
			ch = " "
		}
		if len([]rune(ch)) == 1 {
			m.path += ch
		}
	}
	return m, false
}

func (m ImpexModel) run() ImpexModel {
	if m.path == "" {
		m.result = "path is required"
		m.failed = true
		return m
	}
	switch m.kind {
	case impexExport:
		n, err := snapshot.ExportFile(m.stores, m.path)
		if err != nil {
			m.result = fmt.Sprintf("export failed: %v", err)
			m.failed = true
		} else {
			m.result = fmt.Sprintf("Exported %d records to %s", n, m.path)
		}
	case impexImport:
		n, err := snapshot.ImportFile(m.stores, m.path)
		if err != nil {
			m.result = fmt.Sprintf("import failed: %v", err)
			m.failed = true
		} else {
			m.result = fmt.Sprintf("Imported %d records from %s", n, m.path)
		}
	}
	return m
}

func (m ImpexModel) View() string {
	title := "Export Snapshot"
	if m.kind == impexImport {
		title = "Import Snapshot"
	}
	if m.result != "" {
		style := SuccessStyle
		if m.failed {
			style = ErrorStyle
		}
		return components.ConfirmDialog(title, style.Render(m.result))
	}
	return components.InputDialog(title, m.path)
}

func (m ImpexModel) Hints() []string {
	if m.result != "" {
		return []string{components.Hint("enter", "close")}
	}
	return []string{
		components.Hint("enter", "run"),
		components.Hint("esc", "cancel"),
	}
}
