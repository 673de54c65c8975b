package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/otifyhq/console/internal/dashboard"
	"github.com/otifyhq/console/internal/record"
	"github.com/otifyhq/console/internal/schema"
	"github.com/otifyhq/console/internal/ui/components"
)

const sectionPageSize = 12

// SectionModel renders the active collection as a table with live
// search, and hosts the create/edit modal and the delete confirmation.
// All six sections share this one model; the schema decides the rest.
type SectionModel struct {
	ctrl *dashboard.Controller
	list *components.List

	form FormModel

	confirming bool
	deleteID   string
	deleteName string

	notice  string
	errText string
}

func NewSectionModel(ctrl *dashboard.Controller) SectionModel {
	m := SectionModel{
		ctrl: ctrl,
		list: components.NewList(sectionPageSize),
	}
	m.refresh()
	return m
}

// refresh re-queries the controller and keeps the cursor on a valid
// row. Called after every mutation and every search keystroke.
func (m *SectionModel) refresh() {
	rows := m.ctrl.Rows()
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	m.list.SetItems(ids)
}

func (m SectionModel) selectedID() string {
	idx := m.list.Selected()
	if idx < 0 || idx >= len(m.list.Items) {
		return ""
	}
	return m.list.Items[idx]
}

func (m SectionModel) Update(msg tea.KeyMsg) SectionModel {
	m.notice = ""
	m.errText = ""

	if m.ctrl.ModalOpen() {
		next, done := m.form.Update(msg)
		m.form = next
		if done {
			m.refresh()
		}
		return m
	}

	if m.confirming {
		switch {
		case isKey(msg, "y", "Y"):
			m.confirming = false
			if err := m.ctrl.Delete(m.deleteID); err != nil {
				m.errText = err.Error()
			} else {
				m.notice = fmt.Sprintf("Deleted %s", m.deleteID)
			}
			m.refresh()
		case isKey(msg, "n", "N") || isBack(msg) || isEnter(msg):
			m.confirming = false
		}
		return m
	}

	switch {
	case isUp(msg):
		m.list.Up()

	case isDown(msg):
		m.list.Down()

	case isEnter(msg):
		id := m.selectedID()
		if id == "" {
			return m
		}
		if err := m.ctrl.OpenEdit(id); err != nil {
			m.errText = err.Error()
			return m
		}
		if m.ctrl.ModalOpen() {
			m.form = NewFormModel(m.ctrl)
		} else {
			m.refresh()
		}

	case isKey(msg, "ctrl+n"):
		if err := m.ctrl.OpenCreate(); err != nil {
			m.errText = err.Error()
			return m
		}
		m.form = NewFormModel(m.ctrl)

	case isKey(msg, "ctrl+d"):
		id := m.selectedID()
		if id == "" {
			return m
		}
		m.confirming = true
		m.deleteID = id
		m.deleteName = m.rowTitle(id)

	case isBack(msg):
		m.ctrl.SetSearch("")
		m.refresh()

	case isKey(msg, "backspace"):
		m.ctrl.SetSearch(dropLastRune(m.ctrl.SearchTerm()))
		m.refresh()

	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		ch := msg.String()
		if msg.Type == tea.KeySpace {
			ch = " "
		}
		if len([]rune(ch)) == 1 {
			m.ctrl.SetSearch(m.ctrl.SearchTerm() + ch)
			m.refresh()
		}
	}
	return m
}

// rowTitle picks the first text column value as a human name for the
// delete confirmation, falling back to the id.
func (m SectionModel) rowTitle(id string) string {
	for _, r := range m.ctrl.Rows() {
		if r.ID != id {
			continue
		}
		for _, col := range m.ctrl.Columns() {
			if col.Kind == schema.ColText {
				if v := record.StringValue(r.Fields[col.Key]); v != "" {
					return v
				}
			}
		}
	}
	return id
}

func (m SectionModel) View(width int) string {
	if m.ctrl.ModalOpen() {
		return m.form.View(width)
	}
	if m.confirming {
		return components.ConfirmDialog(
			"Confirm Delete",
			fmt.Sprintf("Delete %q? This cannot be undone.", m.deleteName),
		)
	}

	sch := m.ctrl.Schema()
	if sch == nil {
		return ""
	}

	rows := m.ctrl.Rows()
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%s (%d)", sch.Plural, len(rows))))
	b.WriteString("\n")

	search := m.ctrl.SearchTerm()
	if search != "" {
		b.WriteString(MutedStyle.Render("Search: ") + NormalStyle.Render(search) + AccentStyle.Render("█"))
	} else {
		b.WriteString(MutedStyle.Render("Type to search, ctrl+n to add"))
	}
	b.WriteString("\n\n")

	if len(rows) == 0 {
		if search != "" {
			b.WriteString(MutedStyle.Render(fmt.Sprintf("No %s match %q.", strings.ToLower(sch.Plural), search)))
		} else {
			b.WriteString(MutedStyle.Render(fmt.Sprintf("No %s yet. Press ctrl+n to add one.", strings.ToLower(sch.Plural))))
		}
	} else {
		tableWidth := components.BoxContentWidth(width)
		cols := gridColumns(sch.Columns, tableWidth)

		visible := visibleRows(rows, m.list)
		cells := make([][]string, len(visible))
		for i, r := range visible {
			cells[i] = rowCells(r, sch.Columns)
		}
		b.WriteString(components.TableGrid(cols, cells, tableWidth, m.list.Selected()-m.list.Offset))
		if len(rows) > sectionPageSize {
			b.WriteString("\n")
			b.WriteString(MutedStyle.Render(fmt.Sprintf("%d-%d of %d", m.list.Offset+1, m.list.Offset+len(visible), len(rows))))
		}
	}

	if m.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(ErrorStyle.Render(m.errText))
	}
	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(SuccessStyle.Render(m.notice))
	}

	return components.Box(b.String(), width)
}

func (m SectionModel) Hints() []string {
	if m.ctrl.ModalOpen() {
		return m.form.Hints()
	}
	if m.confirming {
		return []string{
			components.Hint("y", "delete"),
			components.Hint("n", "keep"),
		}
	}
	return []string{
		components.Hint("↑/↓", "row"),
		components.Hint("enter", "edit"),
		components.Hint("ctrl+n", "add"),
		components.Hint("ctrl+d", "delete"),
		components.Hint("esc", "clear search"),
	}
}

func visibleRows(rows []record.Record, list *components.List) []record.Record {
	end := list.Offset + list.PageSize
	if end > len(rows) {
		end = len(rows)
	}
	if list.Offset >= end {
		return nil
	}
	return rows[list.Offset:end]
}

// gridColumns spreads the table width across the schema's columns,
// keeping at least room for each header.
func gridColumns(columns []schema.Column, tableWidth int) []components.TableColumn {
	n := len(columns)
	if n == 0 {
		return nil
	}
	share := (tableWidth - 2 - (n - 1)) / n
	cols := make([]components.TableColumn, n)
	for i, c := range columns {
		w := share
		if hw := len([]rune(c.Label)); w < hw {
			w = hw
		}
		if w < 4 {
			w = 4
		}
		cols[i] = components.TableColumn{Header: c.Label, Width: w}
	}
	return cols
}

// rowCells formats one record for the table per column kind: status
// columns render Active/Inactive, list columns join their elements.
func rowCells(r record.Record, columns []schema.Column) []string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		v := r.Fields[col.Key]
		switch col.Kind {
		case schema.ColStatus:
			cells[i] = statusLabel(v)
		case schema.ColList:
			cells[i] = strings.Join(record.StringList(v), ", ")
		default:
			cells[i] = record.StringValue(v)
		}
	}
	return cells
}
