package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/otifyhq/console/internal/dashboard"
	"github.com/otifyhq/console/internal/form"
	"github.com/otifyhq/console/internal/schema"
	"github.com/otifyhq/console/internal/ui/components"
)

// FormModel drives the create/edit modal over the controller's open
// draft. The draft holds the values; this model only tracks focus,
// the multi-select chooser, and validation feedback.
type FormModel struct {
	ctrl *dashboard.Controller

	fields    []schema.Field
	focus     int
	selecting bool
	optionIdx int

	errText string
	invalid map[string]bool
}

func NewFormModel(ctrl *dashboard.Controller) FormModel {
	m := FormModel{ctrl: ctrl, invalid: map[string]bool{}}
	if s := ctrl.Draft(); s != nil {
		m.fields = s.Schema().Fields
	}
	return m
}

func (m FormModel) focusedField() (schema.Field, bool) {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return schema.Field{}, false
	}
	return m.fields[m.focus], true
}

// Update handles one key while the modal is open. The returned bool is
// true once the modal has closed, whether by submit or cancel.
func (m FormModel) Update(msg tea.KeyMsg) (FormModel, bool) {
	draft := m.ctrl.Draft()
	if draft == nil {
		return m, true
	}

	if m.selecting {
		return m.updateChooser(msg, draft), false
	}

	switch {
	case isBack(msg):
		m.ctrl.Close()
		return m, true

	case isKey(msg, "ctrl+s"):
		if err := m.ctrl.Submit(); err != nil {
			var verr *form.ValidationError
			if errors.As(err, &verr) {
				m.errText = verr.Error()
				m.invalid = map[string]bool{}
				for _, name := range verr.Fields {
					m.invalid[name] = true
				}
				return m, false
			}
			m.errText = err.Error()
			return m, false
		}
		return m, true

	case isDown(msg) || isKey(msg, "tab"):
		if m.focus < len(m.fields)-1 {
			m.focus++
		}
		return m, false

	case isUp(msg) || isKey(msg, "shift+tab"):
		if m.focus > 0 {
			m.focus--
		}
		return m, false
	}

	f, ok := m.focusedField()
	if !ok {
		return m, false
	}

	switch f.Kind {
	case schema.KindCheckbox:
		if isSpace(msg) || isEnter(msg) {
			draft.Set(f.Name, !draft.Bool(f.Name))
			delete(m.invalid, f.Name)
		}

	case schema.KindSelect:
		if isKey(msg, "left") {
			draft.Set(f.Name, cycleOption(f.Options, draft.String(f.Name), -1))
			delete(m.invalid, f.Name)
		}
		if isKey(msg, "right") || isSpace(msg) || isEnter(msg) {
			draft.Set(f.Name, cycleOption(f.Options, draft.String(f.Name), 1))
			delete(m.invalid, f.Name)
		}

	case schema.KindMultiSelect:
		if isEnter(msg) || isSpace(msg) {
			m.selecting = true
			m.optionIdx = 0
		}

	default:
		m = m.updateScalar(msg, draft, f)
	}
	return m, false
}

// updateChooser handles keys while a multi-select chooser is open.
func (m FormModel) updateChooser(msg tea.KeyMsg, draft *form.Draft) FormModel {
	f, ok := m.focusedField()
	if !ok {
		m.selecting = false
		return m
	}
	switch {
	case isBack(msg) || isEnter(msg):
		m.selecting = false
	case isKey(msg, "left"):
		if m.optionIdx > 0 {
			m.optionIdx--
		}
	case isKey(msg, "right"):
		if m.optionIdx < len(f.Options)-1 {
			m.optionIdx++
		}
	case isSpace(msg):
		if m.optionIdx >= 0 && m.optionIdx < len(f.Options) {
			draft.Toggle(f.Name, f.Options[m.optionIdx])
			delete(m.invalid, f.Name)
		}
	}
	return m
}

func (m FormModel) updateScalar(msg tea.KeyMsg, draft *form.Draft, f schema.Field) FormModel {
	switch {
	case isKey(msg, "backspace"):
		draft.Set(f.Name, dropLastRune(draft.String(f.Name)))
	case isEnter(msg) && f.Kind == schema.KindTextarea:
		draft.Set(f.Name, draft.String(f.Name)+"\n")
	case isEnter(msg):
		if m.focus < len(m.fields)-1 {
			m.focus++
		}
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		ch := msg.String()
		if msg.Type == tea.KeySpace {
			ch = " "
		}
		if acceptRune(f.Kind, ch) {
			draft.Set(f.Name, draft.String(f.Name)+ch)
			delete(m.invalid, f.Name)
		}
	}
	return m
}

func (m FormModel) View(width int) string {
	draft := m.ctrl.Draft()
	if draft == nil {
		return ""
	}

	var b strings.Builder
	for i, f := range m.fields {
		focused := i == m.focus
		selecting := focused && m.selecting
		b.WriteString(renderField(f, draft, focused, selecting, m.optionIdx, m.invalid[f.Name]))
		b.WriteString("\n")
		if i < len(m.fields)-1 {
			b.WriteString("\n")
		}
	}

	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(components.ClampTextWidth(m.errText, components.BoxContentWidth(width))))
		b.WriteString("\n")
	}

	return components.TitledBox(m.ctrl.ModalTitle(), b.String(), width)
}

// Hints are the status bar entries while the modal is open.
func (m FormModel) Hints() []string {
	hints := []string{
		components.Hint("↑/↓", "field"),
		components.Hint("ctrl+s", "save"),
		components.Hint("esc", "cancel"),
	}
	if f, ok := m.focusedField(); ok {
		switch f.Kind {
		case schema.KindCheckbox:
			hints = append(hints, components.Hint("space", "toggle"))
		case schema.KindSelect:
			hints = append(hints, components.Hint("←/→", "choose"))
		case schema.KindMultiSelect:
			if m.selecting {
				hints = append(hints, components.Hint("←/→", "option"), components.Hint("space", "toggle"), components.Hint("enter", "done"))
			} else {
				hints = append(hints, components.Hint("enter", "choose"))
			}
		}
	}
	return hints
}
