package ui

import (
	"strings"

	"github.com/otifyhq/console/internal/form"
	"github.com/otifyhq/console/internal/record"
	"github.com/otifyhq/console/internal/schema"
	"github.com/otifyhq/console/internal/ui/components"
)

// The field renderer turns one schema field into its label+value block
// and interprets edit keys for it. It owns no state beyond what the
// form model passes in: focus, and the open/closed chooser state of
// multi-select fields.

func renderField(f schema.Field, d *form.Draft, focused, selecting bool, optionIdx int, invalid bool) string {
	label := f.Label
	if f.Required && f.Kind != schema.KindCheckbox {
		label += " *"
	}

	labelStyle := MutedStyle
	prefix := "  "
	if focused {
		labelStyle = SelectedStyle
		prefix = "> "
	}
	if invalid {
		labelStyle = ErrorStyle
	}

	switch f.Kind {
	case schema.KindCheckbox:
		mark := "[ ]"
		if d.Bool(f.Name) {
			mark = "[x]"
		}
		return labelStyle.Render(prefix+label+":") + "\n" +
			NormalStyle.Render("  "+mark)

	case schema.KindSelect:
		value := d.String(f.Name)
		line := ""
		switch {
		case value == "" && focused:
			line = MutedStyle.Render("  Select " + f.Label + "  ‹ ›")
		case value == "":
			line = MutedStyle.Render("  -")
		default:
			line = NormalStyle.Render("  " + value)
		}
		return labelStyle.Render(prefix+label+":") + "\n" + line

	case schema.KindMultiSelect:
		body := ""
		if selecting {
			body = renderOptionRow(d.List(f.Name), f.Options, optionIdx)
		} else {
			body = renderPills(d.List(f.Name), focused)
		}
		return labelStyle.Render(prefix+label+":") + "\n" +
			NormalStyle.Render("  "+body)

	default:
		value := components.SanitizeText(d.String(f.Name))
		if f.Kind == schema.KindPassword {
			value = strings.Repeat("•", len([]rune(value)))
		}
		if f.Kind == schema.KindTextarea {
			value = strings.ReplaceAll(value, "\n", "\n  ")
		}
		if focused {
			return labelStyle.Render(prefix+label+":") + "\n" +
				NormalStyle.Render("  "+value) + AccentStyle.Render("█")
		}
		if value == "" {
			value = "-"
		}
		return labelStyle.Render(prefix+label+":") + "\n" +
			NormalStyle.Render("  "+value)
	}
}

// renderPills shows multi-select selections as bracketed pills.
func renderPills(selected []string, focused bool) string {
	if len(selected) == 0 {
		if focused {
			return MutedStyle.Render("Select options...") + " " + AccentStyle.Render("█")
		}
		return "-"
	}
	var b strings.Builder
	for i, s := range selected {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(AccentStyle.Render("[" + s + "]"))
	}
	if focused {
		b.WriteString(" ")
		b.WriteString(AccentStyle.Render("█"))
	}
	return b.String()
}

// renderOptionRow shows the option universe with a cursor while the
// chooser is open. Selected options render bracketed.
func renderOptionRow(selected, options []string, idx int) string {
	if len(options) == 0 {
		return MutedStyle.Render("no options declared")
	}
	var b strings.Builder
	for i, opt := range options {
		label := opt
		if optionSelected(selected, opt) {
			label = "[" + opt + "]"
		}
		switch {
		case i == idx:
			b.WriteString(AccentStyle.Render(label))
		case optionSelected(selected, opt):
			b.WriteString(SelectedStyle.Render(label))
		default:
			b.WriteString(MutedStyle.Render(label))
		}
		if i < len(options)-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func optionSelected(selected []string, opt string) bool {
	for _, s := range selected {
		if s == opt {
			return true
		}
	}
	return false
}

// acceptRune filters typed characters per field kind: numbers take
// digits and a decimal point, dates digits and dashes, everything else
// any printable rune.
func acceptRune(kind schema.FieldKind, ch string) bool {
	if len([]rune(ch)) != 1 {
		return false
	}
	switch kind {
	case schema.KindNumber:
		return (ch >= "0" && ch <= "9") || ch == "."
	case schema.KindDate:
		return (ch >= "0" && ch <= "9") || ch == "-"
	default:
		return true
	}
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

// cycleOption advances a single-select value through its option set.
func cycleOption(options []string, current string, dir int) string {
	if len(options) == 0 {
		return current
	}
	idx := -1
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		if dir < 0 {
			return options[len(options)-1]
		}
		return options[0]
	}
	return options[(idx+dir+len(options))%len(options)]
}

// statusLabel is the display form of a boolean status cell.
func statusLabel(v any) string {
	if record.BoolValue(v) {
		return "Active"
	}
	return "Inactive"
}
