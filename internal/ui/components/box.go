package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	boxBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3a2a2d")).
			Padding(1, 2)

	boxHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d1606b")).
			Bold(true)

	boxMutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))

	boxValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da"))

	boxLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#77565b")).
			Bold(true)

	errorBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7a2f3a")).
			Padding(1, 2)

	errorHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e06c75")).
				Bold(true)

	errorBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6b5b5"))
)

func boxWidth(width int) int {
	// Use ~80% of terminal width, capped at 100; tables are wide.
	if width <= 0 {
		return 0
	}
	w := width * 80 / 100
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func safeBoxWidth(width int) int {
	if width <= 0 {
		return boxWidth(width)
	}
	w := boxWidth(width)
	if w > width {
		return width
	}
	return w
}

// Box renders content inside a bordered box.
func Box(content string, width int) string {
	return boxBorder.Width(safeBoxWidth(width)).Render(content)
}

// BoxContentWidth returns the inner content width excluding border and
// padding.
func BoxContentWidth(width int) int {
	w := safeBoxWidth(width)
	if w <= 0 {
		return 0
	}
	// Border adds 2, padding adds 4 (left+right).
	inner := w - 6
	if inner < 0 {
		return 0
	}
	return inner
}

// ClampTextWidth truncates text to the given visual width (ANSI-aware).
func ClampTextWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	cleaned := SanitizeOneLine(text)
	if lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	return truncateRunes(cleaned, width)
}

// ErrorBox renders a red bordered box for errors.
func ErrorBox(title, message string, width int) string {
	header := ""
	if title != "" {
		header = errorHeaderStyle.Render(title) + "\n\n"
	}
	body := errorBodyStyle.Render(message)
	return errorBorder.Width(safeBoxWidth(width)).Render(header + body)
}

// TitledBox renders a box with a header title woven into the top border.
func TitledBox(title, content string, width int) string {
	if title == "" {
		return Box(content, width)
	}
	boxed := boxBorder.Width(safeBoxWidth(width)).Render(content)
	lines := strings.Split(boxed, "\n")
	if len(lines) == 0 {
		return boxed
	}

	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	middleLen := lineWidth - 2
	titleText := fmt.Sprintf(" [ %s ] ", title)
	if lipgloss.Width(titleText) > middleLen {
		titleText = truncateRunes(titleText, middleLen)
	}

	titleWidth := lipgloss.Width(titleText)
	left := (middleLen - titleWidth) / 2
	if left < 0 {
		left = 0
	}
	right := middleLen - titleWidth - left
	if right < 0 {
		right = 0
	}

	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#3a2a2d"))
	leftSeg := borderStyle.Render(border.TopLeft + strings.Repeat(border.Top, left))
	rightSeg := borderStyle.Render(strings.Repeat(border.Top, right) + border.TopRight)
	line := leftSeg + boxHeaderStyle.Render(titleText) + rightSeg
	if w := lipgloss.Width(line); w < lineWidth {
		line += borderStyle.Render(strings.Repeat(border.Top, lineWidth-w))
	} else if w > lineWidth {
		line = truncateRunes(line, lineWidth)
	}

	lines[0] = line
	return strings.Join(lines, "\n")
}

// InfoRow renders a label: value row for detail views.
func InfoRow(label, value string) string {
	safeLabel := SanitizeOneLine(label)
	safeValue := SanitizeOneLine(value)
	return boxMutedStyle.Render(safeLabel+": ") + boxValueStyle.Render(safeValue)
}

// Indent adds left padding to every line of a multi-line string.
func Indent(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// CenterLine centers a single line within the standard box width.
func CenterLine(s string, width int) string {
	w := safeBoxWidth(width)
	if w <= 0 {
		return s
	}
	lineWidth := lipgloss.Width(s)
	if lineWidth >= w {
		return s
	}
	pad := (w - lineWidth) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	var b strings.Builder
	b.Grow(max)
	n := 0
	for _, r := range s {
		if n >= max {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
