package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a single column for TableGrid. Width is the
// visual width of the column content, excluding separators.
type TableColumn struct {
	Header string
	Width  int
}

const tableGridLeftOffset = 2

var gridLineStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#3a2a2d"))

var gridActiveRowStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#d7d9da")).
	Background(lipgloss.Color("#2a1f21")).
	Bold(true)

var gridActiveSepStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#3a2a2d")).
	Background(lipgloss.Color("#2a1f21"))

// TableGrid renders header plus data rows using the rounded border
// glyphs shared with the box components, highlighting one data row.
// activeRow is a 0-based index into rows; pass -1 to disable.
// Callers pass a tableWidth that fits inside a box content area
// (typically BoxContentWidth(termWidth)).
func TableGrid(columns []TableColumn, rows [][]string, tableWidth int, activeRow int) string {
	if tableWidth <= 0 {
		return ""
	}
	if len(columns) == 0 {
		return padRight("", tableWidth)
	}

	border := lipgloss.RoundedBorder()
	v := border.Left
	if v == "" {
		v = "|"
	}
	h := border.Top
	if h == "" {
		h = "-"
	}
	cross := border.Middle
	if cross == "" {
		cross = "+"
	}

	cols := fitGridColumns(columns, v, tableWidth)

	var out []string
	out = append(out, renderGridRow(cols, headerCells(cols), v, tableWidth, true, false))
	out = append(out, renderGridRule(cols, cross, h, tableWidth))
	for i, row := range rows {
		out = append(out, renderGridRow(cols, row, v, tableWidth, false, i == activeRow))
	}

	return strings.Join(out, "\n")
}

func headerCells(columns []TableColumn) []string {
	hdr := make([]string, len(columns))
	for i, c := range columns {
		hdr[i] = SanitizeOneLine(c.Header)
	}
	return hdr
}

func fitGridColumns(columns []TableColumn, sep string, tableWidth int) []TableColumn {
	fitted := make([]TableColumn, len(columns))
	copy(fitted, columns)

	sepW := lipgloss.Width(sep)
	if sepW < 1 {
		sepW = 1
	}
	contentWidth := tableWidth - tableGridLeftOffset
	if contentWidth < len(fitted) {
		contentWidth = len(fitted)
	}

	sum := 0
	for i := range fitted {
		if fitted[i].Width < 1 {
			fitted[i].Width = 1
		}
		sum += fitted[i].Width
	}
	// n columns => n-1 separators between columns, no outer border.
	expected := sum
	if len(fitted) > 1 {
		expected += (len(fitted) - 1) * sepW
	}
	delta := contentWidth - expected
	if len(fitted) > 0 && delta != 0 {
		fitted[len(fitted)-1].Width += delta
		if fitted[len(fitted)-1].Width < 1 {
			fitted[len(fitted)-1].Width = 1
		}
	}
	return fitted
}

func renderGridRow(columns []TableColumn, cells []string, sep string, tableWidth int, header bool, active bool) string {
	headerStyle := boxLabelStyle.Bold(true)

	sepStyle := gridLineStyle
	cellStyle := lipgloss.NewStyle()
	if active {
		sepStyle = gridActiveSepStyle
		cellStyle = gridActiveRowStyle
	}
	sepStyled := sepStyle.Inline(true).Render(sep)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", tableGridLeftOffset))
	for i, col := range columns {
		if i > 0 {
			b.WriteString(sepStyled)
		}
		text := ""
		if i < len(cells) {
			text = cells[i]
		}

		rendered := renderGridCell(text, col.Width)
		if header {
			// Inline keeps this cell as exactly one rendered line.
			rendered = headerStyle.Inline(true).Render(rendered)
		} else if active {
			rendered = cellStyle.Inline(true).Render(rendered)
		}
		b.WriteString(rendered)
	}

	line := b.String()
	if lipgloss.Width(line) < tableWidth {
		line = padRight(line, tableWidth)
	}
	return line
}

func renderGridRule(columns []TableColumn, cross, horiz string, tableWidth int) string {
	if horiz == "" {
		horiz = "-"
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", tableGridLeftOffset))
	for i, col := range columns {
		w := col.Width
		if w < 1 {
			w = 1
		}
		b.WriteString(strings.Repeat(horiz, w))
		if i < len(columns)-1 {
			b.WriteString(cross)
		}
	}
	line := b.String()
	if lipgloss.Width(line) < tableWidth {
		line = padRight(line, tableWidth)
	}
	return gridLineStyle.Inline(true).Render(line)
}

func renderGridCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	clamped := ClampTextWidth(text, width)
	w := lipgloss.Width(clamped)
	if w >= width {
		return truncateRunes(clamped, width)
	}
	return clamped + strings.Repeat(" ", width-w)
}
