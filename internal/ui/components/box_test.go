package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBoxWidthBounds(t *testing.T) {
	assert.Equal(t, 0, boxWidth(0))
	assert.Equal(t, 40, boxWidth(30))
	assert.Equal(t, 64, boxWidth(80))
	assert.Equal(t, 100, boxWidth(400))
}

func TestSafeBoxWidthNeverExceedsTerminal(t *testing.T) {
	assert.LessOrEqual(t, safeBoxWidth(36), 36)
}

func TestBoxContentWidth(t *testing.T) {
	assert.Equal(t, safeBoxWidth(100)-6, BoxContentWidth(100))
	assert.Equal(t, 0, BoxContentWidth(0))
}

func TestClampTextWidth(t *testing.T) {
	assert.Equal(t, "short", ClampTextWidth("short", 20))
	assert.Equal(t, "exactly te", ClampTextWidth("exactly ten chars plus", 10))
	assert.Equal(t, "one two", ClampTextWidth("one\ntwo", 20))
}

func TestTitledBoxWeavesTitle(t *testing.T) {
	out := TitledBox("Add New service", "body", 100)
	lines := strings.Split(out, "\n")
	assert.Contains(t, SanitizeText(lines[0]), "Add New service")
	assert.Contains(t, SanitizeText(out), "body")
}

func TestErrorBoxCarriesTitleAndMessage(t *testing.T) {
	out := SanitizeText(ErrorBox("Error", "something broke", 100))
	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "something broke")
}

func TestInfoRow(t *testing.T) {
	out := SanitizeText(InfoRow("Log file", "/tmp/x.log"))
	assert.Contains(t, out, "Log file")
	assert.Contains(t, out, "/tmp/x.log")
}

func TestCenterLine(t *testing.T) {
	out := CenterLine("ab", 10)
	assert.Equal(t, 4, len(out)-len(strings.TrimLeft(out, " ")))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, 10, lipgloss.Width(padRight("abc", 10)))
	assert.Equal(t, "abcd", padRight("abcd", 2))
}
