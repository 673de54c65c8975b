package components

import (
	"regexp"
	"strings"
	"unicode"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// SanitizeText strips control characters and ANSI escape sequences from
// display strings. Record fields are user-entered and end up inside
// styled terminal output, so they must never smuggle escapes.
func SanitizeText(input string) string {
	if input == "" {
		return input
	}
	cleaned := ansiPattern.ReplaceAllString(input, "")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, cleaned)
}

// SanitizeOneLine sanitizes and flattens text onto a single line,
// collapsing newlines and tabs to spaces. Table cells and labels go
// through this.
func SanitizeOneLine(input string) string {
	cleaned := SanitizeText(input)
	cleaned = strings.ReplaceAll(cleaned, "\n", " ")
	cleaned = strings.ReplaceAll(cleaned, "\t", " ")
	return strings.Join(strings.Fields(cleaned), " ")
}
