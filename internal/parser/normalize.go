package parser

import (
	"regexp"
	"strings"
)

var (
	// ANSI color/cursor escape sequences, e.g. "\x1b[0m"
	ansiEscapePattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)
	// C0 controls except tab/newline/carriage-return, DEL, and the C1 block
	controlCharPattern = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]|[\x{0080}-\x{009F}]`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// Normalize cleans a raw statement line: strips ANSI escapes, control
// characters and mojibake placeholder glyphs, collapses whitespace runs to
// single spaces, and trims. Idempotent, never errors, never grows the input.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = ansiEscapePattern.ReplaceAllString(text, "")
	text = controlCharPattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "�", "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
