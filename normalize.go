package quizai

import (
	"regexp"
	"strings"
)

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// NormalizeText canonicalizes exam text before extraction: Windows line
// endings become LF, tabs become single spaces, runs of three or more
// newlines collapse to a blank line and surrounding whitespace is trimmed.
// Idempotent, so decoded file text can be normalized again without harm.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", " ")
	text = excessNewlines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
