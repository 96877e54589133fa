package quizai

import (
	"regexp"
	"strings"
)

var (
	answerKeyword = regexp.MustCompile(`(?:ANSWER|ĐÁP ÁN|CORRECT)[:\s]+([A-D])`)
	glyphLeader   = regexp.MustCompile(`(?i)^[A-D]\s*[*✓☑]`)
	leadingLetter = regexp.MustCompile(`(?i)^([A-D])`)
)

// answerLine matches a standalone answer-marker line such as "Answer: B" or
// "Đáp án: C". Such lines carry the correct answer, not an option value.
var answerLine = regexp.MustCompile(`(?i)^(?:ANSWER|ĐÁP ÁN|CORRECT)[:\s]`)

// DetectCorrectAnswer scans a question block for an answer marker and returns
// the 0-based option index. Explicit keyword markers (ANSWER / ĐÁP ÁN /
// CORRECT plus a letter) are more authoritative than checkmark glyphs, and
// both beat positional guessing: with neither, the answer defaults to A.
func DetectCorrectAnswer(lines []string) int {
	text := strings.ToUpper(strings.Join(lines, "\n"))
	if m := answerKeyword.FindStringSubmatch(text); m != nil {
		return int(m[1][0] - 'A')
	}

	for _, line := range lines {
		if strings.ContainsAny(line, "✓☑√") || glyphLeader.MatchString(line) {
			if m := leadingLetter.FindStringSubmatch(line); m != nil {
				c := m[1][0]
				if c >= 'a' {
					c -= 'a' - 'A'
				}
				return int(c - 'A')
			}
		}
	}

	return 0
}
