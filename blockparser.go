package quizai

import (
	"regexp"
	"strings"
)

// questionIdent anchors a question block: an optional keyword, digits and an
// optional separator, with the rest of the line captured as the stem.
var questionIdent = regexp.MustCompile(`(?i)^(?:Question|Câu|Bài|Q\.?|№)?\s*\d+[.):\s-]*(.*)$`)

// labelPrefix strips a leading "Câu 1:" style label off a line.
var labelPrefix = regexp.MustCompile(`^[^:]+:\s*`)

// parseQuestionBlock extracts one question from the trimmed lines of a block.
// Absence of a result is the only failure signal: blocks whose first line is
// not a question identifier, or that yield fewer than two options, contribute
// nothing and the caller moves on.
func parseQuestionBlock(lines []string, currentTitle string) (ExtractedQuestion, bool) {
	if len(lines) == 0 {
		return ExtractedQuestion{}, false
	}

	m := questionIdent.FindStringSubmatch(lines[0])
	if m == nil {
		return ExtractedQuestion{}, false
	}

	stem := strings.TrimSpace(m[1])

	var optionsText string
	if stem != "" && containsOptions(stem) {
		// Stem and options share the first line ("Question 1: A. x B. y").
		// Strip the label and re-derive the options from that single line.
		optionsText = labelPrefix.ReplaceAllString(lines[0], "")
	} else {
		// Options on the following lines. Answer-marker lines are carriers
		// of the correct letter, not option values, so they stay out of the
		// option text but remain visible to the answer detector below.
		var optionLines []string
		for _, line := range lines[1:] {
			if !answerLine.MatchString(line) {
				optionLines = append(optionLines, line)
			}
		}
		optionsText = strings.Join(optionLines, "\n")
	}

	options := ExtractOptions(optionsText)
	if len(options) < 2 {
		return ExtractedQuestion{}, false
	}

	content := stem
	if content == "" {
		content = currentTitle
	}

	return ExtractedQuestion{
		Content:       content,
		Options:       options,
		CorrectAnswer: DetectCorrectAnswer(lines),
		Type:          ClassifyQuestionType(stem, optionsText),
	}, true
}
