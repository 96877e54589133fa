package quizai

import (
	"regexp"
	"strings"
)

// fallbackTemplate is one whole-document extraction pattern together with the
// submatch indexes of the stem, the option-line run and the optional trailing
// answer letter.
type fallbackTemplate struct {
	pattern *regexp.Regexp
	stem    int
	options int
	answer  int
}

var fallbackTemplates = []fallbackTemplate{
	// "1. Question?\nA) ...\nB) ...\nAnswer: A"
	{
		pattern: regexp.MustCompile(`(?im)^(\d+)[.):\s]+(.+?)(?:\n|$)((?:[A-D][.):\s]+.+(?:\n|$))+)(?:(?:Đáp án|Answer|Correct|Correct answer)[:\s]+([A-D]))?`),
		stem:    2,
		options: 3,
		answer:  4,
	},
	// "Câu 1:\nQuestion text\nA) ...\nB) ...\nĐáp án: A"
	{
		pattern: regexp.MustCompile(`(?im)^(?:Câu|Question|Bài|Q\.?)\s*\d+[.):\s]*(.+?)(?:\n|$)((?:[A-D][.):\s]+.+(?:\n|$))+)(?:(?:Đáp án|Answer)[:\s]+([A-D]))?`),
		stem:    1,
		options: 2,
		answer:  3,
	},
}

// fallbackOption anchors one option line inside a template's option run.
var fallbackOption = regexp.MustCompile(`(?i)^[A-D][.):\-\s]+(.+)$`)

// ExtractQuestionsFallback is the whole-document regex pass, run only after
// the section pass yields zero questions. Templates are tried in order and
// the first one producing at least one question short-circuits the rest.
// Unlike the section pass, the answer index here is clamped into the option
// range.
func ExtractQuestionsFallback(normalized string) []ExtractedQuestion {
	for _, tpl := range fallbackTemplates {
		var questions []ExtractedQuestion

		for _, m := range tpl.pattern.FindAllStringSubmatch(normalized, -1) {
			stem := strings.TrimSpace(m[tpl.stem])
			if stem == "" {
				continue
			}

			var options []string
			for _, line := range strings.Split(m[tpl.options], "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if om := fallbackOption.FindStringSubmatch(line); om != nil {
					options = append(options, strings.TrimSpace(om[1]))
				}
			}
			if len(options) < 2 {
				continue
			}

			letter := strings.ToUpper(m[tpl.answer])
			if letter == "" {
				letter = "A"
			}

			questions = append(questions, ExtractedQuestion{
				Content:       stem,
				Options:       options,
				CorrectAnswer: clampIndex(int(letter[0]-'A'), len(options)),
				Type:          TypeMultipleChoice,
			})
		}

		if len(questions) > 0 {
			return questions
		}
	}
	return nil
}

// clampIndex forces i into [0, n-1].
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
