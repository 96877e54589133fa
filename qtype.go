package quizai

import (
	"regexp"
	"strings"
)

// ipaSymbols matches slash-delimited phonetic transcription or bare IPA
// letters in option text.
var ipaSymbols = regexp.MustCompile(`/[a-z]+/|[ˈˌŋʃʒθð]|tʃ|dʒ`)

// ClassifyQuestionType derives the question type from the stem and the raw
// option text. Rules are checked in order and the first match wins.
func ClassifyQuestionType(stem, optionsText string) QuestionType {
	combined := strings.ToUpper(stem + " " + optionsText)

	if strings.Contains(combined, "_") {
		return TypeFillInBlank
	}

	if ipaSymbols.MatchString(optionsText) {
		return TypePronunciation
	}

	// Unreachable while the underscore check above fires first; only
	// relevant if that check is ever narrowed.
	if strings.Contains(optionsText, "_") && strings.Contains(stem, "underline") {
		return TypePronunciation
	}

	return TypeMultipleChoice
}
