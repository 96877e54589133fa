package quizai

import "strings"

// ExtractQuestions turns a block of pasted or decoded exam text into
// structured questions. The section pass runs first: the text is normalized,
// split on blank-line runs, and each block is either remembered as the
// running title or parsed as a question. When that pass produces nothing the
// whole-document fallback templates run. Zero questions from both passes is
// ErrNoQuestionsFound; there is no other failure mode.
func ExtractQuestions(text string) ([]ExtractedQuestion, error) {
	normalized := NormalizeText(text)

	var questions []ExtractedQuestion
	currentTitle := ""
	for _, lines := range splitSections(normalized) {
		if isTitleSection(lines) {
			currentTitle = strings.Join(lines, " ")
			continue
		}
		if q, ok := parseQuestionBlock(lines, currentTitle); ok {
			questions = append(questions, q)
		}
	}

	if len(questions) == 0 {
		questions = ExtractQuestionsFallback(normalized)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestionsFound
	}
	return questions, nil
}
