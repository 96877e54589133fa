package quizai

import (
	"regexp"
	"strconv"
)

// Bounds on how many questions one generation request may ask for.
const (
	MinQuestions         = 1
	MaxQuestions         = 50
	DefaultQuestionCount = 5
)

// Tried in order; the first match wins.
var quantityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(?:câu|questions?|q|qestions)`),
	regexp.MustCompile(`(?i)tạo\s*(\d+)`),
	regexp.MustCompile(`(?i)create\s*(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\s*questions?`),
}

// ResolveQuestionCount reads the requested question count out of a free-form
// prompt such as "tạo 12 câu về động vật" or "create 20 questions". The value
// is clamped to [MinQuestions, MaxQuestions]; prompts that name no count get
// DefaultQuestionCount.
func ResolveQuestionCount(prompt string) int {
	for _, p := range quantityPatterns {
		m := p.FindStringSubmatch(prompt)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n < MinQuestions {
			return MinQuestions
		}
		if n > MaxQuestions {
			return MaxQuestions
		}
		return n
	}
	return DefaultQuestionCount
}
