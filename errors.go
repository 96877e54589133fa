package quizai

import "errors"

// ErrNoQuestionsFound is returned when neither the section pass nor the
// fallback templates produce a single question. The message lists the two
// supported input formats because it is surfaced to the user as-is.
var ErrNoQuestionsFound = errors.New(
	"no questions found in text. Please ensure text contains questions in supported formats:\n" +
		"1. \"1. Question?\nA) Option A\nB) Option B\nC) Option C\nD) Option D\nAnswer: A\"\n" +
		"2. \"Câu 1:\nQuestion text\nA) Option\nB) Option\nC) Option\nD) Option\nĐáp án: A\"\n" +
		"Questions must have at least 2 options")

// MalformedReplyError reports a stage-2 reply whose JSON could not be
// recovered at all: either no array envelope was present or not one object
// inside it parsed.
type MalformedReplyError struct {
	Reason string
}

func (e *MalformedReplyError) Error() string {
	return "malformed model reply: " + e.Reason
}
