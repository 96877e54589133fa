package quizai

// QuestionType classifies a question extracted from exam text.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	TypeFillInBlank    QuestionType = "FILL_IN_BLANK"
	TypePronunciation  QuestionType = "PRONUNCIATION"
)

// ExtractedQuestion is one question pulled out of pasted or decoded exam text.
// CorrectAnswer is a 0-based index into Options. The section-based parser
// emits the index exactly as detected; only the fallback pass clamps it, so
// callers that persist questions clamp at their own boundary.
type ExtractedQuestion struct {
	Content       string       `json:"content"`
	Options       []string     `json:"options"`
	CorrectAnswer int          `json:"correctAnswer"`
	Type          QuestionType `json:"type"`
}

// DifficultyLevel is the normalized difficulty of an AI-generated question.
type DifficultyLevel string

const (
	LevelEasy   DifficultyLevel = "easy"
	LevelMedium DifficultyLevel = "medium"
	LevelHard   DifficultyLevel = "hard"
)

// Draft question types as emitted by the model.
const (
	DraftTypeMultipleChoice = "multiple_choice"
	DraftTypeTrueFalse      = "true_false"
	DraftTypeShortAnswer    = "short_answer"
)

// DraftOption is one lettered option of an AI question draft.
type DraftOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// AIQuestionDraft is an AI-produced question before persistence. Drafts come
// out of the JSON recovery pass and are only trustworthy after ValidateDrafts.
type AIQuestionDraft struct {
	Question      string          `json:"question"`
	Type          string          `json:"type"`
	Options       []DraftOption   `json:"options"`
	CorrectAnswer string          `json:"correctAnswer,omitempty"`
	Explanation   string          `json:"explanation,omitempty"`
	Level         DifficultyLevel `json:"level"`
}

// GenerationRequest asks for AI-generated questions. RequestedCount is
// normally zero and derived from the prompt text itself; Language falls back
// to detection over the prompt when empty.
type GenerationRequest struct {
	CustomPrompt   string `json:"custom_prompt"`
	Language       string `json:"language,omitempty"`
	RequestedCount int    `json:"requested_count,omitempty"`
}

// PointsForLevel maps difficulty to the default point value a question is
// stored with.
func PointsForLevel(level DifficultyLevel) int {
	switch level {
	case LevelEasy:
		return 1
	case LevelMedium:
		return 2
	case LevelHard:
		return 3
	default:
		return 1
	}
}
