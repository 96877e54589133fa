package quizai

import "strings"

// DefaultExplanation is attached to drafts that arrive without one.
const DefaultExplanation = "Không có giải thích"

var levelSynonyms = map[string]DifficultyLevel{
	"easy":       LevelEasy,
	"simple":     LevelEasy,
	"elementary": LevelEasy,
	"beginner":   LevelEasy,
	"basic":      LevelEasy,

	"medium":       LevelMedium,
	"intermediate": LevelMedium,
	"middle":       LevelMedium,
	"moderate":     LevelMedium,

	"hard":      LevelHard,
	"difficult": LevelHard,
	"advanced":  LevelHard,
	"complex":   LevelHard,
	"expert":    LevelHard,
}

// NormalizeLevel maps free-form difficulty wording onto easy/medium/hard.
// Unrecognized or absent input is medium.
func NormalizeLevel(level string) DifficultyLevel {
	if l, ok := levelSynonyms[strings.ToLower(strings.TrimSpace(level))]; ok {
		return l
	}
	return LevelMedium
}

// ValidateDrafts drops unusable drafts and fills defaults on the survivors.
// A draft needs a non-empty question and either options or a correct answer
// to survive; everything else is normalized in place: type defaults to
// multiple_choice, explanation to DefaultExplanation and level through the
// synonym map.
func ValidateDrafts(drafts []AIQuestionDraft) []AIQuestionDraft {
	valid := make([]AIQuestionDraft, 0, len(drafts))
	for _, d := range drafts {
		if strings.TrimSpace(d.Question) == "" {
			continue
		}
		if len(d.Options) == 0 && d.CorrectAnswer == "" {
			continue
		}

		if d.Type == "" {
			d.Type = DraftTypeMultipleChoice
		}
		if d.Explanation == "" {
			d.Explanation = DefaultExplanation
		}
		d.Level = NormalizeLevel(string(d.Level))

		valid = append(valid, d)
	}
	return valid
}
