package quizai

import "testing"

func TestNormalizeLevel(t *testing.T) {
	tests := []struct {
		input string
		want  DifficultyLevel
	}{
		{"easy", LevelEasy},
		{"elementary", LevelEasy},
		{"Beginner", LevelEasy},
		{"  BASIC  ", LevelEasy},
		{"medium", LevelMedium},
		{"intermediate", LevelMedium},
		{"moderate", LevelMedium},
		{"hard", LevelHard},
		{"advanced", LevelHard},
		{"EXPERT", LevelHard},
		{"", LevelMedium},
		{"nonsense", LevelMedium},
	}

	for _, tt := range tests {
		if got := NormalizeLevel(tt.input); got != tt.want {
			t.Errorf("NormalizeLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeLevelCoversAllSynonyms(t *testing.T) {
	for synonym := range levelSynonyms {
		got := NormalizeLevel(synonym)
		if got != LevelEasy && got != LevelMedium && got != LevelHard {
			t.Errorf("NormalizeLevel(%q) = %q, not a canonical level", synonym, got)
		}
	}
}

func TestValidateDrafts(t *testing.T) {
	input := []AIQuestionDraft{
		{
			Question:      "Câu hỏi đầy đủ?",
			Type:          DraftTypeMultipleChoice,
			Options:       []DraftOption{{Text: "A. x", IsCorrect: true}, {Text: "B. y"}},
			CorrectAnswer: "A",
			Explanation:   "vì sao",
			Level:         "easy",
		},
		{Question: "   ", CorrectAnswer: "A"},
		{Question: "Không có đáp án lẫn lựa chọn"},
		{Question: "Thiếu mọi trường phụ", CorrectAnswer: "B", Level: "advanced"},
	}

	got := ValidateDrafts(input)
	if len(got) != 2 {
		t.Fatalf("ValidateDrafts() kept %d drafts, want 2", len(got))
	}

	if got[0].Level != LevelEasy || got[0].Explanation != "vì sao" {
		t.Errorf("first draft mutated unexpectedly: %+v", got[0])
	}

	filled := got[1]
	if filled.Type != DraftTypeMultipleChoice {
		t.Errorf("Type = %q, want default %q", filled.Type, DraftTypeMultipleChoice)
	}
	if filled.Explanation != DefaultExplanation {
		t.Errorf("Explanation = %q, want %q", filled.Explanation, DefaultExplanation)
	}
	if filled.Level != LevelHard {
		t.Errorf("Level = %q, want %q", filled.Level, LevelHard)
	}
}

func TestValidateDraftsEmpty(t *testing.T) {
	if got := ValidateDrafts(nil); len(got) != 0 {
		t.Errorf("ValidateDrafts(nil) = %v, want empty", got)
	}
}

func TestPointsForLevel(t *testing.T) {
	tests := []struct {
		level DifficultyLevel
		want  int
	}{
		{LevelEasy, 1},
		{LevelMedium, 2},
		{LevelHard, 3},
		{"", 1},
		{"weird", 1},
	}
	for _, tt := range tests {
		if got := PointsForLevel(tt.level); got != tt.want {
			t.Errorf("PointsForLevel(%q) = %d, want %d", tt.level, got, tt.want)
		}
	}
}
