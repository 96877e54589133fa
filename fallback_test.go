package quizai

import (
	"reflect"
	"testing"
)

func TestExtractQuestionsFallback(t *testing.T) {
	t.Run("numbered template", func(t *testing.T) {
		text := "1. What is the capital of France?\nA) Paris\nB) London\nC) Rome\nAnswer: B\n\n2. What is 2+2?\nA) 3\nB) 4\nC) 5\nAnswer: B"

		got := ExtractQuestionsFallback(text)
		want := []ExtractedQuestion{
			{
				Content:       "What is the capital of France?",
				Options:       []string{"Paris", "London", "Rome"},
				CorrectAnswer: 1,
				Type:          TypeMultipleChoice,
			},
			{
				Content:       "What is 2+2?",
				Options:       []string{"3", "4", "5"},
				CorrectAnswer: 1,
				Type:          TypeMultipleChoice,
			},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ExtractQuestionsFallback() = %+v, want %+v", got, want)
		}
	})

	t.Run("keyword template", func(t *testing.T) {
		text := "Câu 1: Thủ đô của Việt Nam là gì?\nA) Hà Nội\nB) Huế\nC) Đà Nẵng\nĐáp án: A"

		got := ExtractQuestionsFallback(text)
		if len(got) != 1 {
			t.Fatalf("ExtractQuestionsFallback() returned %d questions, want 1", len(got))
		}
		if got[0].Content != "Thủ đô của Việt Nam là gì?" {
			t.Errorf("Content = %q", got[0].Content)
		}
		if got[0].CorrectAnswer != 0 {
			t.Errorf("CorrectAnswer = %d, want 0", got[0].CorrectAnswer)
		}
		if len(got[0].Options) != 3 {
			t.Errorf("Options = %v, want 3 entries", got[0].Options)
		}
	})

	t.Run("first productive template wins", func(t *testing.T) {
		text := "1. Pick a number\nA) one\nB) two\n\nCâu 1: Thủ đô của Việt Nam là gì?\nA) Hà Nội\nB) Huế"

		got := ExtractQuestionsFallback(text)
		if len(got) != 1 {
			t.Fatalf("ExtractQuestionsFallback() returned %d questions, want 1", len(got))
		}
		if got[0].Content != "Pick a number" {
			t.Errorf("Content = %q, want question from first template only", got[0].Content)
		}
	})

	t.Run("missing answer defaults to first option", func(t *testing.T) {
		got := ExtractQuestionsFallback("3. Choose one\nA) x\nB) y")
		if len(got) != 1 {
			t.Fatalf("ExtractQuestionsFallback() returned %d questions, want 1", len(got))
		}
		if got[0].CorrectAnswer != 0 {
			t.Errorf("CorrectAnswer = %d, want 0", got[0].CorrectAnswer)
		}
	})

	t.Run("out of range answer letter clamps", func(t *testing.T) {
		got := ExtractQuestionsFallback("1. Pick one\nA) yes\nB) no\nAnswer: D")
		if len(got) != 1 {
			t.Fatalf("ExtractQuestionsFallback() returned %d questions, want 1", len(got))
		}
		if got[0].CorrectAnswer != 1 {
			t.Errorf("CorrectAnswer = %d, want 1 (clamped into option range)", got[0].CorrectAnswer)
		}
	})

	t.Run("no template matches", func(t *testing.T) {
		if got := ExtractQuestionsFallback("chỉ là một đoạn văn bình thường"); got != nil {
			t.Errorf("ExtractQuestionsFallback() = %v, want nil", got)
		}
	})
}

func TestClampIndex(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 4, 0},
		{3, 4, 3},
		{5, 4, 3},
		{-1, 4, 0},
		{2, 2, 1},
	}
	for _, tt := range tests {
		if got := clampIndex(tt.i, tt.n); got != tt.want {
			t.Errorf("clampIndex(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}
