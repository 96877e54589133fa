package quizai

import (
	"reflect"
	"testing"
)

func TestParseQuestionBlock(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		title string
		want  ExtractedQuestion
		ok    bool
	}{
		{
			name:  "stem and options share the first line",
			lines: []string{"Question 1: A. Paris B. London C. Rome D. Berlin", "Answer: B"},
			want: ExtractedQuestion{
				Content:       "A. Paris B. London C. Rome D. Berlin",
				Options:       []string{"Paris", "London", "Rome", "Berlin"},
				CorrectAnswer: 1,
				Type:          TypeMultipleChoice,
			},
			ok: true,
		},
		{
			name:  "bare identifier takes the running title",
			lines: []string{"Câu 1:", "A) Đúng", "B) Sai"},
			title: "Chọn câu trả lời đúng",
			want: ExtractedQuestion{
				Content:       "Chọn câu trả lời đúng",
				Options:       []string{"Đúng", "Sai"},
				CorrectAnswer: 0,
				Type:          TypeMultipleChoice,
			},
			ok: true,
		},
		{
			name:  "answer line excluded from option values",
			lines: []string{"Câu 2: Thủ đô của Pháp?", "A) Hà Nội", "B) Paris", "C) London", "Đáp án: B"},
			want: ExtractedQuestion{
				Content:       "Thủ đô của Pháp?",
				Options:       []string{"Hà Nội", "Paris", "London"},
				CorrectAnswer: 1,
				Type:          TypeMultipleChoice,
			},
			ok: true,
		},
		{
			name:  "stem on its own line classifies fill in blank",
			lines: []string{"1. She ___ to school.", "A) go", "B) goes", "Answer: B"},
			want: ExtractedQuestion{
				Content:       "She ___ to school.",
				Options:       []string{"go", "goes"},
				CorrectAnswer: 1,
				Type:          TypeFillInBlank,
			},
			ok: true,
		},
		{
			name:  "no question identifier",
			lines: []string{"This block is just prose", "A) x", "B) y"},
			ok:    false,
		},
		{
			name:  "fewer than two options",
			lines: []string{"1. Question?", "A) only one"},
			ok:    false,
		},
		{
			name: "empty block",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseQuestionBlock(tt.lines, tt.title)
			if ok != tt.ok {
				t.Fatalf("parseQuestionBlock(%v) ok = %v, want %v", tt.lines, ok, tt.ok)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseQuestionBlock(%v) = %+v, want %+v", tt.lines, got, tt.want)
			}
		})
	}
}
