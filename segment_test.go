package quizai

import (
	"reflect"
	"testing"
)

func TestSplitSections(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			"blocks cut on blank lines",
			"Chọn đáp án đúng\ncho các câu sau\n\nCâu 1:\nA) x\nB) y",
			[][]string{
				{"Chọn đáp án đúng", "cho các câu sau"},
				{"Câu 1:", "A) x", "B) y"},
			},
		},
		{
			"whitespace-only lines dropped",
			"Câu 1:\n   \nA) x",
			[][]string{{"Câu 1:", "A) x"}},
		},
		{
			"longer blank runs still split once",
			"một\n\n\n\nhai",
			[][]string{{"một"}, {"hai"}},
		},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSections(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitSections(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsTitleSection(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  bool
	}{
		{"multi-line prose", []string{"Đọc đoạn văn sau", "và trả lời câu hỏi"}, true},
		{"single line is never a title", []string{"Đọc đoạn văn sau"}, false},
		{"option marker disqualifies", []string{"Câu 1:", "A) Đúng"}, false},
		{"marker mid-block disqualifies", []string{"chọn một", "trong hai: C) ba"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTitleSection(tt.lines); got != tt.want {
				t.Errorf("isTitleSection(%v) = %v, want %v", tt.lines, got, tt.want)
			}
		})
	}
}
