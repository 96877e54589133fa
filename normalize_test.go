package quizai

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"crlf to lf", "Câu 1\r\nA) Đúng\r\nB) Sai", "Câu 1\nA) Đúng\nB) Sai"},
		{"tabs to spaces", "A)\tĐúng\tnhất", "A) Đúng nhất"},
		{"collapse newline runs", "Title\n\n\n\n\nCâu 1", "Title\n\nCâu 1"},
		{"trim surrounding whitespace", "  \n\nCâu 1\n\n  ", "Câu 1"},
		{"double newline preserved", "Title\n\nCâu 1", "Title\n\nCâu 1"},
		{"empty", "", ""},
		{"mixed", "\r\n\tCâu 1\r\n\r\n\r\n\r\nA) x\r\n", "Câu 1\n\nA) x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeText(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := NormalizeText(got); again != got {
				t.Errorf("NormalizeText is not idempotent: %q -> %q", got, again)
			}
		})
	}
}
