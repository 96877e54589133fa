package quizai

import (
	"reflect"
	"testing"
)

func TestExtractOptions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"single line",
			"A. Paris B. London C. Rome D. Berlin",
			[]string{"Paris", "London", "Rome", "Berlin"},
		},
		{
			"one per line",
			"A) Hà Nội\nB) Huế\nC) Đà Nẵng",
			[]string{"Hà Nội", "Huế", "Đà Nẵng"},
		},
		{
			"value spanning lines",
			"A) first part\ncontinued here\nB) second",
			[]string{"first part\ncontinued here", "second"},
		},
		{
			"encounter order preserved",
			"B. second A. first",
			[]string{"second", "first"},
		},
		{
			"empty values dropped",
			"A. B. real C. more",
			[]string{"real", "more"},
		},
		{"no markers", "just some prose", nil},
		{
			"colon separator",
			"A: một B: hai",
			[]string{"một", "hai"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractOptions(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractOptions(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
