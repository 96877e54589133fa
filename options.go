package quizai

import (
	"regexp"
	"strings"
)

var optionMarkerScan = regexp.MustCompile(`[A-D][.):\s]+`)

// ExtractOptions pulls lettered options out of text. Each option value runs
// from its marker to the next marker or the end of the text, so options may
// sit on one line or span several. Empty values are dropped. Options are
// emitted in the order their markers appear: malformed input with choices out
// of A/B/C/D order is preserved as encountered, never reordered.
func ExtractOptions(text string) []string {
	locs := optionMarkerScan.FindAllStringIndex(text, -1)
	var options []string
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		if value := strings.TrimSpace(text[loc[1]:end]); value != "" {
			options = append(options, value)
		}
	}
	return options
}
