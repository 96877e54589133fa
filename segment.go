package quizai

import (
	"regexp"
	"strings"
)

var sectionSplit = regexp.MustCompile(`\n\n+`)

// optionMarker is the shape of one answer choice: a capital letter A-D, a
// separator, then text.
var optionMarker = regexp.MustCompile(`[A-D][.):\s]+\S`)

// splitSections cuts normalized text on blank-line runs. Each section is the
// trimmed non-empty lines of one block; empty blocks are dropped.
func splitSections(normalized string) [][]string {
	var sections [][]string
	for _, block := range sectionSplit.Split(normalized, -1) {
		var lines []string
		for _, line := range strings.Split(block, "\n") {
			if l := strings.TrimSpace(line); l != "" {
				lines = append(lines, l)
			}
		}
		if len(lines) > 0 {
			sections = append(sections, lines)
		}
	}
	return sections
}

// containsOptions reports whether text holds at least one option marker.
func containsOptions(text string) bool {
	return optionMarker.MatchString(text)
}

// isTitleSection marks a multi-line block with no option marker anywhere as a
// title. Titles become the running current title and attach to a later
// question block that has no stem of its own.
func isTitleSection(lines []string) bool {
	return len(lines) > 1 && !containsOptions(strings.Join(lines, "\n"))
}
