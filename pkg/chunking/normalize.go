package chunking

import (
	"regexp"
	"strings"
)

var (
	// A table row is a pipe followed by one or more pipe-terminated cells.
	// Requiring at least two pipes keeps "Company | 2020" intact.
	tableRowPattern = regexp.MustCompile(`\|(?:[^|\n]*\|)+`)
	spaceRunPattern = regexp.MustCompile(`[ \t\r\f]+`)
	lineEdgePattern = regexp.MustCompile(`(?m)^ +| +$`)
	blankRunPattern = regexp.MustCompile(`\n{3,}`)
)

// Normalize strips markdown table artifacts and collapses whitespace.
// Runs of spaces and tabs become a single space, runs of blank lines
// become exactly one blank line, and paragraph structure is otherwise
// preserved. Normalize is idempotent.
func Normalize(raw string) string {
	text := tableRowPattern.ReplaceAllString(raw, " ")
	text = spaceRunPattern.ReplaceAllString(text, " ")
	text = lineEdgePattern.ReplaceAllString(text, "")
	text = blankRunPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
