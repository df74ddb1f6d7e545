package chunking

import (
	"regexp"
	"sort"
	"strings"
)

// Section is a structurally delimited region of a document, labeled with
// the heading that introduced it, prior to any sub-chunking.
type Section struct {
	Heading string
	Body    string
}

// defaultHeading labels content that appears before any structural marker.
const defaultHeading = "Profile"

// defaultSectionFloor is the word count below which a span between two
// markers is assumed to be noise or a lone heading and dropped.
const defaultSectionFloor = 10

type markerKind int

// Marker kinds, in tie-break order for markers at the same position.
const (
	markerRule markerKind = iota
	markerBold
	markerHeader
	markerCaps
	markerKeyword
)

// marker is a single structural boundary occurrence in the source text.
type marker struct {
	start   int
	end     int
	heading string
	kind    markerKind
}

var (
	rulePattern     = regexp.MustCompile(`(?m)^[ \t]*[-=*]{3,}[ \t]*$`)
	boldLinePattern = regexp.MustCompile(`(?m)^[ \t]*\*\*([^*\n]+)\*\*[ \t]*$`)
	headerPattern   = regexp.MustCompile(`(?m)^[ \t]*#{1,6}[ \t]+([^\n]+?)[ \t]*$`)
	capsLinePattern = regexp.MustCompile(`(?m)^[ \t]*([A-Z][A-Z &/-]{7,})[ \t]*$`)
	keywordPattern  = buildKeywordPattern()
)

// resumeSectionNames are common resume headings matched case-insensitively
// anywhere in the text. Longer names come first so the alternation prefers
// the most specific match.
var resumeSectionNames = []string{
	"Professional Experience", "Work Experience", "Experience",
	"Technical Skills", "Core Competencies", "Skills",
	"Academic Background", "Qualifications", "Education",
	"Publications & Presentations", "Publications",
	"Key Projects", "Projects", "Leadership", "Volunteering",
}

func buildKeywordPattern() *regexp.Regexp {
	escaped := make([]string, len(resumeSectionNames))
	for i, name := range resumeSectionNames {
		escaped[i] = regexp.QuoteMeta(name)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(escaped, "|") + `)\b`)
}

// collectMarkers finds every structural marker of every kind and returns
// them sorted by position in the source text. The sort is stable and the
// tie-break is fixed, so identical input always yields identical markers.
func collectMarkers(text string) []marker {
	var markers []marker

	for _, loc := range rulePattern.FindAllStringIndex(text, -1) {
		markers = append(markers, marker{start: loc[0], end: loc[1], kind: markerRule})
	}
	for _, loc := range boldLinePattern.FindAllStringSubmatchIndex(text, -1) {
		heading := strings.TrimSpace(text[loc[2]:loc[3]])
		markers = append(markers, marker{start: loc[0], end: loc[1], heading: heading, kind: markerBold})
	}
	for _, loc := range headerPattern.FindAllStringSubmatchIndex(text, -1) {
		heading := strings.TrimSpace(text[loc[2]:loc[3]])
		markers = append(markers, marker{start: loc[0], end: loc[1], heading: heading, kind: markerHeader})
	}
	for _, loc := range capsLinePattern.FindAllStringSubmatchIndex(text, -1) {
		heading := strings.TrimSpace(text[loc[2]:loc[3]])
		markers = append(markers, marker{start: loc[0], end: loc[1], heading: heading, kind: markerCaps})
	}
	for _, loc := range keywordPattern.FindAllStringIndex(text, -1) {
		markers = append(markers, marker{start: loc[0], end: loc[1], heading: text[loc[0]:loc[1]], kind: markerKeyword})
	}

	sort.SliceStable(markers, func(i, j int) bool {
		if markers[i].start != markers[j].start {
			return markers[i].start < markers[j].start
		}
		if markers[i].end != markers[j].end {
			return markers[i].end > markers[j].end
		}
		return markers[i].kind < markers[j].kind
	})

	return markers
}

// SplitSections cuts text into contiguous labeled spans at structural
// markers. The heading preceding a span labels it; content before the
// first marker falls under the default heading. Spans shorter than the
// section floor are dropped. Without any marker the whole text becomes a
// single section.
func SplitSections(text string) []Section {
	return splitSections(text, defaultSectionFloor)
}

func splitSections(text string, floor int) []Section {
	markers := collectMarkers(text)

	var sections []Section
	pos := 0
	heading := defaultHeading

	emit := func(start, end int) {
		body := strings.TrimSpace(text[start:end])
		if body != "" && countWords(body) > floor {
			sections = append(sections, Section{Heading: heading, Body: body})
		}
	}

	for _, m := range markers {
		if m.start > pos {
			emit(pos, m.start)
		}
		if m.heading != "" {
			heading = m.heading
		}
		if m.end > pos {
			pos = m.end
		}
	}
	if pos < len(text) {
		emit(pos, len(text))
	}

	return sections
}
