package chunking

import (
	"regexp"
	"sort"
	"strings"
)

// Entry boundary cues. Each pattern marks the start of a new job or a new
// qualification inside an experience or education section. They anchor on
// the newline so a match mid-line never opens an entry.
var (
	experienceCues = []*regexp.Regexp{
		regexp.MustCompile(`\n\s*\*\*[^*\n]+\*\*`),
		regexp.MustCompile(`\n\s*[A-Z][^|\n]*\|\s*\d{4}`),
		regexp.MustCompile(`\n\s*\d{4}\s*[-–]\s*\d{4}`),
		regexp.MustCompile(`\n\s*[A-Z][A-Za-z &,]+,\s*[A-Z]`),
	}
	educationCues = []*regexp.Regexp{
		regexp.MustCompile(`\n\s*\*\*[^*\n]+\*\*`),
		regexp.MustCompile(`\n\s*[A-Z][^\n]*(?:University|College|Institute|School)`),
		regexp.MustCompile(`\n\s*(?:Bachelor|Master|PhD|BSc|MSc|BA|MA|MBA)\b[^\n]*`),
	}

	boldSpanPattern    = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	pipePrefixPattern  = regexp.MustCompile(`^([^|\n]+)\|`)
	bulletSplitPattern = regexp.MustCompile(`\n\s*[•*-]\s+`)
)

// subchunk turns one classified section into fragments, choosing the
// strategy for its category. Experience, education and skills sections
// always go through their structure-aware splitters, whatever their size:
// a short section holding two jobs still yields one fragment per job.
// Other categories pass through whole when they fit the budget.
func subchunk(section Section, category ChunkType, cfg Config) []fragment {
	switch category {
	case TypeExperience:
		return splitEntries(section, category, experienceCues, "Position", cfg)
	case TypeEducation:
		return splitEntries(section, category, educationCues, "Education", cfg)
	case TypeSkills:
		return splitBullets(section, cfg)
	}

	return wholeOrBySize(section, category, cfg)
}

// wholeOrBySize emits the section verbatim as one fragment when it fits
// the budget, and size-splits it otherwise. It is also the fallback for
// sections whose category splitter found no usable structure.
func wholeOrBySize(section Section, category ChunkType, cfg Config) []fragment {
	if countWords(section.Body) <= cfg.MaxWords {
		return []fragment{{
			Text:          section.Body,
			Heading:       section.Heading,
			ChunkType:     category,
			WordCount:     countWords(section.Body),
			ParentHeading: section.Heading,
		}}
	}
	return splitBySize(section.Body, section.Heading, category, section.Heading, cfg.MaxWords, cfg.MinWords)
}

// splitEntries cuts a section at entry boundaries (new job, new degree).
// Cues are tried in order and the first one matching at least twice wins;
// mixing cue kinds would split a heading line away from the body that
// follows it. Offset zero always counts as a boundary so text before the
// first cue is never lost. Without a usable cue the structure is too weak
// to trust and the section is kept whole, or size-split when over budget.
func splitEntries(section Section, category ChunkType, cues []*regexp.Regexp, fallbackTitle string, cfg Config) []fragment {
	// The leading newline lets an entry at the very start of the body
	// match the newline-anchored cues.
	padded := "\n" + section.Body

	var boundaries []int
	for _, cue := range cues {
		locs := cue.FindAllStringIndex(padded, -1)
		if len(locs) < 2 {
			continue
		}
		for _, loc := range locs {
			boundaries = append(boundaries, loc[0])
		}
		break
	}
	if len(boundaries) == 0 {
		return wholeOrBySize(section, category, cfg)
	}
	if boundaries[0] != 0 {
		boundaries = append([]int{0}, boundaries...)
	}
	sort.Ints(boundaries)

	var fragments []fragment
	for i, start := range boundaries {
		end := len(section.Body)
		if i+1 < len(boundaries) {
			end = boundaries[i+1]
		}
		entry := strings.TrimSpace(section.Body[start:end])
		if entry == "" || countWords(entry) < cfg.MinWords {
			continue
		}

		title := extractEntryTitle(entry, fallbackTitle)
		if countWords(entry) > cfg.MaxWords {
			fragments = append(fragments, splitBySize(entry, title, category, section.Heading, cfg.MaxWords, cfg.MinWords)...)
			continue
		}
		fragments = append(fragments, fragment{
			Text:          entry,
			Heading:       title,
			ChunkType:     category,
			WordCount:     countWords(entry),
			ParentHeading: section.Heading,
		})
	}

	if len(fragments) == 0 {
		return wholeOrBySize(section, category, cfg)
	}
	return fragments
}

// extractEntryTitle derives a heading for a single entry. Preference
// order: a bold span, the text before a pipe (company and date lines), a
// short first line, then the category fallback.
func extractEntryTitle(entry, fallback string) string {
	if match := boldSpanPattern.FindStringSubmatch(entry); match != nil {
		return strings.TrimSpace(match[1])
	}

	firstLine := entry
	if idx := strings.IndexByte(entry, '\n'); idx >= 0 {
		firstLine = entry[:idx]
	}
	firstLine = strings.TrimSpace(firstLine)

	if match := pipePrefixPattern.FindStringSubmatch(firstLine); match != nil {
		if title := strings.TrimSpace(match[1]); title != "" {
			return title
		}
	}
	if firstLine != "" && countWords(firstLine) <= 10 {
		return firstLine
	}
	return fallback
}

// splitBullets re-packs a bullet list into size-bounded groups, keeping
// each bullet intact. Skills sections are almost always bullet lists; one
// without bullets is kept whole, or size-split when over budget.
func splitBullets(section Section, cfg Config) []fragment {
	parts := bulletSplitPattern.Split("\n"+section.Body, -1)
	bullets := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			bullets = append(bullets, trimmed)
		}
	}
	if len(bullets) < 2 {
		return wholeOrBySize(section, TypeSkills, cfg)
	}

	var fragments []fragment
	emit := func(group []string) {
		text := "• " + strings.Join(group, "\n• ")
		fragments = append(fragments, fragment{
			Text:          text,
			Heading:       partHeading(section.Heading, len(fragments)),
			ChunkType:     TypeSkills,
			WordCount:     countWords(text),
			ParentHeading: section.Heading,
		})
	}

	var group []string
	groupWords := 0
	for _, bullet := range bullets {
		bulletWords := countWords(bullet) + 1
		if groupWords+bulletWords > cfg.MaxWords && len(group) > 0 {
			emit(group)
			group = nil
			groupWords = 0
		}
		group = append(group, bullet)
		groupWords += bulletWords
	}
	if len(group) > 0 {
		emit(group)
	}

	return fragments
}
