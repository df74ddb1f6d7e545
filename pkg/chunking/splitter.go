package chunking

import (
	"fmt"
	"regexp"
	"strings"
)

var sentencePattern = regexp.MustCompile(`[^.!?\n]+[.!?]+|[^.!?\n]+`)

// partHeading suffixes the heading for the second and later chunks split
// from one section, so "Skills" becomes "Skills (Part 2)" and so on.
func partHeading(heading string, part int) string {
	if part == 0 {
		return heading
	}
	return fmt.Sprintf("%s (Part %d)", heading, part+1)
}

// splitParagraphs returns blank-line-delimited paragraphs, falling back to
// individual lines when the text contains no blank lines at all.
func splitParagraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	if len(parts) <= 1 {
		parts = strings.Split(text, "\n")
	}
	paragraphs := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}

// splitSentences splits text on sentence-ending punctuation. Text without
// terminal punctuation comes back as a single sentence.
func splitSentences(text string) []string {
	matches := sentencePattern.FindAllString(text, -1)
	sentences := make([]string, 0, len(matches))
	for _, match := range matches {
		if trimmed := strings.TrimSpace(match); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// splitBySize is the universal fallback splitter: it greedily packs
// paragraphs into chunks of at most maxWords. A chunk is only closed once
// it holds at least minWords, and the final buffer is always emitted so no
// content is lost, even when it lands under the floor. Degenerate input
// yields no fragments.
func splitBySize(text, heading string, chunkType ChunkType, parent string, maxWords, minWords int) []fragment {
	var fragments []fragment
	emit := func(buffer string) {
		fragments = append(fragments, fragment{
			Text:          buffer,
			Heading:       partHeading(heading, len(fragments)),
			ChunkType:     chunkType,
			WordCount:     countWords(buffer),
			ParentHeading: parent,
		})
	}

	current := ""
	for _, paragraph := range splitParagraphs(text) {
		combined := strings.TrimSpace(current + "\n\n" + paragraph)
		if countWords(combined) > maxWords && countWords(current) >= minWords {
			emit(current)
			current = paragraph
		} else {
			current = combined
		}
	}
	if current != "" {
		emit(current)
	}

	return fragments
}

// splitBySentences packs sentences instead of paragraphs. Used for long
// prose sections (blog posts, READMEs) where paragraph boundaries are too
// coarse to respect the word budget.
func splitBySentences(text, heading string, chunkType ChunkType, parent string, maxWords int) []fragment {
	var fragments []fragment
	emit := func(buffer []string) {
		joined := strings.Join(buffer, " ")
		fragments = append(fragments, fragment{
			Text:          joined,
			Heading:       partHeading(heading, len(fragments)),
			ChunkType:     chunkType,
			WordCount:     countWords(joined),
			ParentHeading: parent,
		})
	}

	var current []string
	currentWords := 0
	for _, sentence := range splitSentences(text) {
		sentenceWords := countWords(sentence)
		if currentWords+sentenceWords > maxWords && len(current) > 0 {
			emit(current)
			current = nil
			currentWords = 0
		}
		current = append(current, sentence)
		currentWords += sentenceWords
	}
	if len(current) > 0 {
		emit(current)
	}

	return fragments
}
