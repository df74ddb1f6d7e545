package chunking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSectionsMarkdownHeaders(t *testing.T) {
	text := "# About Me\nI am a software engineer who builds backend systems and distributed data pipelines for a living.\n\n" +
		"## Side Interests\nOutside of coding I enjoy climbing, cooking elaborate meals, and reading long books about history."

	sections := SplitSections(text)

	require.Len(t, sections, 2)
	assert.Equal(t, "About Me", sections[0].Heading)
	assert.Equal(t, "Side Interests", sections[1].Heading)
	assert.Contains(t, sections[0].Body, "backend systems")
	assert.Contains(t, sections[1].Body, "climbing")
}

func TestSplitSectionsNoMarkers(t *testing.T) {
	text := "A plain paragraph of text with no structure at all, just enough words to clear the noise floor comfortably."

	sections := SplitSections(text)

	require.Len(t, sections, 1)
	assert.Equal(t, "Profile", sections[0].Heading)
	assert.Equal(t, text, sections[0].Body)
}

func TestSplitSectionsLeadingContentGetsDefaultHeading(t *testing.T) {
	text := "An introductory paragraph before any marker, long enough that it clears the section noise floor easily.\n\n" +
		"## Details\nMore text under a real heading, also long enough that it clears the section noise floor easily."

	sections := SplitSections(text)

	require.Len(t, sections, 2)
	assert.Equal(t, "Profile", sections[0].Heading)
	assert.Equal(t, "Details", sections[1].Heading)
}

func TestSplitSectionsDropsShortSpans(t *testing.T) {
	text := "## First\nGo Python SQL\n\n" +
		"## Second\nA longer body that has more than ten words in it so it definitely survives the floor."

	sections := SplitSections(text)

	require.Len(t, sections, 1)
	assert.Equal(t, "Second", sections[0].Heading)
}

func TestSplitSectionsAllCapsHeading(t *testing.T) {
	text := "EDUCATION\nA degree in computer science from a well regarded institution, completed with first class honours overall."

	sections := SplitSections(text)

	require.Len(t, sections, 1)
	assert.Equal(t, "EDUCATION", sections[0].Heading)
}

func TestSplitSectionsBoldHeading(t *testing.T) {
	text := "**Career History**\nSeveral years spent shipping production services, mentoring colleagues, and occasionally deleting code that nobody missed afterwards."

	sections := SplitSections(text)

	require.Len(t, sections, 1)
	assert.Equal(t, "Career History", sections[0].Heading)
}

func TestSplitSectionsDeterministic(t *testing.T) {
	text := "INTRO SECTION\nBody one is long enough to survive the floor with a comfortable margin to spare here.\n\n" +
		"---\n\n**Another Part**\nBody two is also long enough to survive the floor with a comfortable margin to spare."

	first := SplitSections(text)
	second := SplitSections(text)

	assert.Equal(t, first, second)
}
