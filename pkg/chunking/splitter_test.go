package chunking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBySizeEmptyInput(t *testing.T) {
	assert.Empty(t, splitBySize("", "Heading", TypeGeneral, "Heading", 100, 10))
	assert.Empty(t, splitBySize("   \n\n  ", "Heading", TypeGeneral, "Heading", 100, 10))
}

func TestSplitBySizeSingleSmallParagraph(t *testing.T) {
	fragments := splitBySize("just a few words here", "Notes", TypeGeneral, "Notes", 100, 10)

	require.Len(t, fragments, 1)
	assert.Equal(t, "Notes", fragments[0].Heading)
	assert.Equal(t, 5, fragments[0].WordCount)
}

func TestSplitBySizePacksParagraphs(t *testing.T) {
	para := strings.Repeat("word ", 20)
	text := strings.TrimSpace(para) + "\n\n" + strings.TrimSpace(para) + "\n\n" + strings.TrimSpace(para)

	fragments := splitBySize(text, "Notes", TypeGeneral, "Notes", 45, 10)

	require.Len(t, fragments, 2)
	assert.Equal(t, "Notes", fragments[0].Heading)
	assert.Equal(t, "Notes (Part 2)", fragments[1].Heading)
	assert.Equal(t, 40, fragments[0].WordCount)
	assert.Equal(t, 20, fragments[1].WordCount)
}

func TestSplitBySizeFinalBufferAlwaysEmitted(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 30)) + "\n\ntail"

	fragments := splitBySize(text, "Notes", TypeGeneral, "Notes", 30, 5)

	require.Len(t, fragments, 2)
	assert.Equal(t, "tail", fragments[1].Text)
	assert.Equal(t, 1, fragments[1].WordCount)
}

func TestSplitBySizeLineFallback(t *testing.T) {
	// No blank lines at all, so individual lines become the pack unit.
	text := strings.TrimSpace(strings.Repeat("word ", 20)) + "\n" + strings.TrimSpace(strings.Repeat("word ", 20))

	fragments := splitBySize(text, "Notes", TypeGeneral, "Notes", 25, 10)

	require.Len(t, fragments, 2)
}

func TestSplitSentences(t *testing.T) {
	sentences := splitSentences("First one. Second one! Third one? And a trailing fragment")

	require.Len(t, sentences, 4)
	assert.Equal(t, "First one.", sentences[0])
	assert.Equal(t, "Second one!", sentences[1])
	assert.Equal(t, "Third one?", sentences[2])
	assert.Equal(t, "And a trailing fragment", sentences[3])
}

func TestSplitBySentencesRespectsBudget(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("This sentence has exactly seven words in it. ")
	}

	fragments := splitBySentences(b.String(), "Post", TypeContent, "Post", 30)

	require.NotEmpty(t, fragments)
	for _, frag := range fragments {
		assert.LessOrEqual(t, frag.WordCount, 30)
		assert.False(t, strings.HasSuffix(frag.Text, " "))
	}
	assert.Equal(t, "Post", fragments[0].Heading)
	assert.Equal(t, "Post (Part 2)", fragments[1].Heading)
}
