package chunking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleQA = `# About Charlotte

## What do you do for a living
I build backend systems, mostly in Go, and spend the rest of my time reviewing other people's pull requests.

## What is your favourite language?
Go, because the tooling stays out of the way and the code reads the same in every repository.

## Short
Yes.
`

func TestChunkQA(t *testing.T) {
	chunks, err := ChunkQA(sampleQA, Config{})
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	first := chunks[0]
	assert.Equal(t, "What do you do for a living?", first.Heading)
	assert.True(t, strings.HasPrefix(first.Text, "Q: What do you do for a living?\n\nA: "))
	assert.Equal(t, TypeQA, first.ChunkType)
	assert.Equal(t, "qa-0", first.ID)

	second := chunks[1]
	assert.Equal(t, "What is your favourite language?", second.Heading)
	assert.True(t, strings.HasPrefix(second.Text, "Q: What is your favourite language?\n\nA: "))

	// Curated pairs stay whole even when the answer is a single word.
	third := chunks[2]
	assert.Equal(t, "Short", third.Heading)
	assert.Equal(t, "Q: Short\n\nA: Yes.", third.Text)
}

func TestChunkQAQuestionMarkRepair(t *testing.T) {
	chunks, err := ChunkQA("## How do you stay current\nMostly by reading release notes and breaking things on a branch.", Config{})
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "How do you stay current?", chunks[0].Heading)
}

func TestChunkQADeclarativeHeadingKept(t *testing.T) {
	chunks, err := ChunkQA("## My favourite projects\nA feed reader, a static site generator and a small chess engine.", Config{})
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "My favourite projects", chunks[0].Heading)
	assert.True(t, strings.HasPrefix(chunks[0].Text, "Q: My favourite projects\n\nA: "))
}

func TestChunkQAEmptyDocument(t *testing.T) {
	chunks, err := ChunkQA("", Config{})
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestChunkQANoQuestions(t *testing.T) {
	chunks, err := ChunkQA("# Just a Title\n\nSome prose without any question headers in it at all.", Config{})
	require.NoError(t, err)
	assert.Empty(t, chunks)
}
