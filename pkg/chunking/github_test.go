package chunking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanReadme(t *testing.T) {
	readme := "# Tool\n\n[![Build](https://img.shields.io/badge.svg)](https://ci.example.com)\n\n" +
		"![screenshot](docs/shot.png)\n\nInstall it like this:\n\n```bash\ngo install example.com/tool@latest\n```\n\n" +
		"See the [docs](https://example.com/docs) for more."

	got := cleanReadme(readme)

	assert.NotContains(t, got, "shields.io")
	assert.NotContains(t, got, "go install")
	assert.Contains(t, got, "[Image]")
	assert.Contains(t, got, "[Code Block]")
	assert.Contains(t, got, "See the docs for more.")
}

func TestSummarizeRepo(t *testing.T) {
	repo := RepoDocument{
		Name:        "chunker",
		FullName:    "charlotte-qazi/chunker",
		Description: "Splits documents into retrieval sized pieces",
		URL:         "https://github.com/charlotte-qazi/chunker",
		Language:    "Go",
		Topics:      []string{"rag", "nlp"},
		Stars:       42,
		Forks:       7,
	}

	summary := summarizeRepo(repo)

	assert.Contains(t, summary, "chunker is a repository by charlotte-qazi.")
	assert.Contains(t, summary, "Splits documents into retrieval sized pieces.")
	assert.Contains(t, summary, "written primarily in Go")
	assert.Contains(t, summary, "Topics: rag, nlp.")
	assert.Contains(t, summary, "42 stars and 7 forks")
}

func TestChunkRepository(t *testing.T) {
	repo := RepoDocument{
		Name:        "chunker",
		FullName:    "charlotte-qazi/chunker",
		Description: "Splits documents into retrieval sized pieces",
		URL:         "https://github.com/charlotte-qazi/chunker",
		Language:    "Go",
		Readme: "# Chunker\n\nA small library for splitting documents into pieces sized for embedding and retrieval workloads.\n\n" +
			"## Installation\n\nGrab the module with the usual tooling and import it from your own code wherever needed.",
	}

	chunks, err := ChunkRepository(repo, Config{})
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	assert.Equal(t, TypeRepoSummary, chunks[0].ChunkType)
	assert.Equal(t, "chunker", chunks[0].Heading)
	assert.Equal(t, "github-chunker", chunks[0].Source)

	assert.Equal(t, TypeReadmeSection, chunks[1].ChunkType)
	assert.Equal(t, "Chunker", chunks[1].Heading)
	assert.Equal(t, TypeReadmeSection, chunks[2].ChunkType)
	assert.Equal(t, "Installation", chunks[2].Heading)

	for _, chunk := range chunks {
		assert.Equal(t, "charlotte-qazi/chunker", chunk.Metadata["repository"])
		assert.Equal(t, "chunker", chunk.ParentHeading)
	}
}

func TestChunkRepositoryWithoutReadme(t *testing.T) {
	repo := RepoDocument{Name: "empty-repo", FullName: "charlotte-qazi/empty-repo", URL: "https://github.com/charlotte-qazi/empty-repo"}

	chunks, err := ChunkRepository(repo, Config{})
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, TypeRepoSummary, chunks[0].ChunkType)
}
