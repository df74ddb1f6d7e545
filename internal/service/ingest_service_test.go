package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlotte-qazi/ai-charlotte/internal/pkg/serverutils"
	"github.com/charlotte-qazi/ai-charlotte/pkg/chunking"
)

type fakePublisher struct {
	source string
	chunks []chunking.Chunk
	err    error
}

func (f *fakePublisher) PublishChunks(ctx context.Context, source string, chunks []chunking.Chunk) error {
	f.source = source
	f.chunks = chunks
	return f.err
}

const sampleQADocument = `## What does Charlotte do?

Charlotte is a senior software engineer working on conversational products and developer tooling.

## Where is Charlotte based?

She is based in London and works with distributed teams across Europe.
`

func TestIngestDocumentQueuesChunks(t *testing.T) {
	publisher := &fakePublisher{}
	svc := NewIngestService(publisher, &fakeStore{}, "test_collection")

	res, err := svc.IngestDocument(context.Background(), "About Charlotte.md", "qa", strings.NewReader(sampleQADocument))
	require.NoError(t, err)

	assert.Equal(t, "about-charlotte", res.Source)
	assert.Equal(t, len(publisher.chunks), res.ChunkCount)
	require.NotEmpty(t, publisher.chunks)
	assert.Equal(t, "about-charlotte", publisher.source)
	for _, chunk := range publisher.chunks {
		assert.Equal(t, chunking.TypeQA, chunk.ChunkType)
		assert.True(t, strings.HasPrefix(chunk.ID, "about-charlotte-"))
	}
}

func TestIngestDocumentRejectsUnknownType(t *testing.T) {
	svc := NewIngestService(&fakePublisher{}, &fakeStore{}, "test_collection")

	_, err := svc.IngestDocument(context.Background(), "doc.txt", "spreadsheet", strings.NewReader("irrelevant"))
	require.Error(t, err)
	assert.ErrorIs(t, err, serverutils.ErrBadRequest)
}

func TestIngestDocumentRejectsEmptyDocument(t *testing.T) {
	publisher := &fakePublisher{}
	svc := NewIngestService(publisher, &fakeStore{}, "test_collection")

	_, err := svc.IngestDocument(context.Background(), "empty.md", "qa", strings.NewReader("   \n\n  "))
	require.Error(t, err)
	assert.ErrorIs(t, err, serverutils.ErrInvalidFile)
	assert.Nil(t, publisher.chunks)
}

func TestStatusReportsPointCount(t *testing.T) {
	svc := NewIngestService(&fakePublisher{}, &fakeStore{count: 128}, "test_collection")

	res, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test_collection", res.Collection)
	assert.Equal(t, 128, res.PointCount)
}
