package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlotte-qazi/ai-charlotte/internal/constant"
	"github.com/charlotte-qazi/ai-charlotte/pkg/generation"
	"github.com/charlotte-qazi/ai-charlotte/pkg/moderation"
	"github.com/charlotte-qazi/ai-charlotte/pkg/vectorstore"
)

type fakeEmbedder struct {
	vector []float32
	err    error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return f.vector, f.err
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = f.vector
	}
	return vectors, f.err
}

func (f *fakeEmbedder) Dimension() int { return len(f.vector) }

type fakeStore struct {
	hits      []vectorstore.SearchResult
	searchErr error
	count     int
	countErr  error
	healthy   bool

	searched bool
}

func (f *fakeStore) EnsureCollection(ctx context.Context, collection string, dimension int) error {
	return nil
}

func (f *fakeStore) Upsert(ctx context.Context, collection string, points []vectorstore.Point) error {
	return nil
}

func (f *fakeStore) Search(ctx context.Context, collection string, vector []float32, limit int, scoreThreshold float32) ([]vectorstore.SearchResult, error) {
	f.searched = true
	return f.hits, f.searchErr
}

func (f *fakeStore) Count(ctx context.Context, collection string) (int, error) {
	return f.count, f.countErr
}

func (f *fakeStore) Healthy(ctx context.Context) bool { return f.healthy }

type fakeModerator struct {
	result moderation.Result
	err    error
}

func (f *fakeModerator) Moderate(ctx context.Context, input string) (moderation.Result, error) {
	return f.result, f.err
}

type fakeCompleter struct {
	answer string
	err    error
	called bool
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []generation.Message) (string, error) {
	f.called = true
	return f.answer, f.err
}

func newTestRagService(embedder IEmbedder, store IVectorStore, moderator IModerator, completer IChatCompleter) IRagService {
	return NewRagService(embedder, store, moderator, completer, nil, RagConfig{
		Collection: "test_collection",
		TopK:       3,
		MinScore:   0.3,
	})
}

func TestAnswerFlaggedQuestionIsRefused(t *testing.T) {
	store := &fakeStore{}
	completer := &fakeCompleter{}
	svc := newTestRagService(
		&fakeEmbedder{vector: []float32{0.1}},
		store,
		&fakeModerator{result: moderation.Result{Flagged: true, Categories: []string{"harassment"}}},
		completer,
	)

	res, err := svc.Answer(context.Background(), "something hostile")
	require.NoError(t, err)

	assert.Equal(t, constant.ModerationRefusalAnswer, res.Answer)
	assert.Empty(t, res.Sources)
	assert.False(t, store.searched, "flagged question must not reach retrieval")
	assert.False(t, completer.called)
}

func TestAnswerModerationOutageFailsOpen(t *testing.T) {
	store := &fakeStore{}
	svc := newTestRagService(
		&fakeEmbedder{vector: []float32{0.1}},
		store,
		&fakeModerator{err: errors.New("moderation api down")},
		&fakeCompleter{},
	)

	res, err := svc.Answer(context.Background(), "what do you do?")
	require.NoError(t, err)

	assert.True(t, store.searched, "a moderation outage must not block the question")
	assert.Equal(t, constant.NoContextAnswer, res.Answer)
}

func TestAnswerWithoutMatchesReturnsFallback(t *testing.T) {
	completer := &fakeCompleter{}
	svc := newTestRagService(
		&fakeEmbedder{vector: []float32{0.1}},
		&fakeStore{},
		nil,
		completer,
	)

	res, err := svc.Answer(context.Background(), "what is your favourite colour?")
	require.NoError(t, err)

	assert.Equal(t, constant.NoContextAnswer, res.Answer)
	assert.Empty(t, res.Sources)
	assert.False(t, completer.called, "no completion without retrieved context")
}

func TestAnswerEmbeddingFailure(t *testing.T) {
	svc := newTestRagService(
		&fakeEmbedder{err: errors.New("rate limited")},
		&fakeStore{},
		nil,
		&fakeCompleter{},
	)

	_, err := svc.Answer(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embed question")
}

func TestBuildSources(t *testing.T) {
	hits := []vectorstore.SearchResult{
		{
			Score: 0.91,
			Payload: map[string]any{
				"heading":    "Professional Experience",
				"chunk_type": "experience",
				"source":     "cv",
			},
		},
		{
			Score: 0.84,
			Payload: map[string]any{
				"heading":    "ai-charlotte",
				"chunk_type": "repository_summary",
				"source":     "github-ai-charlotte",
				"url":        "https://github.com/charlotte-qazi/ai-charlotte",
			},
		},
		{
			Score: 0.77,
			Payload: map[string]any{
				"heading":        "Getting Started",
				"parent_heading": "ai-charlotte",
				"chunk_type":     "readme_section",
				"source":         "github-ai-charlotte",
			},
		},
	}

	sources := buildSources(hits)
	require.Len(t, sources, 3)

	assert.Equal(t, "Professional Experience", sources[0].Title)
	assert.Equal(t, "cv", sources[0].Origin)
	assert.InDelta(t, 0.91, sources[0].Score, 0.001)

	assert.Equal(t, "Repository: ai-charlotte", sources[1].Title)
	assert.Equal(t, "https://github.com/charlotte-qazi/ai-charlotte", sources[1].URL)

	assert.Equal(t, "README: ai-charlotte", sources[2].Title)
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		svc := newTestRagService(&fakeEmbedder{}, &fakeStore{healthy: true, count: 42}, nil, &fakeCompleter{})

		res, err := svc.Health(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "healthy", res.Status)
		assert.Equal(t, 42, res.PointCount)
	})

	t.Run("store down", func(t *testing.T) {
		svc := newTestRagService(&fakeEmbedder{}, &fakeStore{healthy: false}, nil, &fakeCompleter{})

		res, err := svc.Health(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "unhealthy", res.Status)
	})

	t.Run("count failure", func(t *testing.T) {
		svc := newTestRagService(&fakeEmbedder{}, &fakeStore{healthy: true, countErr: errors.New("timeout")}, nil, &fakeCompleter{})

		res, err := svc.Health(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "unhealthy", res.Status)
	})
}
