package service

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"

	"github.com/charlotte-qazi/ai-charlotte/internal/constant"
	"github.com/charlotte-qazi/ai-charlotte/internal/dto"
	"github.com/charlotte-qazi/ai-charlotte/pkg/generation"
	"github.com/charlotte-qazi/ai-charlotte/pkg/moderation"
	"github.com/charlotte-qazi/ai-charlotte/pkg/vectorstore"
)

// IEmbedder is the slice of the embedding client the services depend on.
type IEmbedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimension() int
}

// IVectorStore is the slice of the Qdrant client the services depend on.
type IVectorStore interface {
	EnsureCollection(ctx context.Context, collection string, dimension int) error
	Upsert(ctx context.Context, collection string, points []vectorstore.Point) error
	Search(ctx context.Context, collection string, vector []float32, limit int, scoreThreshold float32) ([]vectorstore.SearchResult, error)
	Count(ctx context.Context, collection string) (int, error)
	Healthy(ctx context.Context) bool
}

// IModerator screens user input. A nil moderator disables the gate.
type IModerator interface {
	Moderate(ctx context.Context, input string) (moderation.Result, error)
}

// IChatCompleter generates the final answer.
type IChatCompleter interface {
	Complete(ctx context.Context, messages []generation.Message) (string, error)
}

type IRagService interface {
	Answer(ctx context.Context, question string) (*dto.RagAnswer, error)
	Health(ctx context.Context) (*dto.HealthResponse, error)
}

type RagConfig struct {
	Collection string
	TopK       int
	MinScore   float64
}

type ragService struct {
	embedder      IEmbedder
	store         IVectorStore
	moderator     IModerator
	completer     IChatCompleter
	promptBuilder *generation.PromptBuilder
	collection    string
	topK          int
	minScore      float32
}

func NewRagService(
	embedder IEmbedder,
	store IVectorStore,
	moderator IModerator,
	completer IChatCompleter,
	promptBuilder *generation.PromptBuilder,
	cfg RagConfig,
) IRagService {
	return &ragService{
		embedder:      embedder,
		store:         store,
		moderator:     moderator,
		completer:     completer,
		promptBuilder: promptBuilder,
		collection:    cfg.Collection,
		topK:          cfg.TopK,
		minScore:      float32(cfg.MinScore),
	}
}

// Answer runs the full pipeline for one question: moderation gate,
// question embedding, similarity search, prompt assembly, completion. A
// flagged question or an empty search result short-circuits with a canned
// answer rather than an error.
func (s *ragService) Answer(ctx context.Context, question string) (*dto.RagAnswer, error) {
	if s.moderator != nil {
		verdict, err := s.moderator.Moderate(ctx, question)
		if err != nil {
			// Fail open: a moderation outage should not take chat down.
			log.Warnf("moderation check failed, allowing question: %v", err)
		} else if verdict.Flagged {
			log.Warnf("question flagged by moderation: %s", verdict.Reason())
			return &dto.RagAnswer{Answer: constant.ModerationRefusalAnswer, Sources: []dto.Source{}}, nil
		}
	}

	vector, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}

	hits, err := s.store.Search(ctx, s.collection, vector, s.topK, s.minScore)
	if err != nil {
		return nil, fmt.Errorf("search collection %s: %w", s.collection, err)
	}
	if len(hits) == 0 {
		log.Infof("no context above score %.2f for question", s.minScore)
		return &dto.RagAnswer{Answer: constant.NoContextAnswer, Sources: []dto.Source{}}, nil
	}

	contexts := make([]generation.RetrievedContext, 0, len(hits))
	for _, hit := range hits {
		contexts = append(contexts, generation.RetrievedContext{
			Text:    payloadString(hit.Payload, "text"),
			Heading: payloadString(hit.Payload, "heading"),
			Source:  payloadString(hit.Payload, "source"),
			Score:   hit.Score,
		})
	}

	answer, err := s.completer.Complete(ctx, []generation.Message{
		{Role: generation.RoleSystem, Content: constant.SystemPromptV1},
		{Role: generation.RoleUser, Content: s.promptBuilder.Build(question, contexts)},
	})
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	return &dto.RagAnswer{Answer: answer, Sources: buildSources(hits)}, nil
}

func (s *ragService) Health(ctx context.Context) (*dto.HealthResponse, error) {
	if !s.store.Healthy(ctx) {
		return &dto.HealthResponse{Status: "unhealthy", VectorStore: s.collection}, nil
	}

	count, err := s.store.Count(ctx, s.collection)
	if err != nil {
		return &dto.HealthResponse{Status: "unhealthy", VectorStore: s.collection}, nil
	}

	return &dto.HealthResponse{
		Status:      "healthy",
		VectorStore: s.collection,
		PointCount:  count,
	}, nil
}

// buildSources renders retrieval hits as citations. Repository chunks get
// a prefix naming what part of the repo the text came from.
func buildSources(hits []vectorstore.SearchResult) []dto.Source {
	sources := make([]dto.Source, 0, len(hits))
	for _, hit := range hits {
		title := payloadString(hit.Payload, "heading")
		switch payloadString(hit.Payload, "chunk_type") {
		case "repository_summary":
			title = "Repository: " + title
		case "readme_section":
			title = "README: " + payloadString(hit.Payload, "parent_heading")
		}

		sources = append(sources, dto.Source{
			Title:  title,
			URL:    payloadString(hit.Payload, "url"),
			Score:  hit.Score,
			Origin: payloadString(hit.Payload, "source"),
		})
	}
	return sources
}

func payloadString(payload map[string]any, key string) string {
	if value, ok := payload[key].(string); ok {
		return value
	}
	return ""
}
