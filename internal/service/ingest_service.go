package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2/log"

	"github.com/charlotte-qazi/ai-charlotte/internal/dto"
	"github.com/charlotte-qazi/ai-charlotte/internal/pkg/serverutils"
	"github.com/charlotte-qazi/ai-charlotte/pkg/chunking"
	"github.com/charlotte-qazi/ai-charlotte/pkg/ingestion"
)

type IIngestService interface {
	IngestDocument(ctx context.Context, filename, documentType string, file io.Reader) (*dto.IngestDocumentResponse, error)
	Status(ctx context.Context) (*dto.DocumentStatusResponse, error)
}

type ingestService struct {
	publisherService IPublisherService
	store            IVectorStore
	collection       string
}

func NewIngestService(publisherService IPublisherService, store IVectorStore, collection string) IIngestService {
	return &ingestService{
		publisherService: publisherService,
		store:            store,
		collection:       collection,
	}
}

// IngestDocument extracts text from an uploaded file, chunks it according
// to the declared document type and queues the chunks for embedding.
func (s *ingestService) IngestDocument(ctx context.Context, filename, documentType string, file io.Reader) (*dto.IngestDocumentResponse, error) {
	text, err := extractText(filename, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", serverutils.ErrInvalidFile, err)
	}

	source := sourceLabel(filename)
	cfg := chunking.Config{SourceLabel: source}

	var chunks []chunking.Chunk
	switch documentType {
	case "cv":
		chunks, err = chunking.ChunkCV(text, cfg)
	case "qa":
		chunks, err = chunking.ChunkQA(text, cfg)
	case "markdown", "text", "":
		chunks, err = chunking.ChunkPlainText(ctx, text, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown document type %q", serverutils.ErrBadRequest, documentType)
	}
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: document produced no chunks", serverutils.ErrInvalidFile)
	}

	if err := s.publisherService.PublishChunks(ctx, source, chunks); err != nil {
		return nil, err
	}

	log.Infof("queued %d chunks from %s for embedding", len(chunks), source)

	return &dto.IngestDocumentResponse{
		Source:     source,
		ChunkCount: len(chunks),
		Stats:      chunking.Summarize(chunks),
	}, nil
}

func (s *ingestService) Status(ctx context.Context) (*dto.DocumentStatusResponse, error) {
	count, err := s.store.Count(ctx, s.collection)
	if err != nil {
		return nil, err
	}

	return &dto.DocumentStatusResponse{
		Collection: s.collection,
		PointCount: count,
	}, nil
}

func extractText(filename string, file io.Reader) (string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return ingestion.ExtractPDFText(file)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func sourceLabel(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	label := strings.ToLower(strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, base))
	label = strings.Trim(label, "-")
	if label == "" {
		return "document"
	}
	return label
}
