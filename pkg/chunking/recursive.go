package chunking

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/textsplitter"
)

// Plain text chunk defaults. Sizes are in characters here because the
// recursive splitter operates on runes, not words.
const (
	plainChunkSize      = 1000
	plainOverlapPercent = 10
)

// ChunkPlainText handles documents with no exploitable structure at all:
// no headers, no bold lines, no bullets. It delegates to a recursive
// character splitter with proportional overlap and wraps the pieces as
// general chunks.
func ChunkPlainText(ctx context.Context, raw string, cfg Config) ([]Chunk, error) {
	cfg.applyDefaults(cvTargetWords, cvMaxWords, cvMinWords)
	if cfg.SourceLabel == "" {
		cfg.SourceLabel = "text"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chunking config: %w", err)
	}

	text := Normalize(raw)
	if text == "" {
		return []Chunk{}, nil
	}

	loader := documentloaders.NewText(strings.NewReader(text))

	split := textsplitter.NewRecursiveCharacter()
	split.ChunkSize = plainChunkSize
	split.ChunkOverlap = (plainChunkSize * plainOverlapPercent) / 100

	docs, err := loader.LoadAndSplit(ctx, split)
	if err != nil {
		return nil, fmt.Errorf("split error: %w", err)
	}

	fragments := make([]fragment, 0, len(docs))
	for _, doc := range docs {
		body := strings.TrimSpace(doc.PageContent)
		if body == "" {
			continue
		}
		fragments = append(fragments, fragment{
			Text:          body,
			Heading:       partHeading(defaultHeading, len(fragments)),
			ChunkType:     TypeGeneral,
			WordCount:     countWords(body),
			ParentHeading: defaultHeading,
		})
	}

	return assemble(fragments, cfg, nil), nil
}
