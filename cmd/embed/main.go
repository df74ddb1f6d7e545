// Command embed reads chunk JSONL, embeds each chunk and upserts the
// vectors into Qdrant.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/charlotte-qazi/ai-charlotte/pkg/chunking"
	"github.com/charlotte-qazi/ai-charlotte/pkg/embedding"
	"github.com/charlotte-qazi/ai-charlotte/pkg/vectorstore"
)

func main() {
	var (
		input      = flag.String("input", "", "path to chunk JSONL")
		collection = flag.String("collection", "ai_charlotte", "qdrant collection name")
		batchSize  = flag.Int("batch-size", 50, "chunks to embed per request")
		recreate   = flag.Bool("recreate", false, "drop and recreate the collection first")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("-input is required")
	}
	if *batchSize < 1 {
		log.Fatal("-batch-size must be at least 1")
	}

	godotenv.Load()

	embedder, err := embedding.NewClient(embedding.Config{
		APIKey: os.Getenv("OPENAI_API_KEY"),
		Model:  os.Getenv("OPENAI_EMBEDDING_MODEL"),
	})
	if err != nil {
		log.Fatal(err)
	}

	qdrantURL := os.Getenv("QDRANT_URL")
	if qdrantURL == "" {
		qdrantURL = "http://localhost:6333"
	}
	store := vectorstore.NewClient(vectorstore.Config{
		URL:    qdrantURL,
		APIKey: os.Getenv("QDRANT_API_KEY"),
	})

	file, err := os.Open(*input)
	if err != nil {
		log.Fatalf("failed to open %s: %v", *input, err)
	}
	defer file.Close()

	chunks, err := chunking.ReadJSONL(file)
	if err != nil {
		log.Fatalf("failed to read %s: %v", *input, err)
	}
	if len(chunks) == 0 {
		log.Fatalf("no chunks in %s", *input)
	}
	log.Printf("read %d chunks from %s", len(chunks), *input)

	ctx := context.Background()

	if *recreate {
		if err := store.DeleteCollection(ctx, *collection); err != nil {
			log.Fatalf("failed to delete collection: %v", err)
		}
		log.Printf("deleted collection %s", *collection)
	}
	if err := store.EnsureCollection(ctx, *collection, embedder.Dimension()); err != nil {
		log.Fatalf("failed to ensure collection: %v", err)
	}

	for start := 0; start < len(chunks); start += *batchSize {
		end := start + *batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, chunk := range batch {
			texts[i] = chunk.Text
		}

		vectors, err := embedder.EmbedBatch(ctx, texts)
		if err != nil {
			log.Fatalf("failed to embed batch at %d: %v", start, err)
		}

		points := make([]vectorstore.Point, len(batch))
		for i, chunk := range batch {
			points[i] = vectorstore.Point{
				ID:      chunk.ID,
				Vector:  vectors[i],
				Payload: chunkPayload(chunk),
			}
		}

		if err := store.Upsert(ctx, *collection, points); err != nil {
			log.Fatalf("failed to upsert batch at %d: %v", start, err)
		}
		log.Printf("upserted %d/%d", end, len(chunks))
	}

	count, err := store.Count(ctx, *collection)
	if err != nil {
		log.Fatalf("failed to count points: %v", err)
	}
	log.Printf("collection %s now holds %d points", *collection, count)
}

func chunkPayload(chunk chunking.Chunk) map[string]any {
	payload := map[string]any{
		"chunk_id":    chunk.ID,
		"chunk_index": chunk.ChunkIndex,
		"text":        chunk.Text,
		"source":      chunk.Source,
		"heading":     chunk.Heading,
		"chunk_type":  string(chunk.ChunkType),
		"word_count":  chunk.WordCount,
	}
	if chunk.ParentHeading != "" {
		payload["parent_heading"] = chunk.ParentHeading
	}
	for k, v := range chunk.Metadata {
		payload[k] = v
	}
	return payload
}
