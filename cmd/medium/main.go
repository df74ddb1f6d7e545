// Command medium pulls posts from a Medium feed and chunks them into
// JSONL ready for the embed pipeline.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/charlotte-qazi/ai-charlotte/pkg/chunking"
	"github.com/charlotte-qazi/ai-charlotte/pkg/ingestion"
)

func main() {
	var (
		user     = flag.String("user", "", "medium username (without the @)")
		rss      = flag.String("rss", "", "feed url, overrides -user for custom domains")
		output   = flag.String("output", "medium_chunks.jsonl", "path to write chunk JSONL")
		maxPosts = flag.Int("max-posts", 0, "maximum posts to fetch (0 = all in feed)")
	)
	flag.Parse()

	fetcher, err := ingestion.NewMediumFetcher(ingestion.MediumConfig{
		Username: *user,
		FeedURL:  *rss,
	})
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	posts, err := fetcher.FetchPosts(ctx, *maxPosts)
	if err != nil {
		log.Fatalf("failed to fetch posts: %v", err)
	}
	log.Printf("fetched %d posts", len(posts))

	var chunks []chunking.Chunk
	for _, post := range posts {
		postChunks, err := chunking.ChunkBlogPost(post, chunking.Config{})
		if err != nil {
			log.Fatalf("failed to chunk %q: %v", post.Title, err)
		}
		log.Printf("  %q: %d chunks", post.Title, len(postChunks))
		chunks = append(chunks, postChunks...)
	}

	file, err := os.Create(*output)
	if err != nil {
		log.Fatalf("failed to create %s: %v", *output, err)
	}
	defer file.Close()

	if err := chunking.WriteJSONL(file, chunks); err != nil {
		log.Fatalf("failed to write %s: %v", *output, err)
	}

	log.Printf("wrote %d chunks to %s", len(chunks), *output)
}
