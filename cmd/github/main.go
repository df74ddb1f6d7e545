// Command github pulls a user's repositories and chunks them into JSONL
// ready for the embed pipeline.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/charlotte-qazi/ai-charlotte/pkg/chunking"
	"github.com/charlotte-qazi/ai-charlotte/pkg/ingestion"
)

func main() {
	var (
		user         = flag.String("user", "", "github username")
		output       = flag.String("output", "github_chunks.jsonl", "path to write chunk JSONL")
		includeForks = flag.Bool("include-forks", false, "include forked repositories")
	)
	flag.Parse()

	godotenv.Load()

	fetcher, err := ingestion.NewGitHubFetcher(ingestion.GitHubConfig{
		Username:     *user,
		Token:        os.Getenv("GITHUB_TOKEN"),
		IncludeForks: *includeForks,
	})
	if err != nil {
		log.Fatal(err)
	}

	repos, err := fetcher.FetchRepositories(context.Background())
	if err != nil {
		log.Fatalf("failed to fetch repositories: %v", err)
	}
	log.Printf("fetched %d repositories", len(repos))

	var chunks []chunking.Chunk
	for _, repo := range repos {
		repoChunks, err := chunking.ChunkRepository(repo, chunking.Config{})
		if err != nil {
			log.Fatalf("failed to chunk %s: %v", repo.FullName, err)
		}
		log.Printf("  %s: %d chunks", repo.Name, len(repoChunks))
		chunks = append(chunks, repoChunks...)
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
