// Command process chunks a local document into JSONL ready for the embed
// pipeline.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charlotte-qazi/ai-charlotte/pkg/chunking"
	"github.com/charlotte-qazi/ai-charlotte/pkg/ingestion"
)

func main() {
	var (
		input       = flag.String("input", "", "path to the source document (pdf, md or txt)")
		output      = flag.String("output", "chunks.jsonl", "path to write chunk JSONL")
		source      = flag.String("source", "", "source label for chunk ids (defaults to the input file name)")
		docType     = flag.String("type", "cv", "document type: cv, qa, markdown or text")
		targetWords = flag.Int("target-words", 0, "target words per chunk (0 = per-type default)")
		maxWords    = flag.Int("max-words", 0, "maximum words per chunk (0 = per-type default)")
		minWords    = flag.Int("min-words", 0, "minimum words per chunk (0 = per-type default)")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("-input is required")
	}

	text, err := readDocument(*input)
	if err != nil {
		log.Fatalf("failed to read %s: %v", *input, err)
	}

	label := *source
	if label == "" {
		label = strings.TrimSuffix(filepath.Base(*input), filepath.Ext(*input))
	}
	cfg := chunking.Config{
		TargetWords: *targetWords,
		MaxWords:    *maxWords,
		MinWords:    *minWords,
		SourceLabel: label,
	}

	var chunks []chunking.Chunk
	switch *docType {
	case "cv":
		chunks, err = chunking.ChunkCV(text, cfg)
	case "qa":
		chunks, err = chunking.ChunkQA(text, cfg)
	case "markdown", "text":
		chunks, err = chunking.ChunkPlainText(context.Background(), text, cfg)
	default:
		log.Fatalf("unknown document type %q", *docType)
	}
	if err != nil {
		log.Fatalf("chunking failed: %v", err)
	}

	if err := writeChunks(*output, chunks); err != nil {
		log.Fatalf("failed to write %s: %v", *output, err)
	}

	stats := chunking.Summarize(chunks)
	log.Printf("wrote %d chunks to %s (avg %d words, min %d, max %d)",
		stats.TotalChunks, *output, stats.AvgWords, stats.MinWords, stats.MaxWords)
	for chunkType, count := range stats.TypeCounts {
		log.Printf("  %s: %d", chunkType, count)
	}
}

func readDocument(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		file, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer file.Close()
		return ingestion.ExtractPDFText(file)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeChunks(path string, chunks []chunking.Chunk) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return chunking.WriteJSONL(file, chunks)
}
