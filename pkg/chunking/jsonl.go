package chunking

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteJSONL writes chunks one JSON object per line. This is the
// interchange format between the chunking CLIs and the embedding
// pipeline.
func WriteJSONL(w io.Writer, chunks []Chunk) error {
	enc := json.NewEncoder(w)
	for i, chunk := range chunks {
		if err := enc.Encode(chunk); err != nil {
			return fmt.Errorf("encode chunk %d: %w", i, err)
		}
	}
	return nil
}

// ReadJSONL reads chunks back from a JSONL stream, skipping blank lines.
// Errors carry the 1-based line number of the offending record.
func ReadJSONL(r io.Reader) ([]Chunk, error) {
	var chunks []Chunk

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var chunk Chunk
		if err := json.Unmarshal([]byte(text), &chunk); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if chunk.ID == "" || chunk.Text == "" {
			return nil, fmt.Errorf("line %d: chunk missing id or text", line)
		}
		chunks = append(chunks, chunk)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read jsonl: %w", err)
	}

	return chunks, nil
}
