package chunking

import "fmt"

// assemble finalizes fragments into chunks: sequential ids derived from
// the source label, a zero-based chunk index, and a fresh copy of the
// shared metadata per chunk so later mutation of one chunk cannot leak
// into its siblings.
func assemble(fragments []fragment, cfg Config, metadata map[string]any) []Chunk {
	chunks := make([]Chunk, 0, len(fragments))
	for i, frag := range fragments {
		var meta map[string]any
		if len(metadata) > 0 {
			meta = make(map[string]any, len(metadata))
			for k, v := range metadata {
				meta[k] = v
			}
		}
		chunks = append(chunks, Chunk{
			ID:            fmt.Sprintf("%s-%d", cfg.SourceLabel, i),
			ChunkIndex:    i,
			Text:          frag.Text,
			Source:        cfg.SourceLabel,
			Heading:       frag.Heading,
			ChunkType:     frag.ChunkType,
			WordCount:     frag.WordCount,
			ParentHeading: frag.ParentHeading,
			Metadata:      meta,
		})
	}
	return chunks
}
