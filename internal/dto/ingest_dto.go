package dto

import "github.com/charlotte-qazi/ai-charlotte/pkg/chunking"

// EmbedChunksMessage is the payload published for the embedding consumer.
type EmbedChunksMessage struct {
	Source string           `json:"source"`
	Chunks []chunking.Chunk `json:"chunks"`
}

type IngestDocumentResponse struct {
	Source     string         `json:"source"`
	ChunkCount int            `json:"chunk_count"`
	Stats      chunking.Stats `json:"stats"`
}

type DocumentStatusResponse struct {
	Collection string `json:"collection"`
	PointCount int    `json:"point_count"`
}
