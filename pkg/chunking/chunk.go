// Package chunking segments heterogeneous unstructured text (CVs, blog
// posts, README files, Q&A documents) into retrieval-sized passages, each
// tagged with a semantic heading, a content type, and the heading of the
// section it was extracted from. The output chunks are the unit embedded
// and indexed by the rest of the pipeline.
package chunking

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ChunkType classifies what kind of content a chunk carries.
type ChunkType string

const (
	TypeExperience ChunkType = "experience"
	TypeEducation  ChunkType = "education"
	TypeSkills     ChunkType = "skills"
	TypeProjects   ChunkType = "projects"
	TypePersonal   ChunkType = "personal"
	TypeGeneral    ChunkType = "general"
	TypeContent    ChunkType = "content"
	TypeQA         ChunkType = "qa"
	TypeRepoSummary   ChunkType = "repository_summary"
	TypeReadmeSection ChunkType = "readme_section"
)

// Valid reports whether t is one of the enumerated chunk types.
func (t ChunkType) Valid() bool {
	switch t {
	case TypeExperience, TypeEducation, TypeSkills, TypeProjects,
		TypePersonal, TypeGeneral, TypeContent, TypeQA,
		TypeRepoSummary, TypeReadmeSection:
		return true
	}
	return false
}

// Chunk is the immutable output record of a chunking run. It is created
// once by the assembler and never mutated afterwards. One chunk per line
// is the interchange format between the chunking and embedding stages.
type Chunk struct {
	ID            string         `json:"id"`
	ChunkIndex    int            `json:"chunk_index"`
	Text          string         `json:"text"`
	Source        string         `json:"source"`
	Heading       string         `json:"heading"`
	ChunkType     ChunkType      `json:"chunk_type"`
	WordCount     int            `json:"word_count"`
	ParentHeading string         `json:"parent_heading,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// fragment is a chunk before the assembler attaches an id, source label
// and metadata. Sub-chunkers and the size splitter emit fragments.
type fragment struct {
	Text          string
	Heading       string
	ChunkType     ChunkType
	WordCount     int
	ParentHeading string
}

// Config bounds chunk sizes for a processing run. MinWords is the floor
// below which the splitters avoid emitting a chunk; the final chunk of a
// run is the one documented exception.
type Config struct {
	TargetWords int    `validate:"gt=0"`
	MaxWords    int    `validate:"gt=0,gtefield=TargetWords"`
	MinWords    int    `validate:"gt=0,ltefield=MaxWords"`
	SourceLabel string `validate:"required"`
}

var configValidator = validator.New()

// Validate rejects nonsensical bounds before any processing begins. The
// chunking functions themselves assume a valid configuration.
func (c Config) Validate() error {
	return configValidator.Struct(c)
}

func (c *Config) applyDefaults(target, max, min int) {
	if c.TargetWords == 0 {
		c.TargetWords = target
	}
	if c.MaxWords == 0 {
		c.MaxWords = max
	}
	if c.MinWords == 0 {
		c.MinWords = min
	}
}

// countWords counts whitespace-delimited tokens.
func countWords(text string) int {
	return len(strings.Fields(text))
}

// Stats summarises a chunking run for CLI reporting.
type Stats struct {
	TotalChunks int               `json:"total_chunks"`
	TotalWords  int               `json:"total_words"`
	AvgWords    int               `json:"avg_words_per_chunk"`
	MinWords    int               `json:"min_words"`
	MaxWords    int               `json:"max_words"`
	TypeCounts  map[ChunkType]int `json:"chunk_types"`
}

// Summarize computes aggregate statistics over a chunk sequence.
func Summarize(chunks []Chunk) Stats {
	stats := Stats{TypeCounts: make(map[ChunkType]int)}
	if len(chunks) == 0 {
		return stats
	}

	stats.TotalChunks = len(chunks)
	stats.MinWords = chunks[0].WordCount
	for _, chunk := range chunks {
		stats.TotalWords += chunk.WordCount
		stats.TypeCounts[chunk.ChunkType]++
		if chunk.WordCount < stats.MinWords {
			stats.MinWords = chunk.WordCount
		}
		if chunk.WordCount > stats.MaxWords {
			stats.MaxWords = chunk.WordCount
		}
	}
	stats.AvgWords = stats.TotalWords / len(chunks)

	return stats
}
