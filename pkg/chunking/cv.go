package chunking

import "fmt"

// CV chunk size defaults, in words.
const (
	cvTargetWords = 100
	cvMaxWords    = 150
	cvMinWords    = 15
)

// ChunkCV runs the full resume pipeline: normalize, split into labeled
// sections, classify each heading, sub-chunk by category, then assemble
// the final records. Chunks come out in document order and together cover
// every section that survived the noise floor.
func ChunkCV(raw string, cfg Config) ([]Chunk, error) {
	cfg.applyDefaults(cvTargetWords, cvMaxWords, cvMinWords)
	if cfg.SourceLabel == "" {
		cfg.SourceLabel = "cv"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chunking config: %w", err)
	}

	text := Normalize(raw)
	if text == "" {
		return []Chunk{}, nil
	}

	var fragments []fragment
	for _, section := range SplitSections(text) {
		category := Classify(section.Heading)
		fragments = append(fragments, subchunk(section, category, cfg)...)
	}

	return assemble(fragments, cfg, nil), nil
}
