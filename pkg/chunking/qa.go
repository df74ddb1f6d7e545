package chunking

import (
	"fmt"
	"regexp"
	"strings"
)

// Questions are level-two headers specifically. A level-one header is the
// document title, not a question.
var questionPattern = regexp.MustCompile(`(?m)^[ \t]*##[ \t]+([^\n#][^\n]*?)[ \t]*$`)

// Words that mark a heading as a question even without a question mark.
var interrogativeWords = []string{"what", "how", "why", "where", "when", "who", "which"}

// QA chunk size defaults, in words. Pairs are curated and stay whole, and
// a curated one-word answer is deliberate, so the floor only rejects
// empty answers.
const (
	qaTargetWords = 100
	qaMaxWords    = 500
	qaMinWords    = 1
)

// ChunkQA segments a question-and-answer markdown document. Every "##"
// header is a question and the text beneath it is the answer. A pair is
// always emitted as a single chunk so the question and its answer are
// never separated at retrieval time.
func ChunkQA(raw string, cfg Config) ([]Chunk, error) {
	cfg.applyDefaults(qaTargetWords, qaMaxWords, qaMinWords)
	if cfg.SourceLabel == "" {
		cfg.SourceLabel = "qa"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chunking config: %w", err)
	}

	text := Normalize(raw)
	if text == "" {
		return []Chunk{}, nil
	}

	locs := questionPattern.FindAllStringSubmatchIndex(text, -1)

	var fragments []fragment
	for i, loc := range locs {
		question := strings.TrimSpace(text[loc[2]:loc[3]])
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		answer := strings.TrimSpace(text[loc[1]:end])
		if question == "" || answer == "" || countWords(answer) < cfg.MinWords {
			continue
		}
		if !strings.HasSuffix(question, "?") && isInterrogative(question) {
			question += "?"
		}

		pair := fmt.Sprintf("Q: %s\n\nA: %s", question, answer)
		fragments = append(fragments, fragment{
			Text:          pair,
			Heading:       question,
			ChunkType:     TypeQA,
			WordCount:     countWords(pair),
			ParentHeading: question,
		})
	}

	return assemble(fragments, cfg, nil), nil
}

// isInterrogative reports whether a heading reads as a question. A
// declarative heading like "My background" stays as written.
func isInterrogative(question string) bool {
	lower := strings.ToLower(question)
	for _, word := range interrogativeWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
