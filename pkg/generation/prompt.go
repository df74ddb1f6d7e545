package generation

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// RetrievedContext is one search hit handed to the prompt builder.
type RetrievedContext struct {
	Text    string
	Heading string
	Source  string
	Score   float32
}

// PromptBuilder assembles the user prompt from retrieved context, keeping
// the context portion inside a token budget so the completion call never
// overflows the model window.
type PromptBuilder struct {
	encoder          *tiktoken.Tiktoken
	maxContextTokens int
}

func NewPromptBuilder(maxContextTokens int) (*PromptBuilder, error) {
	encoder, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("load token encoding: %w", err)
	}
	if maxContextTokens <= 0 {
		maxContextTokens = 2000
	}
	return &PromptBuilder{encoder: encoder, maxContextTokens: maxContextTokens}, nil
}

// TokenCount counts tokens the way the chat models do.
func (b *PromptBuilder) TokenCount(text string) int {
	return len(b.encoder.Encode(text, nil, nil))
}

// Build renders the question with its supporting context. Contexts are
// taken in the given order, which is relevance order, and adding stops
// once the token budget is spent. A question with no usable context still
// produces a prompt so the model can answer from its instructions alone.
func (b *PromptBuilder) Build(question string, contexts []RetrievedContext) string {
	var sb strings.Builder
	sb.WriteString("Use the following context to answer the question.\n\n")

	used := 0
	included := 0
	for _, ctx := range contexts {
		block := fmt.Sprintf("[Context %d - %s (relevance: %.2f)]\n%s\n\n",
			included+1, ctx.Heading, ctx.Score, ctx.Text)
		cost := b.TokenCount(block)
		if used+cost > b.maxContextTokens && included > 0 {
			break
		}
		sb.WriteString(block)
		used += cost
		included++
	}

	if included == 0 {
		sb.Reset()
		sb.WriteString("No stored context matched this question.\n\n")
	}

	sb.WriteString("Question: ")
	sb.WriteString(question)
	return sb.String()
}
