package chunking

import (
	"fmt"
	"regexp"
	"strings"
)

// Repository chunk size defaults, in words.
const (
	repoTargetWords = 150
	repoMaxWords    = 200
	repoMinWords    = 10
)

// RepoDocument describes one repository plus its README, ready for
// chunking.
type RepoDocument struct {
	Name        string   `json:"name"`
	FullName    string   `json:"full_name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url"`
	Language    string   `json:"language,omitempty"`
	Languages   []string `json:"languages,omitempty"`
	Topics      []string `json:"topics,omitempty"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
	Readme      string   `json:"readme,omitempty"`
}

var (
	imagePattern     = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	badgePattern     = regexp.MustCompile(`\[!\[[^\]]*\]\([^)]*\)\]\([^)]*\)`)
	codeFencePattern = regexp.MustCompile("(?s)```.*?```")
	inlineLinkRef    = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
)

// cleanReadme replaces markdown constructs that embed poorly. Badges are
// dropped entirely, images and code fences collapse to placeholders, and
// links keep their text.
func cleanReadme(readme string) string {
	text := badgePattern.ReplaceAllString(readme, "")
	text = imagePattern.ReplaceAllString(text, "[Image]")
	text = codeFencePattern.ReplaceAllString(text, "[Code Block]")
	text = inlineLinkRef.ReplaceAllString(text, "$1")
	return Normalize(text)
}

// summarizeRepo renders repository metadata as prose so the summary chunk
// reads naturally when injected into a prompt.
func summarizeRepo(repo RepoDocument) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is a repository by %s.", repo.Name, ownerOf(repo.FullName))
	if repo.Description != "" {
		fmt.Fprintf(&b, " %s.", strings.TrimSuffix(repo.Description, "."))
	}
	if repo.Language != "" {
		fmt.Fprintf(&b, " It is written primarily in %s.", repo.Language)
	}
	if len(repo.Languages) > 1 {
		fmt.Fprintf(&b, " Languages used: %s.", strings.Join(repo.Languages, ", "))
	}
	if len(repo.Topics) > 0 {
		fmt.Fprintf(&b, " Topics: %s.", strings.Join(repo.Topics, ", "))
	}
	if repo.Stars > 0 || repo.Forks > 0 {
		fmt.Fprintf(&b, " It has %d stars and %d forks.", repo.Stars, repo.Forks)
	}
	if repo.UpdatedAt != "" {
		fmt.Fprintf(&b, " Last updated %s.", repo.UpdatedAt)
	}
	return b.String()
}

func ownerOf(fullName string) string {
	if owner, _, found := strings.Cut(fullName, "/"); found {
		return owner
	}
	return fullName
}

// ChunkRepository produces one summary chunk from the repository metadata
// followed by a chunk per README section. Repositories without a README
// still yield the summary.
func ChunkRepository(repo RepoDocument, cfg Config) ([]Chunk, error) {
	cfg.applyDefaults(repoTargetWords, repoMaxWords, repoMinWords)
	if cfg.SourceLabel == "" {
		cfg.SourceLabel = "github-" + slugify(repo.Name)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chunking config: %w", err)
	}

	summary := summarizeRepo(repo)
	fragments := []fragment{{
		Text:          summary,
		Heading:       repo.Name,
		ChunkType:     TypeRepoSummary,
		WordCount:     countWords(summary),
		ParentHeading: repo.Name,
	}}

	readme := cleanReadme(repo.Readme)
	if readme != "" {
		for _, section := range splitAtHeaders(readme, "Overview") {
			if countWords(section.Body) < cfg.MinWords {
				continue
			}
			if countWords(section.Body) <= cfg.MaxWords {
				fragments = append(fragments, fragment{
					Text:          section.Body,
					Heading:       section.Heading,
					ChunkType:     TypeReadmeSection,
					WordCount:     countWords(section.Body),
					ParentHeading: repo.Name,
				})
				continue
			}
			split := splitBySentences(section.Body, section.Heading, TypeReadmeSection, repo.Name, cfg.MaxWords)
			fragments = append(fragments, split...)
		}
	}

	metadata := map[string]any{
		"repository": repo.FullName,
		"url":        repo.URL,
	}
	if repo.Language != "" {
		metadata["language"] = repo.Language
	}

	return assemble(fragments, cfg, metadata), nil
}
