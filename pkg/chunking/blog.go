package chunking

import (
	"fmt"
	"regexp"
	"strings"
)

// Blog chunk size defaults, in words. Prose tolerates larger chunks than
// resume sections.
const (
	blogTargetWords = 200
	blogMaxWords    = 400
	blogMinWords    = 50
)

// BlogPost is one post pulled from a feed, ready for chunking.
type BlogPost struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Content     string   `json:"content"`
	PublishedAt string   `json:"published_at,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ReadingTime int      `json:"reading_time,omitempty"`
}

// Platform boilerplate that survives feed extraction but carries no
// content worth retrieving.
var blogArtifactPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?mi)^share this:.*$`),
	regexp.MustCompile(`(?mi)^like this:.*$`),
	regexp.MustCompile(`(?mi)^tags?:\s.*$`),
	regexp.MustCompile(`(?mi)^posted in\b.*$`),
	regexp.MustCompile(`(?mi)^leave a comment.*$`),
	regexp.MustCompile(`(?mi)^photo by .* on unsplash.*$`),
	regexp.MustCompile(`(?mi)^originally published at.*$`),
	regexp.MustCompile(`(?mi)^follow me on\b.*$`),
	regexp.MustCompile(`(?mi)^\d+ min read$`),
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases a title into a hyphenated identifier suitable for a
// chunk source label.
func slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// cleanBlogContent strips platform boilerplate lines before chunking.
func cleanBlogContent(content string) string {
	for _, pattern := range blogArtifactPatterns {
		content = pattern.ReplaceAllString(content, "")
	}
	return Normalize(content)
}

// ChunkBlogPost segments one post into content chunks. Markdown headers
// partition the post; text before the first header is labeled
// "Introduction". Sections over the word budget are split on sentence
// boundaries so a chunk never ends mid-sentence.
func ChunkBlogPost(post BlogPost, cfg Config) ([]Chunk, error) {
	cfg.applyDefaults(blogTargetWords, blogMaxWords, blogMinWords)
	if cfg.SourceLabel == "" {
		cfg.SourceLabel = "blog-" + slugify(post.Title)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chunking config: %w", err)
	}

	text := cleanBlogContent(post.Content)
	if text == "" {
		return []Chunk{}, nil
	}

	var fragments []fragment
	for _, section := range splitAtHeaders(text, "Introduction") {
		if countWords(section.Body) < cfg.MinWords {
			continue
		}
		if countWords(section.Body) <= cfg.MaxWords {
			fragments = append(fragments, fragment{
				Text:          section.Body,
				Heading:       section.Heading,
				ChunkType:     TypeContent,
				WordCount:     countWords(section.Body),
				ParentHeading: post.Title,
			})
			continue
		}
		split := splitBySentences(section.Body, section.Heading, TypeContent, post.Title, cfg.MaxWords)
		fragments = append(fragments, split...)
	}

	metadata := map[string]any{
		"title": post.Title,
		"url":   post.URL,
	}
	if post.PublishedAt != "" {
		metadata["published_at"] = post.PublishedAt
	}
	if len(post.Tags) > 0 {
		metadata["tags"] = strings.Join(post.Tags, ", ")
	}
	if post.ReadingTime > 0 {
		metadata["reading_time"] = post.ReadingTime
	}

	return assemble(fragments, cfg, metadata), nil
}

// splitAtHeaders partitions text at markdown header lines only, unlike
// the resume section splitter which also reacts to bold lines and caps
// lines. Prose uses bold for emphasis far too often for those cues to be
// reliable section markers.
func splitAtHeaders(text, leadHeading string) []Section {
	locs := headerPattern.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return []Section{{Heading: leadHeading, Body: strings.TrimSpace(text)}}
	}

	var sections []Section
	emit := func(heading, body string) {
		body = strings.TrimSpace(body)
		if body != "" {
			sections = append(sections, Section{Heading: heading, Body: body})
		}
	}

	emit(leadHeading, text[:locs[0][0]])
	for i, loc := range locs {
		heading := strings.TrimSpace(text[loc[2]:loc[3]])
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		emit(heading, text[loc[1]:end])
	}

	return sections
}
