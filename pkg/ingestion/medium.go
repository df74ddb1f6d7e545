package ingestion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/charlotte-qazi/ai-charlotte/pkg/chunking"
)

const wordsPerMinute = 200

// MediumConfig locates the feed to pull. Username takes the standard
// medium.com feed URL; FeedURL overrides it for custom domains.
type MediumConfig struct {
	Username string
	FeedURL  string
}

type MediumFetcher struct {
	feedURL string
	parser  *gofeed.Parser
}

func NewMediumFetcher(cfg MediumConfig) (*MediumFetcher, error) {
	feedURL := cfg.FeedURL
	if feedURL == "" {
		if cfg.Username == "" {
			return nil, fmt.Errorf("medium username or feed url is required")
		}
		feedURL = fmt.Sprintf("https://medium.com/feed/@%s", strings.TrimPrefix(cfg.Username, "@"))
	}
	return &MediumFetcher{feedURL: feedURL, parser: gofeed.NewParser()}, nil
}

// FetchPosts pulls up to maxPosts published posts from the feed, newest
// first, with their HTML bodies converted to markdown-ish plain text.
// Items without content (comment stubs, link shares) are skipped.
func (f *MediumFetcher) FetchPosts(ctx context.Context, maxPosts int) ([]chunking.BlogPost, error) {
	feed, err := f.parser.ParseURLWithContext(f.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", f.feedURL, err)
	}

	var posts []chunking.BlogPost
	for _, item := range feed.Items {
		if maxPosts > 0 && len(posts) >= maxPosts {
			break
		}

		html := item.Content
		if html == "" {
			html = item.Description
		}
		content := htmlToText(html)
		if strings.TrimSpace(content) == "" {
			continue
		}

		post := chunking.BlogPost{
			Title:       strings.TrimSpace(item.Title),
			URL:         item.Link,
			Content:     content,
			Tags:        item.Categories,
			ReadingTime: readingTime(content),
		}
		if item.PublishedParsed != nil {
			post.PublishedAt = item.PublishedParsed.Format(time.RFC3339)
		}
		posts = append(posts, post)
	}

	return posts, nil
}

// htmlToText flattens post HTML into text the chunker understands:
// headers become markdown headers so section splitting still works, list
// items become bullets, code blocks collapse to a placeholder.
func htmlToText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	doc.Find("figcaption, script, style").Remove()

	var sb strings.Builder
	doc.Find("h1, h2, h3, h4, p, li, pre, blockquote").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		switch goquery.NodeName(sel) {
		case "h1", "h2", "h3", "h4":
			sb.WriteString("## " + text + "\n\n")
		case "li":
			sb.WriteString("- " + text + "\n")
		case "pre":
			sb.WriteString("[Code Block]\n\n")
		default:
			sb.WriteString(text + "\n\n")
		}
	})

	return strings.TrimSpace(sb.String())
}

func readingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
