package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/charlotte-qazi/ai-charlotte/pkg/chunking"
)

// GitHubConfig locates the account to pull. Token is optional but raises
// the API rate limit considerably.
type GitHubConfig struct {
	Username     string
	Token        string
	BaseURL      string
	Timeout      time.Duration
	IncludeForks bool
}

type GitHubFetcher struct {
	username     string
	token        string
	baseURL      string
	includeForks bool
	client       *http.Client
}

func NewGitHubFetcher(cfg GitHubConfig) (*GitHubFetcher, error) {
	if cfg.Username == "" {
		return nil, fmt.Errorf("github username is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.github.com"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &GitHubFetcher{
		username:     cfg.Username,
		token:        cfg.Token,
		baseURL:      cfg.BaseURL,
		includeForks: cfg.IncludeForks,
		client:       &http.Client{Timeout: timeout},
	}, nil
}

type repoItem struct {
	Name        string   `json:"name"`
	FullName    string   `json:"full_name"`
	Description string   `json:"description"`
	HTMLURL     string   `json:"html_url"`
	Language    string   `json:"language"`
	Topics      []string `json:"topics"`
	Stars       int      `json:"stargazers_count"`
	Forks       int      `json:"forks_count"`
	Fork        bool     `json:"fork"`
	Archived    bool     `json:"archived"`
	UpdatedAt   string   `json:"updated_at"`
}

// FetchRepositories lists the account's public repositories with their
// language breakdown and README. Forks and archived repositories are
// skipped unless configured otherwise.
func (f *GitHubFetcher) FetchRepositories(ctx context.Context) ([]chunking.RepoDocument, error) {
	var docs []chunking.RepoDocument

	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/users/%s/repos?per_page=100&page=%d&sort=updated", f.baseURL, f.username, page)

		var items []repoItem
		if err := f.getJSON(ctx, url, &items); err != nil {
			return nil, err
		}
		if len(items) == 0 {
			break
		}

		for _, item := range items {
			if item.Archived || (item.Fork && !f.includeForks) {
				continue
			}

			doc := chunking.RepoDocument{
				Name:        item.Name,
				FullName:    item.FullName,
				Description: item.Description,
				URL:         item.HTMLURL,
				Language:    item.Language,
				Topics:      item.Topics,
				Stars:       item.Stars,
				Forks:       item.Forks,
				UpdatedAt:   item.UpdatedAt,
			}

			languages, err := f.fetchLanguages(ctx, item.FullName)
			if err != nil {
				return nil, err
			}
			doc.Languages = languages

			readme, err := f.fetchReadme(ctx, item.FullName)
			if err != nil {
				return nil, err
			}
			doc.Readme = readme

			docs = append(docs, doc)
		}
	}

	return docs, nil
}

// fetchLanguages returns the repo's languages ordered by bytes of code.
func (f *GitHubFetcher) fetchLanguages(ctx context.Context, fullName string) ([]string, error) {
	var byBytes map[string]int
	url := fmt.Sprintf("%s/repos/%s/languages", f.baseURL, fullName)
	if err := f.getJSON(ctx, url, &byBytes); err != nil {
		return nil, err
	}

	languages := make([]string, 0, len(byBytes))
	for language := range byBytes {
		languages = append(languages, language)
	}
	sort.Slice(languages, func(i, j int) bool {
		if byBytes[languages[i]] != byBytes[languages[j]] {
			return byBytes[languages[i]] > byBytes[languages[j]]
		}
		return languages[i] < languages[j]
	})
	return languages, nil
}

// fetchReadme returns the raw README text, or empty when the repo has
// none.
func (f *GitHubFetcher) fetchReadme(ctx context.Context, fullName string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/readme", f.baseURL, fullName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.raw+json")
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	res, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return "", nil
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github readme error: status %d, body: %s", res.StatusCode, string(body))
	}

	return string(body), nil
}

func (f *GitHubFetcher) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	res, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("github api error: status %d, body: %s", res.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}
