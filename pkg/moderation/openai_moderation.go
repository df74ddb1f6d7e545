// Package moderation screens user input with the OpenAI moderation API
// before it reaches retrieval or generation.
package moderation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

// Result is the moderation verdict for one input.
type Result struct {
	Flagged    bool
	Categories []string
	Scores     map[string]float64
}

// Reason renders the flagged categories for logging and refusal messages.
func (r Result) Reason() string {
	if !r.Flagged || len(r.Categories) == 0 {
		return ""
	}
	return strings.Join(r.Categories, ", ")
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "omni-moderation-latest"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// Moderate classifies one input text.
func (c *Client) Moderate(ctx context.Context, input string) (Result, error) {
	payload, err := json.Marshal(map[string]any{
		"model": c.model,
		"input": input,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/moderations", bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read body: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("openai moderation error: status %d, body: %s", res.StatusCode, string(resBody))
	}

	var out struct {
		Results []struct {
			Flagged        bool               `json:"flagged"`
			Categories     map[string]bool    `json:"categories"`
			CategoryScores map[string]float64 `json:"category_scores"`
		} `json:"results"`
	}
	if err := json.Unmarshal(resBody, &out); err != nil {
		return Result{}, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(out.Results) == 0 {
		return Result{}, fmt.Errorf("empty response from openai moderation")
	}

	verdict := out.Results[0]
	result := Result{Flagged: verdict.Flagged, Scores: verdict.CategoryScores}
	for category, hit := range verdict.Categories {
		if hit {
			result.Categories = append(result.Categories, category)
		}
	}
	sort.Strings(result.Categories)

	return result, nil
}
