// Package vectorstore is a minimal REST client for Qdrant. It covers the
// handful of operations the pipeline needs and nothing else: collection
// lifecycle, upsert, similarity search, count and a health probe.
package vectorstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Point is one embedded chunk headed for, or returned from, a collection.
type Point struct {
	ID      string
	Vector  []float32
	Payload map[string]any
}

// SearchResult is one similarity hit with its cosine score.
type SearchResult struct {
	Payload map[string]any
	Score   float32
}

type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	url    string
	apiKey string
	client *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		client: &http.Client{Timeout: timeout},
	}
}

// EnsureCollection creates the collection with cosine distance. Qdrant
// answers 200 when the collection already exists with the same schema, so
// the call is safe to repeat on startup.
func (c *Client) EnsureCollection(ctx context.Context, collection string, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("invalid vector dimension %d", dimension)
	}
	body := map[string]any{
		"vectors": map[string]any{
			"size":     dimension,
			"distance": "Cosine",
		},
	}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("%s/collections/%s", c.url, collection), body, nil)
}

// DeleteCollection drops the collection and everything in it.
func (c *Client) DeleteCollection(ctx context.Context, collection string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/collections/%s", c.url, collection), nil, nil)
}

// Upsert writes points and waits for them to be persisted. Qdrant only
// accepts UUID or integer point ids, so the chunk id is hashed into a
// deterministic UUID and kept verbatim in the payload.
func (c *Client) Upsert(ctx context.Context, collection string, points []Point) error {
	if len(points) == 0 {
		return nil
	}
	upserts := make([]map[string]any, len(points))
	for i, p := range points {
		upserts[i] = map[string]any{
			"id":      PointID(p.ID),
			"vector":  p.Vector,
			"payload": p.Payload,
		}
	}
	url := fmt.Sprintf("%s/collections/%s/points?wait=true", c.url, collection)
	return c.do(ctx, http.MethodPut, url, map[string]any{"points": upserts}, nil)
}

// PointID maps an arbitrary chunk id onto a stable UUID, so re-embedding
// the same chunk overwrites its previous point instead of duplicating it.
func PointID(chunkID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(chunkID)).String()
}

// Search returns the top scoring points for a query vector. Results under
// scoreThreshold are filtered out server side; pass 0 to disable.
func (c *Client) Search(ctx context.Context, collection string, vector []float32, limit int, scoreThreshold float32) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 5
	}
	body := map[string]any{
		"vector":       vector,
		"limit":        limit,
		"with_payload": true,
	}
	if scoreThreshold > 0 {
		body["score_threshold"] = scoreThreshold
	}

	var resp struct {
		Result []struct {
			Score   float32        `json:"score"`
			Payload map[string]any `json:"payload"`
		} `json:"result"`
	}
	url := fmt.Sprintf("%s/collections/%s/points/search", c.url, collection)
	if err := c.do(ctx, http.MethodPost, url, body, &resp); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(resp.Result))
	for _, r := range resp.Result {
		results = append(results, SearchResult{Payload: r.Payload, Score: r.Score})
	}
	return results, nil
}

// Count returns the exact number of points in the collection.
func (c *Client) Count(ctx context.Context, collection string) (int, error) {
	var resp struct {
		Result struct {
			Count int `json:"count"`
		} `json:"result"`
	}
	url := fmt.Sprintf("%s/collections/%s/points/count", c.url, collection)
	if err := c.do(ctx, http.MethodPost, url, map[string]any{"exact": true}, &resp); err != nil {
		return 0, err
	}
	return resp.Result.Count, nil
}

// Healthy probes the Qdrant root endpoint.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"/collections", nil)
	if err != nil {
		return false
	}
	if c.apiKey != "" {
		req.Header.Set("api-key", c.apiKey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode < 300
}

func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("api-key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("qdrant %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("qdrant %s %s failed: %s", method, url, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
