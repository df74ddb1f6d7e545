package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmbeddingServer(t *testing.T, dimension int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Input []string `json:"input"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		type item struct {
			Index     int       `json:"index"`
			Embedding []float32 `json:"embedding"`
		}
		data := make([]item, len(req.Input))
		for i := range req.Input {
			data[i] = item{Index: i, Embedding: make([]float32, dimension)}
		}
		assert.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": data}))
	}))
}

func TestDimensionKnownModel(t *testing.T) {
	client, err := NewClient(Config{APIKey: "test", Model: "text-embedding-3-small"})
	require.NoError(t, err)
	assert.Equal(t, 1536, client.Dimension())
}

func TestDimensionLearnedFromFirstResponse(t *testing.T) {
	srv := newEmbeddingServer(t, 8)
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "test", BaseURL: srv.URL, Model: "custom-model"})
	require.NoError(t, err)
	assert.Equal(t, 0, client.Dimension())

	// Concurrent first calls, the way the consumer goroutine and request
	// handlers share the client in the server.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			vectors, err := client.EmbedBatch(context.Background(), []string{"some text"})
			assert.NoError(t, err)
			assert.Len(t, vectors, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, client.Dimension())
}
