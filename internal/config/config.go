// Package config loads runtime configuration from the environment, with a
// .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DatabaseURL string `validate:"required"`

	OpenAIAPIKey         string `validate:"required"`
	OpenAIChatModel      string
	OpenAIEmbeddingModel string

	QdrantURL        string `validate:"required"`
	QdrantAPIKey     string
	QdrantCollection string

	RetrievalTopK     int
	RetrievalMinScore float64
	MaxContextTokens  int

	RateLimitPerMinute int
	ModerationEnabled  bool

	EmbedChunksTopic string
}

// Load reads the environment, applying defaults for everything except
// credentials and endpoints, which must be set.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:                 getEnv("PORT", "3000"),
		DatabaseURL:          os.Getenv("DB_CONNECTION_STRING"),
		OpenAIAPIKey:         os.Getenv("OPENAI_API_KEY"),
		OpenAIChatModel:      getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
		OpenAIEmbeddingModel: getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
		QdrantURL:            getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantAPIKey:         os.Getenv("QDRANT_API_KEY"),
		QdrantCollection:     getEnv("QDRANT_COLLECTION", "ai_charlotte"),
		RetrievalTopK:        getEnvInt("RETRIEVAL_TOP_K", 3),
		RetrievalMinScore:    getEnvFloat("RETRIEVAL_MIN_SCORE", 0.3),
		MaxContextTokens:     getEnvInt("MAX_CONTEXT_TOKENS", 2000),
		RateLimitPerMinute:   getEnvInt("RATE_LIMIT_PER_MINUTE", 20),
		ModerationEnabled:    getEnvBool("MODERATION_ENABLED", true),
		EmbedChunksTopic:     getEnv("EMBED_CHUNKS_TOPIC_NAME", "embed-chunks"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
