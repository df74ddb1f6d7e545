package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Welcome string    `json:"welcome"`
}

type GetAllSessionsResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type GetChatHistoryResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Chat      string    `json:"chat"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatRequest struct {
	ChatSessionId uuid.UUID `json:"chat_session_id" validate:"required"`
	Message       string    `json:"message" validate:"required,max=2000"`
}

// Source points an answer back at the chunk it was grounded on.
type Source struct {
	Title  string  `json:"title"`
	URL    string  `json:"url,omitempty"`
	Score  float32 `json:"score"`
	Origin string  `json:"source"`
}

type SendChatResponseChat struct {
	Id        uuid.UUID `json:"id"`
	Chat      string    `json:"chat"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	ChatSessionId uuid.UUID             `json:"chat_session_id"`
	Title         string                `json:"title"`
	Send          *SendChatResponseChat `json:"send"`
	Reply         *SendChatResponseChat `json:"reply"`
	Sources       []Source              `json:"sources"`
}

type DeleteSessionRequest struct {
	ChatSessionId uuid.UUID `json:"chat_session_id" validate:"required"`
}

// RagAnswer is the internal result of one retrieval and generation pass.
type RagAnswer struct {
	Answer  string
	Sources []Source
}

// HealthResponse reports the readiness of the pipeline's dependencies.
type HealthResponse struct {
	Status      string `json:"status"`
	VectorStore string `json:"vector_store"`
	PointCount  int    `json:"point_count"`
}
