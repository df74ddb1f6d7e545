package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/charlotte-qazi/ai-charlotte/internal/entity"
	"github.com/charlotte-qazi/ai-charlotte/pkg/database"
)

type IChatSessionRepository interface {
	UsingTx(ctx context.Context, tx database.DatabaseQueryer) IChatSessionRepository
	Create(ctx context.Context, chatSession *entity.ChatSession) error
	Update(ctx context.Context, chatSession *entity.ChatSession) error
	Delete(ctx context.Context, sessionId uuid.UUID) error
	GetAllSessions(ctx context.Context) ([]*entity.ChatSession, error)
	GetSessionById(ctx context.Context, sessionId uuid.UUID) (*entity.ChatSession, error)
}

type chatSessionRepository struct {
	db database.DatabaseQueryer
}

func NewChatSessionRepository(db *pgxpool.Pool) IChatSessionRepository {
	return &chatSessionRepository{
		db: db,
	}
}

func (r *chatSessionRepository) UsingTx(ctx context.Context, tx database.DatabaseQueryer) IChatSessionRepository {
	return &chatSessionRepository{
		db: tx,
	}
}

func (r *chatSessionRepository) Create(ctx context.Context, chatSession *entity.ChatSession) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO chat_session (id, title, created_at, updated_at, deleted_at, is_deleted) VALUES ($1, $2, $3, $4, $5, $6)`,
		chatSession.Id,
		chatSession.Title,
		chatSession.CreatedAt,
		chatSession.UpdatedAt,
		chatSession.DeletedAt,
		chatSession.IsDeleted,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *chatSessionRepository) Update(ctx context.Context, chatSession *entity.ChatSession) error {
	_, err := r.db.Exec(
		ctx,
		`UPDATE chat_session SET title = $1, updated_at = $2 WHERE id = $3 AND is_deleted = false`,
		chatSession.Title,
		chatSession.UpdatedAt,
		chatSession.Id,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *chatSessionRepository) Delete(ctx context.Context, sessionId uuid.UUID) error {
	_, err := r.db.Exec(
		ctx,
		`UPDATE chat_session SET deleted_at = $1, is_deleted = true WHERE id = $2`,
		time.Now(),
		sessionId,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *chatSessionRepository) GetAllSessions(ctx context.Context) ([]*entity.ChatSession, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, created_at, updated_at, deleted_at, is_deleted FROM chat_session WHERE is_deleted = false ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*entity.ChatSession, 0)
	for rows.Next() {
		var chatSession entity.ChatSession
		err = rows.Scan(
			&chatSession.Id,
			&chatSession.Title,
			&chatSession.CreatedAt,
			&chatSession.UpdatedAt,
			&chatSession.DeletedAt,
			&chatSession.IsDeleted,
		)
		if err != nil {
			return nil, err
		}

		res = append(res, &chatSession)
	}

	return res, rows.Err()
}

func (r *chatSessionRepository) GetSessionById(ctx context.Context, sessionId uuid.UUID) (*entity.ChatSession, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, title, created_at, updated_at, deleted_at, is_deleted FROM chat_session WHERE id = $1 AND is_deleted = false`,
		sessionId,
	)

	var chatSession entity.ChatSession
	err := row.Scan(
		&chatSession.Id,
		&chatSession.Title,
		&chatSession.CreatedAt,
		&chatSession.UpdatedAt,
		&chatSession.DeletedAt,
		&chatSession.IsDeleted,
	)
	if err != nil {
		return nil, err
	}

	return &chatSession, nil
}
