package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/charlotte-qazi/ai-charlotte/internal/entity"
	"github.com/charlotte-qazi/ai-charlotte/pkg/database"
)

type IChatMessageRepository interface {
	UsingTx(ctx context.Context, tx database.DatabaseQueryer) IChatMessageRepository
	Create(ctx context.Context, chatMessage *entity.ChatMessage) error
	GetBySessionId(ctx context.Context, chatSessionId uuid.UUID) ([]*entity.ChatMessage, error)
	CountBySessionId(ctx context.Context, chatSessionId uuid.UUID) (int, error)
	DeleteBySessionId(ctx context.Context, chatSessionId uuid.UUID) error
}

type chatMessageRepository struct {
	db database.DatabaseQueryer
}

func NewChatMessageRepository(db *pgxpool.Pool) IChatMessageRepository {
	return &chatMessageRepository{
		db: db,
	}
}

func (r *chatMessageRepository) UsingTx(ctx context.Context, tx database.DatabaseQueryer) IChatMessageRepository {
	return &chatMessageRepository{
		db: tx,
	}
}

func (r *chatMessageRepository) Create(ctx context.Context, chatMessage *entity.ChatMessage) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO chat_message (id, role, chat, session_chat_id, created_at, updated_at, deleted_at, is_deleted) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		chatMessage.Id,
		chatMessage.Role,
		chatMessage.Chat,
		chatMessage.ChatSessionId,
		chatMessage.CreatedAt,
		chatMessage.UpdatedAt,
		chatMessage.DeletedAt,
		chatMessage.IsDeleted,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *chatMessageRepository) GetBySessionId(ctx context.Context, chatSessionId uuid.UUID) ([]*entity.ChatMessage, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, role, chat, session_chat_id, created_at, updated_at, deleted_at, is_deleted FROM chat_message WHERE session_chat_id = $1 AND is_deleted = false ORDER BY created_at ASC`,
		chatSessionId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*entity.ChatMessage, 0)
	for rows.Next() {
		var chatMessage entity.ChatMessage
		err = rows.Scan(
			&chatMessage.Id,
			&chatMessage.Role,
			&chatMessage.Chat,
			&chatMessage.ChatSessionId,
			&chatMessage.CreatedAt,
			&chatMessage.UpdatedAt,
			&chatMessage.DeletedAt,
			&chatMessage.IsDeleted,
		)
		if err != nil {
			return nil, err
		}

		res = append(res, &chatMessage)
	}

	return res, rows.Err()
}

func (r *chatMessageRepository) CountBySessionId(ctx context.Context, chatSessionId uuid.UUID) (int, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM chat_message WHERE session_chat_id = $1 AND is_deleted = false`,
		chatSessionId,
	)

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *chatMessageRepository) DeleteBySessionId(ctx context.Context, chatSessionId uuid.UUID) error {
	_, err := r.db.Exec(
		ctx,
		`UPDATE chat_message SET deleted_at = $1, is_deleted = true WHERE session_chat_id = $2`,
		time.Now(),
		chatSessionId,
	)
	if err != nil {
		return err
	}

	return nil
}
