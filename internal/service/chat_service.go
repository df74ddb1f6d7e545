package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/charlotte-qazi/ai-charlotte/internal/constant"
	"github.com/charlotte-qazi/ai-charlotte/internal/dto"
	"github.com/charlotte-qazi/ai-charlotte/internal/entity"
	"github.com/charlotte-qazi/ai-charlotte/internal/repository"
)

// Session titles are cut to this length when taken from the first
// question.
const maxSessionTitleLen = 60

type IChatService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context) ([]*dto.GetAllSessionsResponse, error)
	GetChatHistory(ctx context.Context, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	DeleteSession(ctx context.Context, request *dto.DeleteSessionRequest) error
}

type chatService struct {
	db                    *pgxpool.Pool
	chatSessionRepository repository.IChatSessionRepository
	chatMessageRepository repository.IChatMessageRepository
	ragService            IRagService
}

func NewChatService(
	db *pgxpool.Pool,
	chatSessionRepository repository.IChatSessionRepository,
	chatMessageRepository repository.IChatMessageRepository,
	ragService IRagService,
) IChatService {
	return &chatService{
		db:                    db,
		chatSessionRepository: chatSessionRepository,
		chatMessageRepository: chatMessageRepository,
		ragService:            ragService,
	}
}

func (c *chatService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	now := time.Now()
	chatSession := &entity.ChatSession{
		Id:        uuid.New(),
		Title:     constant.DefaultSessionTitle,
		CreatedAt: now,
	}

	welcome := &entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          constant.WelcomeMessage,
		Role:          constant.ChatMessageRoleAssistant,
		ChatSessionId: chatSession.Id,
		CreatedAt:     now,
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	chatSessionRepository := c.chatSessionRepository.UsingTx(ctx, tx)
	chatMessageRepository := c.chatMessageRepository.UsingTx(ctx, tx)

	if err = chatSessionRepository.Create(ctx, chatSession); err != nil {
		return nil, err
	}
	if err = chatMessageRepository.Create(ctx, welcome); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{
		Id:      chatSession.Id,
		Title:   chatSession.Title,
		Welcome: welcome.Chat,
	}, nil
}

func (c *chatService) GetAllSessions(ctx context.Context) ([]*dto.GetAllSessionsResponse, error) {
	sessions, err := c.chatSessionRepository.GetAllSessions(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetAllSessionsResponse, 0, len(sessions))
	for _, session := range sessions {
		response = append(response, &dto.GetAllSessionsResponse{
			Id:        session.Id,
			Title:     session.Title,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		})
	}

	return response, nil
}

func (c *chatService) GetChatHistory(ctx context.Context, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error) {
	if _, err := c.chatSessionRepository.GetSessionById(ctx, sessionId); err != nil {
		return nil, err
	}

	messages, err := c.chatMessageRepository.GetBySessionId(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetChatHistoryResponse, 0, len(messages))
	for _, message := range messages {
		response = append(response, &dto.GetChatHistoryResponse{
			Id:        message.Id,
			Role:      message.Role,
			Chat:      message.Chat,
			CreatedAt: message.CreatedAt,
		})
	}

	return response, nil
}

// SendChat stores the user message, answers it through the retrieval
// pipeline and stores the reply, all in one transaction. The first
// question of a session also becomes the session title.
func (c *chatService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	chatSessionRepository := c.chatSessionRepository.UsingTx(ctx, tx)
	chatMessageRepository := c.chatMessageRepository.UsingTx(ctx, tx)

	session, err := chatSessionRepository.GetSessionById(ctx, request.ChatSessionId)
	if err != nil {
		return nil, err
	}

	messageCount, err := chatMessageRepository.CountBySessionId(ctx, request.ChatSessionId)
	if err != nil {
		return nil, err
	}
	firstQuestion := messageCount <= 1

	now := time.Now()
	userMessage := entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          request.Message,
		Role:          constant.ChatMessageRoleUser,
		ChatSessionId: request.ChatSessionId,
		CreatedAt:     now,
	}

	answer, err := c.ragService.Answer(ctx, request.Message)
	if err != nil {
		return nil, err
	}

	assistantMessage := entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          answer.Answer,
		Role:          constant.ChatMessageRoleAssistant,
		ChatSessionId: request.ChatSessionId,
		CreatedAt:     now.Add(1 * time.Millisecond),
	}

	if err = chatMessageRepository.Create(ctx, &userMessage); err != nil {
		return nil, err
	}
	if err = chatMessageRepository.Create(ctx, &assistantMessage); err != nil {
		return nil, err
	}

	if firstQuestion {
		session.Title = truncateTitle(request.Message)
	}
	session.UpdatedAt = &now
	if err = chatSessionRepository.Update(ctx, session); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &dto.SendChatResponse{
		ChatSessionId: session.Id,
		Title:         session.Title,
		Send: &dto.SendChatResponseChat{
			Id:        userMessage.Id,
			Chat:      userMessage.Chat,
			Role:      userMessage.Role,
			CreatedAt: userMessage.CreatedAt,
		},
		Reply: &dto.SendChatResponseChat{
			Id:        assistantMessage.Id,
			Chat:      assistantMessage.Chat,
			Role:      assistantMessage.Role,
			CreatedAt: assistantMessage.CreatedAt,
		},
		Sources: answer.Sources,
	}, nil
}

func (c *chatService) DeleteSession(ctx context.Context, request *dto.DeleteSessionRequest) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	chatSessionRepository := c.chatSessionRepository.UsingTx(ctx, tx)
	chatMessageRepository := c.chatMessageRepository.UsingTx(ctx, tx)

	if _, err = chatSessionRepository.GetSessionById(ctx, request.ChatSessionId); err != nil {
		return err
	}
	if err = chatSessionRepository.Delete(ctx, request.ChatSessionId); err != nil {
		return err
	}
	if err = chatMessageRepository.DeleteBySessionId(ctx, request.ChatSessionId); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func truncateTitle(message string) string {
	runes := []rune(message)
	if len(runes) <= maxSessionTitleLen {
		return message
	}
	return string(runes[:maxSessionTitleLen]) + "..."
}
