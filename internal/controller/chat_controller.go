package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/charlotte-qazi/ai-charlotte/internal/dto"
	"github.com/charlotte-qazi/ai-charlotte/internal/pkg/serverutils"
	"github.com/charlotte-qazi/ai-charlotte/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	GetAllSessions(ctx *fiber.Ctx) error
	GetChatHistory(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	ragService  service.IRagService
}

func NewChatController(chatService service.IChatService, ragService service.IRagService) IChatController {
	return &chatController{
		chatService: chatService,
		ragService:  ragService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/v1/chat")
	h.Post("/", c.SendChat)
	h.Post("/sessions", c.CreateSession)
	h.Get("/sessions", c.GetAllSessions)
	h.Get("/sessions/:id/history", c.GetChatHistory)
	h.Delete("/sessions/:id", c.DeleteSession)

	r.Get("/v1/health", c.Health)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	var request dto.SendChatRequest
	if err := ctx.BodyParser(&request); err != nil {
		return serverutils.ErrBadRequest
	}
	if err := serverutils.ValidateStruct(&request); err != nil {
		return err
	}

	res, err := c.chatService.SendChat(ctx.Context(), &request)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.chatService.CreateSession(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *chatController) GetAllSessions(ctx *fiber.Ctx) error {
	res, err := c.chatService.GetAllSessions(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all sessions", res))
}

func (c *chatController) GetChatHistory(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrBadRequest
	}

	res, err := c.chatService.GetChatHistory(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrBadRequest
	}

	if err := c.chatService.DeleteSession(ctx.Context(), &dto.DeleteSessionRequest{ChatSessionId: id}); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete session", nil))
}

func (c *chatController) Health(ctx *fiber.Ctx) error {
	res, err := c.ragService.Health(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
