package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/charlotte-qazi/ai-charlotte/internal/pkg/serverutils"
	"github.com/charlotte-qazi/ai-charlotte/internal/service"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	IngestDocument(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type documentController struct {
	ingestService service.IIngestService
}

func NewDocumentController(ingestService service.IIngestService) IDocumentController {
	return &documentController{
		ingestService: ingestService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/v1/documents")
	h.Post("/ingest", c.IngestDocument)
	h.Get("/status", c.Status)
}

// IngestDocument accepts a multipart upload with a "file" part and an
// optional "document_type" field (cv, qa, markdown or text).
func (c *documentController) IngestDocument(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.ErrBadRequest
	}

	file, err := fileHeader.Open()
	if err != nil {
		return serverutils.ErrInvalidFile
	}
	defer file.Close()

	documentType := ctx.FormValue("document_type", "text")

	res, err := c.ingestService.IngestDocument(ctx.Context(), fileHeader.Filename, documentType, file)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success queue document", res))
}

func (c *documentController) Status(ctx *fiber.Ctx) error {
	res, err := c.ingestService.Status(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get document status", res))
}
