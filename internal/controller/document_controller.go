package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"docintel-be/internal/dto"
	"docintel-be/internal/pkg/serverutils"
	"docintel-be/internal/service"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router, sessionMW fiber.Handler)
	List(ctx *fiber.Ctx) error
	Shared(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	ClearKnowledgeBase(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
}

type documentController struct {
	service service.IDocumentService
}

func NewDocumentController(service service.IDocumentService) IDocumentController {
	return &documentController{service: service}
}

func (c *documentController) RegisterRoutes(r fiber.Router, sessionMW fiber.Handler) {
	h := r.Group("/documents", sessionMW)
	h.Get("/", c.List)
	h.Get("/shared", c.Shared)
	h.Post("/", c.Create)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)

	r.Post("/upload", sessionMW, c.Upload)
	r.Get("/search", sessionMW, c.Search)
	r.Delete("/knowledge/clear", sessionMW, c.ClearKnowledgeBase)
	r.Get("/data/export", sessionMW, c.Export)
}

func (c *documentController) List(ctx *fiber.Ctx) error {
	user := serverutils.AuthUser(ctx)
	docs, err := c.service.List(ctx.Context(), user.Id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Internal server error"))
	}
	return ctx.JSON(serverutils.SuccessResponse("User documents", docs))
}

func (c *documentController) Shared(ctx *fiber.Ctx) error {
	docs, err := c.service.Shared(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Internal server error"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Shared documents", docs))
}

func (c *documentController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid document data"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid document data"))
	}

	user := serverutils.AuthUser(ctx)
	doc, err := c.service.Create(ctx.Context(), user.Id, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Internal server error"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Document created", doc))
}

func (c *documentController) Update(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid document ID"))
	}

	var req dto.UpdateDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid document data"))
	}

	user := serverutils.AuthUser(ctx)
	doc, err := c.service.Update(ctx.Context(), user.Id, uint(id), &req)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Document not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Internal server error"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Document updated", doc))
}

func (c *documentController) Delete(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid document ID"))
	}

	user := serverutils.AuthUser(ctx)
	if err := c.service.Delete(ctx.Context(), user.Id, uint(id)); err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Document not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Internal server error"))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Document deleted", nil))
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	var req dto.UploadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Upload failed"))
	}

	user := serverutils.AuthUser(ctx)
	doc, err := c.service.Upload(ctx.Context(), user.Id, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Upload failed"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Upload accepted", doc))
}

func (c *documentController) Search(ctx *fiber.Ctx) error {
	user := serverutils.AuthUser(ctx)
	results, err := c.service.Search(ctx.Context(), user.Id, ctx.Query("q"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Internal server error"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Search results", results))
}

func (c *documentController) ClearKnowledgeBase(ctx *fiber.Ctx) error {
	user := serverutils.AuthUser(ctx)
	if err := c.service.ClearKnowledgeBase(ctx.Context(), user.Id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Failed to clear knowledge base"))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Knowledge base cleared successfully", nil))
}

func (c *documentController) Export(ctx *fiber.Ctx) error {
	user := serverutils.AuthUser(ctx)
	export, err := c.service.Export(ctx.Context(), user)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Internal server error"))
	}
	return ctx.JSON(serverutils.SuccessResponse("User data export", export))
}
