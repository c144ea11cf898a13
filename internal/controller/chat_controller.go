package controller

import (
	"github.com/gofiber/fiber/v2"

	"docintel-be/internal/dto"
	"docintel-be/internal/pkg/serverutils"
	"docintel-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, sessionMW fiber.Handler)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router, sessionMW fiber.Handler) {
	h := r.Group("/messages", sessionMW)
	h.Get("/", c.List)
	h.Post("/", c.Create)
}

func (c *chatController) List(ctx *fiber.Ctx) error {
	user := serverutils.AuthUser(ctx)
	msgs, err := c.service.List(ctx.Context(), user.Id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Internal server error"))
	}
	return ctx.JSON(serverutils.SuccessResponse("User messages", msgs))
}

func (c *chatController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid message data"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid message data"))
	}

	user := serverutils.AuthUser(ctx)
	msg, err := c.service.Create(ctx.Context(), user.Id, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Internal server error"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Message created", msg))
}
