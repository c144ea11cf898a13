package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"docintel-be/internal/dto"
	"docintel-be/internal/pkg/serverutils"
	"docintel-be/internal/service"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router, sessionMW, adminMW fiber.Handler)
	ApprovalRequests(ctx *fiber.Ctx) error
	DecideApprovalRequest(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

func (c *adminController) RegisterRoutes(r fiber.Router, sessionMW, adminMW fiber.Handler) {
	h := r.Group("/microsoft/admin", sessionMW, adminMW)
	h.Get("/approval-requests", c.ApprovalRequests)
	h.Post("/approval-requests/:id/decision", c.DecideApprovalRequest)
}

func (c *adminController) ApprovalRequests(ctx *fiber.Ctx) error {
	requests, err := c.service.PendingApprovalRequests(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to fetch approval requests"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Pending approval requests", requests))
}

func (c *adminController) DecideApprovalRequest(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid approval request ID"))
	}

	var req dto.ApprovalDecisionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	admin := serverutils.AuthUser(ctx)
	res, err := c.service.DecideApprovalRequest(ctx.Context(), admin.Id, uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrApprovalRequestNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Approval request not found"))
		case errors.Is(err, service.ErrApprovalAlreadyDecided):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to process approval decision"))
		}
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}
