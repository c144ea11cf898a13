package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docintel-be/internal/pkg/serverutils"
	"docintel-be/internal/service"
)

type ISystemController interface {
	RegisterRoutes(r fiber.Router, sessionMW fiber.Handler)
	SystemStatus(ctx *fiber.Ctx) error
	Analytics(ctx *fiber.Ctx) error
	DashboardStats(ctx *fiber.Ctx) error
}

type systemController struct {
	systemService service.ISystemService
	statsService  service.IStatsService
}

func NewSystemController(systemService service.ISystemService, statsService service.IStatsService) ISystemController {
	return &systemController{
		systemService: systemService,
		statsService:  statsService,
	}
}

func (c *systemController) RegisterRoutes(r fiber.Router, sessionMW fiber.Handler) {
	r.Get("/system/status", sessionMW, c.SystemStatus)
	r.Get("/analytics", sessionMW, c.Analytics)
	r.Get("/dashboard/stats", sessionMW, c.DashboardStats)
}

func (c *systemController) SystemStatus(ctx *fiber.Ctx) error {
	statuses, err := c.systemService.SystemStatus(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Internal server error"))
	}
	return ctx.JSON(serverutils.SuccessResponse("System status", statuses))
}

func (c *systemController) Analytics(ctx *fiber.Ctx) error {
	rangeParam := ctx.Query("range", "week")

	user := serverutils.AuthUser(ctx)
	analytics, err := c.statsService.Analytics(ctx.Context(), user.Id, rangeParam)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Internal server error"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Analytics", analytics))
}

func (c *systemController) DashboardStats(ctx *fiber.Ctx) error {
	user := serverutils.AuthUser(ctx)
	stats, err := c.statsService.DashboardStats(ctx.Context(), user)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Internal server error"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", stats))
}
