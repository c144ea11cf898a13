package controller

import (
	"github.com/gofiber/fiber/v2"

	"docintel-be/internal/pkg/serverutils"
)

// Settings are acknowledged but not persisted server-side; the client keeps
// them locally. The routes exist so the settings page gets a stable contract.
type ISettingsController interface {
	RegisterRoutes(r fiber.Router, sessionMW fiber.Handler)
}

type settingsController struct{}

func NewSettingsController() ISettingsController {
	return &settingsController{}
}

func (c *settingsController) RegisterRoutes(r fiber.Router, sessionMW fiber.Handler) {
	h := r.Group("/settings", sessionMW)
	h.Post("/agent", c.saveHandler("Agent settings saved successfully"))
	h.Post("/user", c.saveHandler("User settings saved successfully"))
	h.Post("/security", c.saveHandler("Security settings saved successfully"))
}

func (c *settingsController) saveHandler(message string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return ctx.JSON(serverutils.SuccessResponse[any](message, nil))
	}
}
