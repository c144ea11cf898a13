package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docintel-be/internal/dto"
	"docintel-be/internal/pkg/serverutils"
	"docintel-be/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, sessionMW fiber.Handler)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router, sessionMW fiber.Handler) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
	h.Post("/logout", sessionMW, c.Logout)
	h.Get("/me", sessionMW, c.Me)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid credentials"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Internal server error"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

// Logout is best-effort: backend failures are swallowed and the client is
// told the session is gone either way.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	token := serverutils.RawToken(ctx)
	if token != "" {
		_ = c.service.Logout(ctx.Context(), token)
	}
	ctx.ClearCookie("session_token")
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out", nil))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	user := serverutils.AuthUser(ctx)
	return ctx.JSON(serverutils.SuccessResponse("Current user", dto.NewUserResponse(user)))
}
