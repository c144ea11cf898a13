package serverutils

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"docintel-be/internal/entity"
)

const (
	authUserKey  = "auth_user"
	authTokenKey = "auth_token"
)

// UserResolver turns a raw bearer token into the authenticated user.
// Implemented by the auth service.
type UserResolver interface {
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}

// SessionMiddleware authenticates requests with an opaque session token,
// read from the Authorization header first and the session cookie second.
func SessionMiddleware(resolver UserResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := bearerToken(ctx)
		if token == "" {
			token = ctx.Cookies("session_token")
		}
		if token == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "No token provided"))
		}

		user, err := resolver.CurrentUser(ctx.Context(), token)
		if err != nil || user == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token"))
		}

		ctx.Locals(authUserKey, user)
		ctx.Locals(authTokenKey, token)
		return ctx.Next()
	}
}

// RequireAdmin must run after SessionMiddleware.
func RequireAdmin() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user := AuthUser(ctx)
		if user == nil || user.Role != entity.UserRoleAdmin {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied: Admins only"))
		}
		return ctx.Next()
	}
}

// AuthUser returns the user set by SessionMiddleware, or nil.
func AuthUser(ctx *fiber.Ctx) *entity.User {
	user, _ := ctx.Locals(authUserKey).(*entity.User)
	return user
}

// RawToken returns the session token the current request authenticated with.
func RawToken(ctx *fiber.Ctx) string {
	token, _ := ctx.Locals(authTokenKey).(string)
	return token
}

func bearerToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}
	return authHeader[7:]
}
