package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/pkg/serverutils"
	"docintel-be/internal/service"
)

type IMicrosoftController interface {
	RegisterRoutes(r fiber.Router, sessionMW fiber.Handler)
	ConfigStatus(ctx *fiber.Ctx) error
	BeginAuth(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
	Files(ctx *fiber.Ctx) error
	FileContent(ctx *fiber.Ctx) error
	LlmServerStatus(ctx *fiber.Ctx) error
	LlmServerPing(ctx *fiber.Ctx) error
}

type microsoftController struct {
	service       service.IMicrosoftService
	systemService service.ISystemService
	clientURL     string
	sessionTTL    time.Duration
	secureCookies bool
}

func NewMicrosoftController(
	microsoftService service.IMicrosoftService,
	systemService service.ISystemService,
	clientURL string,
	sessionTTL time.Duration,
	secureCookies bool,
) IMicrosoftController {
	return &microsoftController{
		service:       microsoftService,
		systemService: systemService,
		clientURL:     clientURL,
		sessionTTL:    sessionTTL,
		secureCookies: secureCookies,
	}
}

func (c *microsoftController) RegisterRoutes(r fiber.Router, sessionMW fiber.Handler) {
	h := r.Group("/microsoft")

	h.Get("/config/status", c.ConfigStatus)
	h.Get("/auth/microsoft", c.BeginAuth)
	h.Get("/auth/callback", c.Callback)

	h.Get("/files", sessionMW, c.Files)
	h.Get("/files/:fileId/content", sessionMW, c.FileContent)

	// Machine-to-machine: inference servers report in without a user session.
	h.Get("/llm-server/status", c.LlmServerStatus)
	h.Post("/llm-server/ping", c.LlmServerPing)
}

func (c *microsoftController) ConfigStatus(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Microsoft Graph configuration", c.service.ConfigStatus()))
}

func (c *microsoftController) loginRedirect(ctx *fiber.Ctx, errorCode string) error {
	return ctx.Redirect(c.clientURL+"/login?error="+errorCode, fiber.StatusFound)
}

func (c *microsoftController) BeginAuth(ctx *fiber.Ctx) error {
	authURL, errorCode, err := c.service.BeginAuth(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to initiate Microsoft authentication"))
	}
	if errorCode != "" {
		return c.loginRedirect(ctx, errorCode)
	}
	return ctx.Redirect(authURL, fiber.StatusFound)
}

func (c *microsoftController) Callback(ctx *fiber.Ctx) error {
	result := c.service.HandleCallback(
		ctx.Context(),
		ctx.Query("code"),
		ctx.Query("state"),
		ctx.Query("error"),
	)
	if result.ErrorCode != "" {
		return c.loginRedirect(ctx, result.ErrorCode)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     "session_token",
		Value:    result.SessionToken,
		HTTPOnly: true,
		Secure:   c.secureCookies,
		MaxAge:   int(c.sessionTTL.Seconds()),
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return ctx.Redirect(c.clientURL+"/", fiber.StatusFound)
}

func (c *microsoftController) Files(ctx *fiber.Ctx) error {
	user := serverutils.AuthUser(ctx)
	files, err := c.service.ListFiles(ctx.Context(), user, ctx.Query("source"), ctx.Query("query"))
	if err != nil {
		if errors.Is(err, service.ErrMicrosoftTokenMissing) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to fetch Microsoft files"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Microsoft files", files))
}

func (c *microsoftController) FileContent(ctx *fiber.Ctx) error {
	user := serverutils.AuthUser(ctx)

	source := entity.FileSource(ctx.Query("source", string(entity.FileSourceOneDrive)))
	content, err := c.service.DownloadFile(ctx.Context(), user, ctx.Params("fileId"), source, ctx.Query("siteId"))
	if err != nil {
		if errors.Is(err, service.ErrMicrosoftTokenMissing) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to download file"))
	}

	ctx.Set(fiber.HeaderContentType, "application/octet-stream")
	return ctx.Send(content)
}

func (c *microsoftController) LlmServerStatus(ctx *fiber.Ctx) error {
	statuses, err := c.systemService.LlmServerStatus(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to get LLM server status"))
	}
	return ctx.JSON(serverutils.SuccessResponse("LLM server status", statuses))
}

func (c *microsoftController) LlmServerPing(ctx *fiber.Ctx) error {
	var req dto.LlmServerPingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	status, err := c.systemService.LlmServerPing(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to update LLM server status"))
	}
	return ctx.JSON(serverutils.SuccessResponse("LLM server status updated", status))
}
