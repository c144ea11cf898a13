package server

import (
	"log"

	"docintel-be/internal/bootstrap"
	"docintel-be/internal/config"
	"docintel-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	// Initialize Fiber App
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	sessionMW := serverutils.SessionMiddleware(c.AuthService)
	adminMW := serverutils.RequireAdmin()

	c.AuthController.RegisterRoutes(api, sessionMW)
	c.DocumentController.RegisterRoutes(api, sessionMW)
	c.ChatController.RegisterRoutes(api, sessionMW)
	c.SystemController.RegisterRoutes(api, sessionMW)
	c.SettingsController.RegisterRoutes(api, sessionMW)
	c.MicrosoftController.RegisterRoutes(api, sessionMW)
	c.AdminController.RegisterRoutes(api, sessionMW, adminMW)
}
