package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"docintel-be/internal/config"
	"docintel-be/internal/controller"
	"docintel-be/internal/pkg/graph"
	"docintel-be/internal/pkg/logger"
	"docintel-be/internal/pkg/mailer"
	"docintel-be/internal/pkg/sessioncache"
	"docintel-be/internal/repository/memory"
	"docintel-be/internal/repository/unitofwork"
	"docintel-be/internal/service"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	DocumentController  controller.IDocumentController
	ChatController      controller.IChatController
	SystemController    controller.ISystemController
	SettingsController  controller.ISettingsController
	MicrosoftController controller.IMicrosoftController
	AdminController     controller.IAdminController

	// Middleware provider
	AuthService service.IAuthService

	// Storage facade (exposed for seeding in tests)
	UowFactory unitofwork.RepositoryFactory

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

// NewContainer wires the whole dependency graph. db may be nil when the
// memory storage driver is selected.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	var uowFactory unitofwork.RepositoryFactory
	if cfg.Database.Driver == "memory" {
		log.Println("[INFO] Using in-memory storage driver")
		uowFactory = memory.NewFactory(memory.NewStore())
	} else {
		uowFactory = unitofwork.NewRepositoryFactory(db)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// 2. Session cache: Redis when configured, in-process otherwise.
	var sessionCache sessioncache.Cache
	if cfg.App.RedisURL != "" {
		redisCache, err := sessioncache.NewRedisCache(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-process cache", err)
			sessionCache = sessioncache.NewMemoryCache()
		} else {
			sessionCache = redisCache
		}
	} else {
		sessionCache = sessioncache.NewMemoryCache()
	}

	// 3. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 4. Microsoft Graph client
	graphClient := graph.NewClient(
		cfg.Microsoft,
		cfg.App.BaseURL+"/api/microsoft/auth/callback",
		sysLogger,
	)

	// 5. Services
	publisherService := service.NewPublisherService(pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		uowFactory,
		cfg.Pipeline.ProcessingDelay,
		cfg.Pipeline.AssistantReplyDelay,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory, sessionCache, cfg.Session.TTL, sysLogger)
	documentService := service.NewDocumentService(uowFactory, publisherService, sysLogger)
	chatService := service.NewChatService(uowFactory, publisherService, sysLogger)
	systemService := service.NewSystemService(uowFactory)
	statsService := service.NewStatsService(uowFactory)
	microsoftService := service.NewMicrosoftService(
		uowFactory,
		graphClient,
		authService,
		cfg.Microsoft.EmailDomain,
		cfg.Session.StateSecret,
		sysLogger,
	)
	adminService := service.NewAdminService(uowFactory, emailService, sysLogger)

	// 6. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		DocumentController: controller.NewDocumentController(documentService),
		ChatController:     controller.NewChatController(chatService),
		SystemController:   controller.NewSystemController(systemService, statsService),
		SettingsController: controller.NewSettingsController(),
		MicrosoftController: controller.NewMicrosoftController(
			microsoftService,
			systemService,
			cfg.App.ClientURL,
			cfg.Session.TTL,
			cfg.App.Environment == "production",
		),
		AdminController: controller.NewAdminController(adminService),

		AuthService:     authService,
		UowFactory:      uowFactory,
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
