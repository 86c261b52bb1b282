package bootstrap

import (
	"context"
	"log"
	"time"

	"compliancebot-be/internal/config"
	"compliancebot-be/internal/controller"
	"compliancebot-be/internal/model"
	"compliancebot-be/internal/pkg/logger"
	"compliancebot-be/internal/pkg/mailer"
	"compliancebot-be/internal/repository/unitofwork"
	"compliancebot-be/internal/service"
	"compliancebot-be/pkg/docgen"
	"compliancebot-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const reminderTopic = "deadline.reminder"

type Container struct {
	// Controllers
	ChatbotController    controller.IChatbotController
	DocumentController   controller.IDocumentController
	CompanyController    controller.ICompanyController
	ComplianceController controller.IComplianceController
	DeadlineController   controller.IDeadlineController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	DeadlineService service.IDeadlineService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	if err := db.AutoMigrate(
		&model.CompanyProfile{},
		&model.ComplianceItem{},
		&model.Deadline{},
		&model.SavedDocument{},
		&model.ChatSession{},
		&model.ChatMessage{},
	); err != nil {
		log.Fatalf("[FATAL] Failed to migrate database: %v", err)
	}

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// Initialize LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.BaseURL,
		cfg.Ai.APIKey,
		cfg.Ai.Model,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// Document template registry and in-process cache
	registry := docgen.NewRegistry()
	memCache := gocache.New(5*time.Minute, 10*time.Minute)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, reminderTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		reminderTopic,
		uowFactory,
		emailService,
	)

	chatbotService := service.NewChatbotService(
		uowFactory,
		llmProvider,
		rdb,
		sysLogger,
		cfg.Chat.DailyMessageLimit,
		cfg.Chat.HistoryWindow,
	)
	documentService := service.NewDocumentService(uowFactory, registry, memCache, sysLogger, cfg.App.UploadDir)
	companyService := service.NewCompanyService(uowFactory)
	complianceService := service.NewComplianceService(uowFactory, memCache)
	deadlineService := service.NewDeadlineService(uowFactory, publisherService, sysLogger)

	// 5. Controllers
	return &Container{
		ChatbotController:    controller.NewChatbotController(chatbotService, sysLogger),
		DocumentController:   controller.NewDocumentController(documentService),
		CompanyController:    controller.NewCompanyController(companyService),
		ComplianceController: controller.NewComplianceController(complianceService),
		DeadlineController:   controller.NewDeadlineController(deadlineService),

		ConsumerService: consumerService,
		DeadlineService: deadlineService,
	}
}
