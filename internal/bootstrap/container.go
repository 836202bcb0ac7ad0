package bootstrap

import (
	"context"
	"log"

	"title-assist-be/internal/config"
	"title-assist-be/internal/controller"
	"title-assist-be/internal/pkg/logger"
	"title-assist-be/internal/pkg/mailer"
	"title-assist-be/internal/pkg/ratelimit"
	"title-assist-be/internal/repository/implementation"
	"title-assist-be/internal/repository/memory"
	"title-assist-be/internal/service"
	"title-assist-be/internal/websocket"
	"title-assist-be/pkg/conversation"
	"title-assist-be/pkg/forms"
	"title-assist-be/pkg/llm/factory"

	pktNats "title-assist-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const transcriptTopic = "TRANSCRIPT_LINES"

type Container struct {
	// Controllers
	ConversationController controller.IConversationController
	ChatController         controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus (in-process, for transcript persistence)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Initialize LLM Provider based on Config
	baseURL := cfg.Ai.OpenAIBaseURL
	if cfg.Ai.LLMProvider == "ollama" {
		baseURL = cfg.Ai.OllamaBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		baseURL,
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// In-memory session storage
	sessionRepo := memory.NewSessionRepository()

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
		natsSub = nil
	}

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
		rdb = nil
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/widget_ws.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	limiter := ratelimit.NewLimiter(rdb, sysLogger)

	// 3. Repositories
	recordRepo := implementation.NewClientRecordRepository(db)
	transcriptRepo := implementation.NewTranscriptRepository(db)

	// 4. Services
	transcriptPub := service.NewTranscriptPublisher(transcriptTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, transcriptTopic, transcriptRepo)

	notifierService := service.NewNotifierService(natsSub, emailService, cfg.Chat.OperatorEmail, sysLogger)
	if natsSub != nil {
		go notifierService.Start()
	}

	recordLookup := service.NewRecordLookup(recordRepo, natsPub, sysLogger)
	codeAuth := service.NewCodeAuthenticator(cfg.Chat, emailService, sysLogger)
	assistantService := service.NewAssistantService(llmProvider)

	engine := conversation.NewEngine(
		recordLookup,
		assistantService,
		codeAuth,
		forms.DefaultCatalog(),
		sysLogger,
	)

	conversationService := service.NewConversationService(
		engine,
		sessionRepo,
		transcriptRepo,
		transcriptPub,
		natsPub,
		wsHub,
		limiter,
		cfg,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		ConversationController: controller.NewConversationController(conversationService, wsHub, cfg.App.JWTSecret, sysLogger),
		ChatController:         controller.NewChatController(assistantService),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
	}
}
