package api

import (
	"log"

	activityDelivery "activityhub-backend/internal/activity/delivery"
	activityRepo "activityhub-backend/internal/activity/repository"
	activityUsecasePkg "activityhub-backend/internal/activity/usecase"
	authRepo "activityhub-backend/internal/auth/repository"
	authUsecase "activityhub-backend/internal/auth/usecase"
	gamificationDelivery "activityhub-backend/internal/gamification/delivery"
	gamificationUsecasePkg "activityhub-backend/internal/gamification/usecase"
	notificationDelivery "activityhub-backend/internal/notification/delivery"
	notificationRepoPkg "activityhub-backend/internal/notification/repository"
	summaryDelivery "activityhub-backend/internal/summary/delivery"
	summaryRepoPkg "activityhub-backend/internal/summary/repository"
	summaryUsecasePkg "activityhub-backend/internal/summary/usecase"
	"activityhub-backend/pkg/ai"
	"activityhub-backend/pkg/config"
	"activityhub-backend/pkg/sse"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase         authUsecase.AuthUsecase
	sseManager          *sse.Manager
	config              *config.Config
	fcmRepo             authRepo.FCMTokenRepository
	activityHandler     *activityDelivery.ActivityHandler
	gamificationHandler *gamificationDelivery.GamificationHandler
	notificationHandler *notificationDelivery.NotificationHandler
	summaryHandler      *summaryDelivery.SummaryHandler
	summaryWorker       *summaryUsecasePkg.SummaryWorkerService
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	activityUc activityUsecasePkg.ActivityUsecase,
	gamificationUc gamificationUsecasePkg.GamificationUsecase,
	sseManager *sse.Manager,
	cfg *config.Config,
	fcmRepo authRepo.FCMTokenRepository,
	notificationRepo notificationRepoPkg.NotificationRepository,
	summaryRepo summaryRepoPkg.SummaryRepository,
	activityRepository activityRepo.ActivityRepository,
	userRepository authRepo.UserRepository,
) *Handler {
	// Initialize runtime config for settings API
	InitRuntimeConfig(cfg.OllamaBaseURL, cfg.OllamaModel)

	// Initialize AI service with dynamic config getters for runtime updates
	aiCfg := ai.DynamicConfig{
		Provider:         ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:     cfg.GeminiApiKey,
		GetOllamaBaseURL: GetRuntimeOllamaBaseURL,
		GetOllamaModel:   GetRuntimeOllamaModel,
	}
	aiService, err := ai.NewSummarizerServiceWithDynamicConfig(aiCfg)
	if err != nil {
		log.Printf("Warning: Failed to initialize AI service: %v", err)
	} else {
		log.Printf("AI service initialized with provider: %s (dynamic config enabled)", cfg.AIProvider)
	}

	// Initialize summary generation with background workers
	summaryUc := summaryUsecasePkg.NewSummaryUsecase(summaryRepo, activityRepository, userRepository, aiService)
	summaryWorker := summaryUsecasePkg.NewSummaryWorkerService(summaryUc, sseManager, 2)
	summaryWorker.Start()
	log.Println("Summary worker service started")

	return &Handler{
		authUsecase:         authUc,
		sseManager:          sseManager,
		config:              cfg,
		fcmRepo:             fcmRepo,
		activityHandler:     activityDelivery.NewActivityHandler(activityUc),
		gamificationHandler: gamificationDelivery.NewGamificationHandler(gamificationUc),
		notificationHandler: notificationDelivery.NewNotificationHandler(notificationRepo),
		summaryHandler:      summaryDelivery.NewSummaryHandler(summaryUc, summaryWorker),
		summaryWorker:       summaryWorker,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.sseManager, h.fcmRepo, h.activityHandler, h.gamificationHandler, h.notificationHandler, h.summaryHandler)

	return r.Run(addr)
}
