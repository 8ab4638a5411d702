package main

import (
	"log"
	"os"

	api "activityhub-backend/cmd/api"
	activitydomain "activityhub-backend/internal/activity/domain"
	activityRepo "activityhub-backend/internal/activity/repository"
	activityUsecase "activityhub-backend/internal/activity/usecase"
	authdomain "activityhub-backend/internal/auth/domain"
	authRepo "activityhub-backend/internal/auth/repository"
	authUsecase "activityhub-backend/internal/auth/usecase"
	gamificationdomain "activityhub-backend/internal/gamification/domain"
	gamificationRepo "activityhub-backend/internal/gamification/repository"
	gamificationUsecase "activityhub-backend/internal/gamification/usecase"
	"activityhub-backend/internal/notification"
	notificationdomain "activityhub-backend/internal/notification/domain"
	notificationRepoPkg "activityhub-backend/internal/notification/repository"
	summarydomain "activityhub-backend/internal/summary/domain"
	summaryRepoPkg "activityhub-backend/internal/summary/repository"
	"activityhub-backend/pkg/config"
	"activityhub-backend/pkg/database"
	"activityhub-backend/pkg/fcm"
	"activityhub-backend/pkg/sse"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&authdomain.FCMToken{},
		&authdomain.UserPreference{},
		&activitydomain.Activity{},
		&gamificationdomain.Profile{},
		&notificationdomain.Notification{},
		&summarydomain.Summary{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	fcmTokenRepo := authRepo.NewFCMTokenRepository(db)
	activityRepository := activityRepo.NewGormActivityRepository(db)
	profileRepo := gamificationRepo.NewGormProfileRepository(db)
	notificationRepo := notificationRepoPkg.NewNotificationRepository(db)
	summaryRepo := summaryRepoPkg.NewSummaryRepository(db)

	// Initialize SSE Manager
	sseManager := sse.NewManager()
	go sseManager.Run()

	// Initialize FCM Client (optional, notifications fall back to SSE only)
	var fcmClient *fcm.Client
	if cfg.FirebaseCredentials != "" {
		fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push notifications disabled): %v", err)
			fcmClient = nil
		}
	} else {
		log.Println("[WARN] No Firebase credentials configured, FCM disabled")
	}

	// Initialize notification fan-out (DB + SSE + FCM)
	notifService := notification.NewService(notificationRepo, sseManager, fcmTokenRepo, fcmClient)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	activityUsecaseInstance := activityUsecase.NewActivityUsecase(activityRepository)
	gamificationUsecaseInstance := gamificationUsecase.NewGamificationUsecase(profileRepo, userRepo, activityRepository)

	// Wire the completion pipeline: activity completions feed the gamification
	// reducer, whose notifications fan out through the notification service
	gamificationUsecaseInstance.SetNotifier(notifService)
	activityUsecaseInstance.SetProgressSink(gamificationUsecaseInstance)
	activityUsecaseInstance.SetBroadcaster(sseManager)

	// Initialize HTTP handler
	handler := api.NewHandler(
		authUsecaseInstance,
		activityUsecaseInstance,
		gamificationUsecaseInstance,
		sseManager,
		cfg,
		fcmTokenRepo,
		notificationRepo,
		summaryRepo,
		activityRepository,
		userRepo,
	)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := handler.Start(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
