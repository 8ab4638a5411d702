package api

import (
	"net/http"

	activityDelivery "activityhub-backend/internal/activity/delivery"
	"activityhub-backend/internal/auth/delivery"
	authRepo "activityhub-backend/internal/auth/repository"
	authUsecase "activityhub-backend/internal/auth/usecase"
	gamificationDelivery "activityhub-backend/internal/gamification/delivery"
	notificationDelivery "activityhub-backend/internal/notification/delivery"
	summaryDelivery "activityhub-backend/internal/summary/delivery"
	"activityhub-backend/pkg/sse"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	authUsecase authUsecase.AuthUsecase,
	sseManager *sse.Manager,
	fcmRepo authRepo.FCMTokenRepository,
	activityHandler *activityDelivery.ActivityHandler,
	gamificationHandler *gamificationDelivery.GamificationHandler,
	notificationHandler *notificationDelivery.NotificationHandler,
	summaryHandler *summaryDelivery.SummaryHandler,
) {
	authHandler := delivery.NewAuthHandler(authUsecase, fcmRepo)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// SSE endpoint
		api.GET("/events", delivery.AuthMiddleware(authUsecase), func(c *gin.Context) {
			userID := c.GetString("userID")
			sseManager.ServeHTTP(c, userID)
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(authUsecase), authHandler.Me)
		}

		// FCM routes (protected)
		fcm := api.Group("/fcm")
		fcm.Use(delivery.AuthMiddleware(authUsecase))
		{
			fcm.POST("/register", authHandler.RegisterFCMToken)
			fcm.DELETE("/:token", authHandler.UnregisterFCMToken)
		}

		// Team routes (protected)
		team := api.Group("/team")
		team.Use(delivery.AuthMiddleware(authUsecase))
		{
			team.GET("/members", authHandler.Members)
		}

		// Activity routes (protected)
		activities := api.Group("/activities")
		activities.Use(delivery.AuthMiddleware(authUsecase))
		{
			activities.GET("", activityHandler.GetActivities)
			activities.POST("", activityHandler.CreateActivity)
			activities.GET("/search", activityHandler.Search)
			activities.GET("/:id", activityHandler.GetActivityByID)
			activities.PUT("/:id", activityHandler.UpdateActivity)
			activities.DELETE("/:id", activityHandler.DeleteActivity)
			activities.POST("/:id/start", activityHandler.Start)
			activities.POST("/:id/complete", activityHandler.Complete)
			activities.POST("/:id/pend", activityHandler.Pend)
			activities.POST("/:id/back", activityHandler.BackToTodo)
			activities.POST("/:id/resume", activityHandler.Resume)
			activities.POST("/:id/reopen", activityHandler.Reopen)
		}

		// Gamification routes (protected)
		gamification := api.Group("/gamification")
		gamification.Use(delivery.AuthMiddleware(authUsecase))
		{
			gamification.GET("/profile", gamificationHandler.GetProfile)
			gamification.GET("/achievements", gamificationHandler.GetAchievements)
			gamification.GET("/leaderboard", gamificationHandler.GetLeaderboard)
		}

		// Notification routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(delivery.AuthMiddleware(authUsecase))
		{
			notifications.GET("", notificationHandler.GetNotifications)
			notifications.PUT("/read-all", notificationHandler.MarkAllRead)
			notifications.PUT("/:id/read", notificationHandler.MarkRead)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
		}

		// Summary routes (protected) - AI report generation
		summaries := api.Group("/summaries")
		summaries.Use(delivery.AuthMiddleware(authUsecase))
		{
			summaries.POST("/team", summaryHandler.TeamDaily)
			summaries.POST("/member", summaryHandler.MemberMonthly)
			summaries.POST("/queue", summaryHandler.Queue) // Background generation via SSE
		}

		// Settings routes - Runtime configuration
		settings := api.Group("/settings")
		{
			settings.GET("/theme", delivery.AuthMiddleware(authUsecase), authHandler.GetTheme)
			settings.PUT("/theme", delivery.AuthMiddleware(authUsecase), authHandler.SetTheme)
			settings.GET("/ollama", GetOllamaSettings)
			settings.PUT("/ollama", UpdateOllamaSettings)
			settings.POST("/ollama/test", TestOllamaConnection)
		}
	}
}
