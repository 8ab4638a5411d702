package notification

import (
	"context"
	"log"
	"time"

	authrepo "activityhub-backend/internal/auth/repository"
	"activityhub-backend/internal/notification/domain"
	"activityhub-backend/internal/notification/repository"
	"activityhub-backend/pkg/fcm"
	"activityhub-backend/pkg/sse"

	"github.com/google/uuid"
)

// Service persists notifications and fans them out over SSE and FCM
type Service struct {
	repo       repository.NotificationRepository
	sseManager *sse.Manager
	fcmRepo    authrepo.FCMTokenRepository
	fcmClient  *fcm.Client
}

// NewService creates a new notification service. fcmClient may be nil when
// push notifications are not configured.
func NewService(repo repository.NotificationRepository, sseManager *sse.Manager, fcmRepo authrepo.FCMTokenRepository, fcmClient *fcm.Client) *Service {
	return &Service{
		repo:       repo,
		sseManager: sseManager,
		fcmRepo:    fcmRepo,
		fcmClient:  fcmClient,
	}
}

// Notify stores a notification and delivers it to the user's open sessions
// and registered devices.
func (s *Service) Notify(userID, kind, message, icon string) {
	n := &domain.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Kind:      kind,
		Message:   message,
		Icon:      icon,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(n); err != nil {
		log.Printf("[Notification] Failed to store notification for user %s: %v", userID, err)
	}

	s.sseManager.SendToUser(userID, "notification", n)

	if s.fcmClient != nil && s.fcmRepo != nil {
		go s.sendPush(userID, n)
	}
}

func (s *Service) sendPush(userID string, n *domain.Notification) {
	tokens, err := s.fcmRepo.GetTokensByUserID(userID)
	if err != nil {
		log.Printf("[FCM] Error getting tokens for user %s: %v", userID, err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	tokenStrings := make([]string, 0, len(tokens))
	for _, t := range tokens {
		tokenStrings = append(tokenStrings, t.Token)
	}

	failedTokens, err := s.fcmClient.SendToDevices(context.Background(), tokenStrings, fcm.NotificationData{
		Title: pushTitle(n.Kind),
		Body:  n.Message,
		Data: map[string]string{
			"type":         n.Kind,
			"notification": n.ID,
			"click_action": "/dashboard",
		},
	})
	if err != nil {
		log.Printf("[FCM] Error sending notifications: %v", err)
		return
	}

	if len(failedTokens) > 0 {
		log.Printf("[FCM] Cleaning up %d failed tokens", len(failedTokens))
		for _, token := range failedTokens {
			s.fcmRepo.DeleteToken(token)
		}
	}
}

func pushTitle(kind string) string {
	switch kind {
	case "level_up":
		return "Level up!"
	case "achievement":
		return "Achievement unlocked"
	default:
		return "Points earned"
	}
}
