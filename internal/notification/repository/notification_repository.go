package repository

import (
	"activityhub-backend/internal/notification/domain"

	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification persistence
type NotificationRepository interface {
	Create(n *domain.Notification) error
	ListByUserID(userID string, limit int) ([]*domain.Notification, error)
	CountUnread(userID string) (int64, error)
	MarkRead(userID, id string) error
	MarkAllRead(userID string) error
	Delete(userID, id string) error
}

type gormNotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new gorm-backed notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &gormNotificationRepository{db: db}
}

func (r *gormNotificationRepository) Create(n *domain.Notification) error {
	return r.db.Create(n).Error
}

func (r *gormNotificationRepository) ListByUserID(userID string, limit int) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *gormNotificationRepository) CountUnread(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *gormNotificationRepository) MarkRead(userID, id string) error {
	return r.db.Model(&domain.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true).Error
}

func (r *gormNotificationRepository) MarkAllRead(userID string) error {
	return r.db.Model(&domain.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}

func (r *gormNotificationRepository) Delete(userID, id string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Notification{}).Error
}
