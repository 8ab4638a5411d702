package repository

import (
	"errors"
	"time"

	"activityhub-backend/internal/activity/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormActivityRepository implements ActivityRepository using GORM
type gormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a new GORM-based ActivityRepository
func NewGormActivityRepository(db *gorm.DB) ActivityRepository {
	return &gormActivityRepository{db: db}
}

func (r *gormActivityRepository) Create(activity *domain.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	activity.CreatedAt = time.Now()
	activity.UpdatedAt = time.Now()
	return r.db.Create(activity).Error
}

func (r *gormActivityRepository) FindByID(id string) (*domain.Activity, error) {
	var activity domain.Activity
	err := r.db.Where("id = ?", id).First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *gormActivityRepository) Find(filter Filter) ([]*domain.Activity, int64, error) {
	var activities []*domain.Activity
	var total int64

	query := r.db.Model(&domain.Activity{})

	if filter.AssigneeID != "" {
		query = query.Where("assignee_id = ?", filter.AssigneeID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	}
	if filter.Month != "" {
		// Dates are YYYY-MM-DD strings, so a month is a simple prefix
		query = query.Where("date LIKE ?", filter.Month+"-%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("date ASC, time ASC, created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	err := query.Find(&activities).Error
	return activities, total, err
}

func (r *gormActivityRepository) Update(activity *domain.Activity) error {
	activity.UpdatedAt = time.Now()
	return r.db.Save(activity).Error
}

func (r *gormActivityRepository) Delete(id string) error {
	return r.db.Delete(&domain.Activity{}, "id = ?", id).Error
}

func (r *gormActivityRepository) CountCompletedByAssignee(assigneeID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Activity{}).
		Where("assignee_id = ? AND status = ?", assigneeID, domain.StatusCompleted).
		Count(&count).Error
	return count, err
}
