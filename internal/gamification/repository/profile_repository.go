package repository

import (
	"errors"
	"time"

	"activityhub-backend/internal/gamification/domain"

	"gorm.io/gorm"
)

// ProfileRepository defines the interface for progression data access
type ProfileRepository interface {
	// FindByUserID returns a user's profile; (nil, nil) when the user has none yet
	FindByUserID(userID string) (*domain.Profile, error)

	// Save upserts the full profile snapshot in one write
	Save(profile *domain.Profile) error

	// ListByPoints returns all profiles ordered by points, highest first
	ListByPoints() ([]*domain.Profile, error)
}

// gormProfileRepository implements ProfileRepository using GORM
type gormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GORM-based ProfileRepository
func NewGormProfileRepository(db *gorm.DB) ProfileRepository {
	return &gormProfileRepository{db: db}
}

func (r *gormProfileRepository) FindByUserID(userID string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *gormProfileRepository) Save(profile *domain.Profile) error {
	profile.UpdatedAt = time.Now()
	return r.db.Save(profile).Error
}

func (r *gormProfileRepository) ListByPoints() ([]*domain.Profile, error) {
	var profiles []*domain.Profile
	err := r.db.Order("points DESC").Find(&profiles).Error
	return profiles, err
}
