package repository

import (
	"errors"

	"activityhub-backend/internal/summary/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SummaryRepository defines the interface for the summary cache
type SummaryRepository interface {
	Get(scope domain.Scope, period, subjectID string) (*domain.Summary, error)
	Save(summary *domain.Summary) error
}

type gormSummaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new gorm-backed summary cache
func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &gormSummaryRepository{db: db}
}

func (r *gormSummaryRepository) Get(scope domain.Scope, period, subjectID string) (*domain.Summary, error) {
	var summary domain.Summary
	err := r.db.Where("scope = ? AND period = ? AND subject_id = ?", scope, period, subjectID).
		First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}

func (r *gormSummaryRepository) Save(summary *domain.Summary) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "scope"}, {Name: "period"}, {Name: "subject_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "html", "generated_at"}),
	}).Create(summary).Error
}
