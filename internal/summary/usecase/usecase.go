package usecase

import (
	"context"

	"activityhub-backend/internal/summary/domain"
)

// SummaryUsecase defines the interface for report generation
type SummaryUsecase interface {
	// TeamDaily returns the AI digest of one team day (date YYYY-MM-DD),
	// generating and caching it when force is set or no cached copy exists.
	TeamDaily(ctx context.Context, date string, force bool) (*domain.Summary, error)

	// MemberMonthly returns the AI review of one member's month (month YYYY-MM)
	MemberMonthly(ctx context.Context, memberID, month string, force bool) (*domain.Summary, error)
}
