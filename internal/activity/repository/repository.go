package repository

import (
	"activityhub-backend/internal/activity/domain"
)

// Filter narrows activity listings; zero values mean "no constraint"
type Filter struct {
	AssigneeID string
	Status     *domain.Status
	Category   *domain.Category
	Date       string // exact calendar day, YYYY-MM-DD
	Month      string // calendar month, YYYY-MM
	Limit      int
	Offset     int
}

// ActivityRepository defines the interface for activity data access
type ActivityRepository interface {
	// Create creates a new activity
	Create(activity *domain.Activity) error

	// FindByID finds an activity by its ID; returns (nil, nil) when absent
	FindByID(id string) (*domain.Activity, error)

	// Find lists activities matching the filter with the total count
	Find(filter Filter) ([]*domain.Activity, int64, error)

	// Update replaces an existing activity record
	Update(activity *domain.Activity) error

	// Delete removes an activity by ID
	Delete(id string) error

	// CountCompletedByAssignee counts completed activities for achievement checks
	CountCompletedByAssignee(assigneeID string) (int64, error)
}
