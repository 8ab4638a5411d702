package usecase

import (
	"errors"

	"activityhub-backend/internal/activity/domain"
	"activityhub-backend/internal/activity/repository"
)

// ErrInvalidField marks rejected user input on create/update; handlers map it
// to a client error rather than a server one
var ErrInvalidField = errors.New("invalid field value")

// ActivityUsecase defines the interface for activity business logic
type ActivityUsecase interface {
	// CreateActivity creates a new activity in todo status assigned to the caller
	CreateActivity(userID string, req CreateActivityRequest) (*domain.Activity, error)

	// GetActivityByID retrieves a single activity (team-wide read access)
	GetActivityByID(activityID string) (*domain.Activity, error)

	// ListActivities lists activities with optional filters
	ListActivities(filter repository.Filter) ([]*domain.Activity, int64, error)

	// UpdateActivity edits the descriptive fields; points and status are not editable here
	UpdateActivity(userID, activityID string, updates ActivityUpdateRequest) (*domain.Activity, error)

	// Status transitions. All enforce the state machine and assignee ownership.
	Start(userID, activityID string) (*domain.Activity, error)
	BackToTodo(userID, activityID string) (*domain.Activity, error)
	Resume(userID, activityID string) (*domain.Activity, error)
	Reopen(userID, activityID string) (*domain.Activity, error)

	// Complete and Pend validate the evidence first; nothing is mutated on rejection.
	// A successful Complete feeds the gamification reducer exactly once.
	Complete(userID, activityID string, evidence domain.Evidence) (*domain.Activity, error)
	Pend(userID, activityID string, evidence domain.Evidence) (*domain.Activity, error)

	// DeleteActivity removes a record unconditionally and tells clients to close
	// any open detail view for it
	DeleteActivity(userID, activityID string) error

	// Search fuzzy-matches the caller's activities by title, description and category
	Search(userID, query string) ([]*domain.Activity, error)

	// SetProgressSink wires the gamification reducer
	SetProgressSink(sink ProgressSink)

	// SetBroadcaster wires the real-time event channel
	SetBroadcaster(b Broadcaster)
}

// CreateActivityRequest carries the fields a client controls at creation
type CreateActivityRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time"`                    // HH:MM, optional
	Category    string `json:"category"`
	Points      int    `json:"points"` // 0 means default for the category
}

// ActivityUpdateRequest represents the editable fields
type ActivityUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// ProgressSink receives completion events for gamification processing
type ProgressSink interface {
	ActivityCompleted(userID string, activity *domain.Activity)
}

// Broadcaster pushes real-time events to connected clients
type Broadcaster interface {
	Broadcast(event string, data interface{})
}
