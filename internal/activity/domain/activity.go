package domain

import "time"

// Category groups activities on the dashboard
type Category string

const (
	CategoryProject  Category = "project"
	CategoryPersonal Category = "personal"
	CategoryUrgent   Category = "urgent"
	CategoryTeam     Category = "team"
)

// Status represents the current lifecycle state of an activity
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusPending    Status = "pending"
	StatusCompleted  Status = "completed"
	StatusReopen     Status = "reopen"
)

// Activity is a task record with a lifecycle status and optional proof of work.
// Date is a plain calendar day (YYYY-MM-DD, no time zone); Time is display-only.
type Activity struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	AssigneeID  string    `json:"assignee_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date" gorm:"index;not null"` // YYYY-MM-DD
	Time        string    `json:"time,omitempty"`             // HH:MM, display only
	Category    Category  `json:"category" gorm:"default:project"`
	Status      Status    `json:"status" gorm:"index;default:todo"`
	Points      int       `json:"points"` // XP value, fixed at creation

	// Evidence documents the latest terminal action (completion or pending reason).
	// ReopenEvidence documents a re-completion and never replaces the original.
	Evidence       *Evidence `json:"evidence,omitempty" gorm:"serializer:json"`
	Reopened       bool      `json:"reopened"`
	ReopenEvidence *Evidence `json:"reopen_evidence,omitempty" gorm:"serializer:json"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultPoints is the XP value assigned at creation when the client sends none
func DefaultPoints(category Category) int {
	switch category {
	case CategoryUrgent:
		return 30
	case CategoryTeam:
		return 25
	case CategoryProject:
		return 20
	default:
		return 10
	}
}

// ParseCategory maps free-form input to a Category, defaulting to project
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryPersonal, CategoryUrgent, CategoryTeam:
		return Category(s)
	default:
		return CategoryProject
	}
}

// ValidStatus reports whether s names a known lifecycle state
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusTodo, StatusInProgress, StatusPending, StatusCompleted, StatusReopen:
		return true
	}
	return false
}
