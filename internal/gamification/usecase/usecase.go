package usecase

import (
	activitydomain "activityhub-backend/internal/activity/domain"
	authdomain "activityhub-backend/internal/auth/domain"
	"activityhub-backend/internal/gamification/domain"
)

// Notification kinds emitted by the reducer
const (
	KindPoints      = "points"
	KindLevelUp     = "level_up"
	KindAchievement = "achievement"
)

// ProgressNotification is one toast-worthy event produced by a completion
type ProgressNotification struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
}

// ProgressUpdate is the outcome of running the reducer for one completion
type ProgressUpdate struct {
	Profile       *domain.Profile        `json:"profile"`
	Notifications []ProgressNotification `json:"notifications"`
}

// ProfileView is a profile plus derived progress toward the next level
type ProfileView struct {
	*domain.Profile
	CompletedCount  int64 `json:"completed_count"`
	NextLevelPoints int   `json:"next_level_points"` // 0 when at the level cap
	AtMaxLevel      bool  `json:"at_max_level"`
}

// AchievementView is a catalog entry with the caller's unlock state
type AchievementView struct {
	domain.Achievement
	Unlocked bool `json:"unlocked"`
}

// LeaderboardEntry joins a profile with its user for ranking display
type LeaderboardEntry struct {
	Rank   int              `json:"rank"`
	User   *authdomain.User `json:"user"`
	Points int              `json:"points"`
	Level  int              `json:"level"`
}

// GamificationUsecase defines the interface for progression business logic
type GamificationUsecase interface {
	// ApplyCompletion runs the reducer for one just-completed activity:
	// points, level-ups, achievement unlocks, one atomic profile save,
	// then notification delivery. Idempotent with respect to the unlocked set.
	ApplyCompletion(userID string, activity *activitydomain.Activity) (*ProgressUpdate, error)

	// ActivityCompleted adapts ApplyCompletion to the activity store's
	// completion hook; reducer failures are logged, never propagated back
	// into the activity transition.
	ActivityCompleted(userID string, activity *activitydomain.Activity)

	GetProfile(userID string) (*ProfileView, error)
	ListAchievements(userID string) ([]AchievementView, error)
	Leaderboard() ([]LeaderboardEntry, error)

	// SetNotifier wires the notification fan-out
	SetNotifier(n Notifier)
}

// CompletedCounter counts a user's completed activities for achievement checks
type CompletedCounter interface {
	CountCompletedByAssignee(assigneeID string) (int64, error)
}

// Notifier delivers progress notifications to the user
type Notifier interface {
	Notify(userID, kind, message, icon string)
}
