package domain

import "time"

// Role of a user inside the team
type Role string

const (
	RoleLead   Role = "lead"
	RoleMember Role = "member"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-"` // Never return password in JSON
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Position  string    `json:"position,omitempty"` // e.g. "QA Engineer"
	Role      Role      `json:"role" gorm:"default:member"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RefreshToken struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserPreference holds the single persisted UI preference: the theme
type UserPreference struct {
	UserID    string    `json:"user_id" gorm:"primaryKey"`
	Theme     string    `json:"theme" gorm:"default:light"` // "light" or "dark"
	UpdatedAt time.Time `json:"updated_at"`
}
