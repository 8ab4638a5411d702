package domain

import "time"

// Notification is one persisted in-app notification
type Notification struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Kind      string    `json:"kind" gorm:"not null"` // points, level_up, achievement
	Message   string    `json:"message" gorm:"not null"`
	Icon      string    `json:"icon"`
	Read      bool      `json:"read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}
