package domain

import "time"

// LevelThresholds maps 1-based levels to the cumulative points required.
// Level n requires LevelThresholds[n-1] points; a single completion can
// cross several thresholds at once.
var LevelThresholds = []int{0, 100, 250, 500, 1000, 2000, 4000, 8000, 16000, 32000}

// MaxLevel is the highest reachable level
var MaxLevel = len(LevelThresholds)

// Profile accumulates a user's progression. Points and level only ever grow,
// and the unlocked set only ever gains ids.
type Profile struct {
	UserID                 string    `json:"user_id" gorm:"primaryKey"`
	Points                 int       `json:"points"`
	Level                  int       `json:"level" gorm:"default:1"`
	UnlockedAchievementIDs []string  `json:"unlocked_achievement_ids" gorm:"serializer:json"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// NewProfile returns the level-1 starting profile for a user
func NewProfile(userID string) *Profile {
	return &Profile{
		UserID:                 userID,
		Points:                 0,
		Level:                  1,
		UnlockedAchievementIDs: []string{},
	}
}

// LevelForPoints returns the highest level whose threshold does not exceed points
func LevelForPoints(points int) int {
	level := 1
	for level < MaxLevel && points >= LevelThresholds[level] {
		level++
	}
	return level
}

// NextThreshold returns the points needed for the next level, or false at the cap
func NextThreshold(level int) (int, bool) {
	if level >= MaxLevel {
		return 0, false
	}
	return LevelThresholds[level], true
}

// HasUnlocked reports whether the achievement id is already in the unlocked set
func (p *Profile) HasUnlocked(id string) bool {
	for _, unlocked := range p.UnlockedAchievementIDs {
		if unlocked == id {
			return true
		}
	}
	return false
}
