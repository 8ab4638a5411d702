package domain

// Achievement is a fixed catalog entry. Unlocking is monotonic: once an id is
// in a profile's unlocked set it stays there, and its reward is paid exactly once.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Reward      int    `json:"reward"` // points paid on unlock

	// Unlock predicate; zero means "no requirement"
	MinCompleted int `json:"min_completed,omitempty"`
	MinLevel     int `json:"min_level,omitempty"`
}

// Satisfied reports whether the predicate holds for the given progress
func (a Achievement) Satisfied(completedCount int64, level int) bool {
	if a.MinCompleted > 0 && completedCount < int64(a.MinCompleted) {
		return false
	}
	if a.MinLevel > 0 && level < a.MinLevel {
		return false
	}
	return true
}

// Catalog is the static achievement reference data for a session
var Catalog = []Achievement{
	{
		ID:           "first-completion",
		Title:        "First Step",
		Description:  "Complete your first activity",
		Icon:         "🎯",
		Reward:       10,
		MinCompleted: 1,
	},
	{
		ID:           "ten-completions",
		Title:        "On a Roll",
		Description:  "Complete 10 activities",
		Icon:         "🏅",
		Reward:       50,
		MinCompleted: 10,
	},
	{
		ID:           "fifty-completions",
		Title:        "Workhorse",
		Description:  "Complete 50 activities",
		Icon:         "🏆",
		Reward:       200,
		MinCompleted: 50,
	},
	{
		ID:          "level-five",
		Title:       "Rising Star",
		Description: "Reach level 5",
		Icon:        "🚀",
		Reward:      150,
		MinLevel:    5,
	},
	{
		ID:          "level-max",
		Title:       "Legend",
		Description: "Reach the maximum level",
		Icon:        "👑",
		Reward:      1000,
		MinLevel:    MaxLevel,
	},
}

// FindAchievement returns the catalog entry for an id, or false
func FindAchievement(id string) (Achievement, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
