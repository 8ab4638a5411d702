package domain

import "time"

// Scope identifies which report a summary was generated from
type Scope string

const (
	ScopeTeamDaily     Scope = "team_daily"
	ScopeMemberMonthly Scope = "member_monthly"
)

// Summary is one cached AI-generated report
type Summary struct {
	ID      string `json:"id" gorm:"primaryKey"`
	Scope   Scope  `json:"scope" gorm:"uniqueIndex:idx_summary_key;not null"`
	Period  string `json:"period" gorm:"uniqueIndex:idx_summary_key;not null"` // YYYY-MM-DD or YYYY-MM
	// SubjectID is the member the report covers; empty for team-wide summaries
	SubjectID   string    `json:"subject_id" gorm:"uniqueIndex:idx_summary_key;default:''"`
	Content     string    `json:"content" gorm:"type:text"` // markdown as returned by the model
	HTML        string    `json:"html" gorm:"type:text"`    // sanitized rendering of Content
	GeneratedAt time.Time `json:"generated_at"`
}
