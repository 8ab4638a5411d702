package delivery

import (
	"net/http"

	authdomain "activityhub-backend/internal/auth/domain"
	"activityhub-backend/internal/summary/domain"
	"activityhub-backend/internal/summary/usecase"

	"github.com/gin-gonic/gin"
)

// SummaryHandler handles report generation endpoints
type SummaryHandler struct {
	summaryUsecase usecase.SummaryUsecase
	summaryWorker  *usecase.SummaryWorkerService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryUsecase usecase.SummaryUsecase, summaryWorker *usecase.SummaryWorkerService) *SummaryHandler {
	return &SummaryHandler{
		summaryUsecase: summaryUsecase,
		summaryWorker:  summaryWorker,
	}
}

// TeamDailyRequest is the request body for team digest generation
type TeamDailyRequest struct {
	Date  string `json:"date" binding:"required"`
	Force bool   `json:"force"`
}

// MemberMonthlyRequest is the request body for monthly review generation.
// MemberID defaults to the caller; only team leads may name someone else.
type MemberMonthlyRequest struct {
	Month    string `json:"month" binding:"required"`
	MemberID string `json:"member_id"`
	Force    bool   `json:"force"`
}

// QueueRequest is the request body for background generation
type QueueRequest struct {
	Scope    string `json:"scope" binding:"required"`
	Period   string `json:"period" binding:"required"`
	MemberID string `json:"member_id"`
	Force    bool   `json:"force"`
}

func currentUser(c *gin.Context) *authdomain.User {
	value, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, _ := value.(*authdomain.User)
	return user
}

// TeamDaily generates (or fetches the cached) digest of one team day
// POST /api/summaries/team
func (h *SummaryHandler) TeamDaily(c *gin.Context) {
	var req TeamDailyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.summaryUsecase.TeamDaily(c.Request.Context(), req.Date, req.Force)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// MemberMonthly generates (or fetches the cached) review of one member's month
// POST /api/summaries/member
func (h *SummaryHandler) MemberMonthly(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req MemberMonthlyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	memberID := req.MemberID
	if memberID == "" {
		memberID = user.ID
	}
	if memberID != user.ID && user.Role != authdomain.RoleLead {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only team leads can view other members' reviews"})
		return
	}

	summary, err := h.summaryUsecase.MemberMonthly(c.Request.Context(), memberID, req.Month, req.Force)
	if err != nil {
		if err.Error() == "user not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Queue schedules background generation; the result arrives over SSE as a
// "summary_update" event
// POST /api/summaries/queue
func (h *SummaryHandler) Queue(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req QueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job := SummaryJobFromRequest(user, req)
	if job == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scope must be team_daily or member_monthly"})
		return
	}
	if job.Scope == domain.ScopeMemberMonthly && job.SubjectID != user.ID && user.Role != authdomain.RoleLead {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only team leads can view other members' reviews"})
		return
	}

	if !h.summaryWorker.QueueJob(*job) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Summary queue is full, try again later"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"queued": true})
}

// SummaryJobFromRequest maps a queue request onto a worker job; nil on bad scope
func SummaryJobFromRequest(user *authdomain.User, req QueueRequest) *usecase.SummaryJob {
	job := usecase.SummaryJob{
		RequesterID: user.ID,
		Period:      req.Period,
		Force:       req.Force,
	}
	switch domain.Scope(req.Scope) {
	case domain.ScopeTeamDaily:
		job.Scope = domain.ScopeTeamDaily
	case domain.ScopeMemberMonthly:
		job.Scope = domain.ScopeMemberMonthly
		job.SubjectID = req.MemberID
		if job.SubjectID == "" {
			job.SubjectID = user.ID
		}
	default:
		return nil
	}
	return &job
}
