package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"activityhub-backend/internal/activity/domain"
	"activityhub-backend/internal/activity/repository"
	"activityhub-backend/internal/activity/usecase"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles activity-related HTTP requests
type ActivityHandler struct {
	activityUsecase usecase.ActivityUsecase
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityUsecase usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{
		activityUsecase: activityUsecase,
	}
}

// EvidenceRequest is the request body for complete/pend operations
type EvidenceRequest struct {
	Evidence domain.Evidence `json:"evidence" binding:"required"`
}

// respondError maps usecase errors onto HTTP statuses
func respondError(c *gin.Context, err error) {
	switch {
	case err.Error() == "activity not found":
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
	case err.Error() == "unauthorized":
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	case errors.Is(err, usecase.ErrInvalidField),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrEvidenceEmpty),
		errors.Is(err, domain.ErrEvidenceTooLarge),
		errors.Is(err, domain.ErrEvidenceInvalidType),
		errors.Is(err, domain.ErrEvidenceMalformed):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GetActivities lists activities with optional filters
// GET /api/activities?assignee=me&status=todo&category=project&date=2025-10-25&month=2025-10&limit=50&offset=0
func (h *ActivityHandler) GetActivities(c *gin.Context) {
	userID := c.GetString("userID")

	filter := repository.Filter{
		Date:  c.Query("date"),
		Month: c.Query("month"),
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	switch assignee := c.Query("assignee"); assignee {
	case "me":
		filter.AssigneeID = userID
	case "":
	default:
		filter.AssigneeID = assignee
	}

	if status := c.Query("status"); status != "" {
		if !domain.ValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status " + status})
			return
		}
		s := domain.Status(status)
		filter.Status = &s
	}
	if category := c.Query("category"); category != "" {
		cat := domain.ParseCategory(category)
		filter.Category = &cat
	}

	activities, total, err := h.activityUsecase.ListActivities(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activities": activities,
		"total":      total,
	})
}

// GetActivityByID returns a specific activity
// GET /api/activities/:id
func (h *ActivityHandler) GetActivityByID(c *gin.Context) {
	activity, err := h.activityUsecase.GetActivityByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

// CreateActivity creates a new activity assigned to the caller
// POST /api/activities
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.activityUsecase.CreateActivity(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// UpdateActivity edits the descriptive fields of an activity
// PUT /api/activities/:id
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	userID := c.GetString("userID")

	var updates usecase.ActivityUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.activityUsecase.UpdateActivity(userID, c.Param("id"), updates)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

// DeleteActivity removes an activity
// DELETE /api/activities/:id
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.activityUsecase.DeleteActivity(userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}

// Start moves an activity from todo to in_progress
// POST /api/activities/:id/start
func (h *ActivityHandler) Start(c *gin.Context) {
	h.applyTransition(c, h.activityUsecase.Start)
}

// BackToTodo returns an in-progress activity to the backlog
// POST /api/activities/:id/back
func (h *ActivityHandler) BackToTodo(c *gin.Context) {
	h.applyTransition(c, h.activityUsecase.BackToTodo)
}

// Resume picks a pending activity back up
// POST /api/activities/:id/resume
func (h *ActivityHandler) Resume(c *gin.Context) {
	h.applyTransition(c, h.activityUsecase.Resume)
}

// Reopen sends a completed activity back for rework
// POST /api/activities/:id/reopen
func (h *ActivityHandler) Reopen(c *gin.Context) {
	h.applyTransition(c, h.activityUsecase.Reopen)
}

func (h *ActivityHandler) applyTransition(c *gin.Context, op func(userID, activityID string) (*domain.Activity, error)) {
	userID := c.GetString("userID")

	activity, err := op(userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

// Complete finishes an activity with evidence
// POST /api/activities/:id/complete
func (h *ActivityHandler) Complete(c *gin.Context) {
	userID := c.GetString("userID")

	var req EvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.activityUsecase.Complete(userID, c.Param("id"), req.Evidence)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

// Pend parks an activity with a reason
// POST /api/activities/:id/pend
func (h *ActivityHandler) Pend(c *gin.Context) {
	userID := c.GetString("userID")

	var req EvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.activityUsecase.Pend(userID, c.Param("id"), req.Evidence)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

// Search fuzzy-searches the caller's activities
// GET /api/activities/search?q=deploy
func (h *ActivityHandler) Search(c *gin.Context) {
	userID := c.GetString("userID")

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	activities, err := h.activityUsecase.Search(userID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if activities == nil {
		activities = []*domain.Activity{}
	}

	c.JSON(http.StatusOK, gin.H{
		"activities": activities,
		"count":      len(activities),
	})
}
