package delivery

import (
	"net/http"

	"activityhub-backend/internal/gamification/usecase"

	"github.com/gin-gonic/gin"
)

// GamificationHandler handles progression-related HTTP requests
type GamificationHandler struct {
	gamificationUsecase usecase.GamificationUsecase
}

// NewGamificationHandler creates a new GamificationHandler
func NewGamificationHandler(gamificationUsecase usecase.GamificationUsecase) *GamificationHandler {
	return &GamificationHandler{
		gamificationUsecase: gamificationUsecase,
	}
}

// GetProfile returns the caller's points, level and progress toward the next level
// GET /api/gamification/profile
func (h *GamificationHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("userID")

	profile, err := h.gamificationUsecase.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetAchievements returns the achievement catalog with the caller's unlock state
// GET /api/gamification/achievements
func (h *GamificationHandler) GetAchievements(c *gin.Context) {
	userID := c.GetString("userID")

	achievements, err := h.gamificationUsecase.ListAchievements(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"achievements": achievements})
}

// GetLeaderboard returns all members ranked by points
// GET /api/gamification/leaderboard
func (h *GamificationHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.gamificationUsecase.Leaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
