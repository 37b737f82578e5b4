package plays

import (
	"net/http"
	"time"

	"tuneloom-backend/db"
	"tuneloom-backend/models"
	"tuneloom-backend/quota"
	"tuneloom-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Record a song play
// @Description Count a play against the caller's rolling monthly counter. The counter resets one month after the first play of the window; free accounts are capped.
// @Tags plays
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Play recorded"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Monthly play limit reached"
// @Failure 404 {object} map[string]string "error: Profile not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /plays [post]
func RecordPlay(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var profile models.Profile
	if err := db.DB.First(&profile, "user_id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	now := time.Now()

	if profile.PlayCountResetAt == nil || !now.Before(*profile.PlayCountResetAt) {
		// new monthly window, this play is the first of it
		nextReset := now.AddDate(0, 1, 0)
		err := db.DB.Model(&models.Profile{}).Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"monthly_plays_count": 1,
				"play_count_reset_at": nextReset,
				"last_active_date":    now,
			}).Error
		if err != nil {
			utils.LogErrorWithUser(userID, err, "Error resetting the play counter in RecordPlay")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error recording the play"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Play recorded"})
		return
	}

	if !profile.IsPremium && profile.MonthlyPlaysCount >= quota.FreeMonthlyPlayLimit {
		c.JSON(http.StatusForbidden, gin.H{"error": "Monthly play limit reached"})
		return
	}

	err := db.DB.Model(&models.Profile{}).Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"monthly_plays_count": gorm.Expr("monthly_plays_count + 1"),
			"last_active_date":    now,
		}).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error incrementing the play counter in RecordPlay")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error recording the play"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Play recorded"})
}
