package profiles

import (
	"net/http"

	"tuneloom-backend/db"
	"tuneloom-backend/models"
	"tuneloom-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Create the caller's profile
// @Description Create a profile for the authenticated user on first login. Idempotent: an existing profile is returned as-is.
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /profile [post]
func CreateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var existing models.Profile
	if err := db.DB.First(&existing, "user_id = ?", userID).Error; err == nil {
		c.JSON(http.StatusOK, existing)
		return
	}

	profile := models.Profile{
		UserID:       userID.(string),
		IsOnboarding: true,
	}

	if err := db.DB.Create(&profile).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the profile in CreateProfile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the profile"})
		return
	}

	utils.LogSuccessWithUser(userID, "Profile created in CreateProfile")
	c.JSON(http.StatusOK, profile)
}

// @Summary Get the caller's profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Profile not found"
// @Router /profile [get]
func GetProfile(c *gin.Context) {
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

	c.JSON(http.StatusOK, profile)
}

// @Summary Complete onboarding
// @Description Clear the onboarding flag once the user finished the signup flow. Profiles that never do are removed by the abandoned-signup cleanup.
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Onboarding completed"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Profile not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /profile/onboarding/complete [post]
func CompleteOnboarding(c *gin.Context) {
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

	err := db.DB.Model(&models.Profile{}).Where("user_id = ?", userID).
		Update("is_onboarding", false).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error completing onboarding in CompleteOnboarding")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error completing onboarding"})
		return
	}

	utils.LogSuccessWithUser(userID, "Onboarding completed in CompleteOnboarding")
	c.JSON(http.StatusOK, gin.H{"message": "Onboarding completed"})
}
