package piapi

import (
	"net/http"
	"os"

	"tuneloom-backend/db"
	"tuneloom-backend/models"
	"tuneloom-backend/piapi"
	"tuneloom-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// PiapiWebhookHandler receives the asynchronous completion/failure callbacks
// from the music-generation vendor and reconciles the song row. Once the
// shared secret has been verified, business failures are answered with 200
// so the vendor does not retry-storm us; non-200 is reserved for a bad
// secret or a malformed payload.
// @Summary Music-generation vendor callback
// @Description Reconcile a song with the vendor's completion or failure callback
// @Tags webhooks
// @Accept json
// @Produce json
// @Param x-webhook-secret header string true "Shared webhook secret"
// @Success 200 {object} map[string]string "message: result of the reconciliation"
// @Failure 400 {object} map[string]string "error: Malformed payload"
// @Failure 401 {object} map[string]string "error: Invalid webhook secret"
// @Failure 500 {object} map[string]string "error: Webhook secret not configured"
// @Router /webhooks/piapi [post]
func PiapiWebhookHandler(c *gin.Context) {
	secret := os.Getenv("PIAPI_WEBHOOK_SECRET")
	if secret == "" {
		utils.LogError(nil, "PIAPI_WEBHOOK_SECRET is not set")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
		return
	}

	if c.GetHeader("x-webhook-secret") != secret {
		utils.LogError(nil, "Invalid webhook secret on the generation callback")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid webhook secret"})
		return
	}

	var payload piapi.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}

	taskID := payload.Data.TaskID
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing task id"})
		return
	}

	var song models.Song
	if err := db.DB.First(&song, "task_id = ?", taskID).Error; err != nil {
		// Unknown task: acknowledge so the vendor stops redelivering. The
		// stuck-task sweep may already have reclaimed the row.
		utils.LogInfo("Generation callback for unknown task " + taskID)
		c.JSON(http.StatusOK, gin.H{"message": "No song for this task"})
		return
	}

	switch {
	case len(payload.Data.Output.Clips) > 0:
		handleTaskCompleted(c, song, payload.Data.Output.Clips)
	case payload.Data.Error.Message != "" || payload.Data.Status == "failed":
		handleTaskFailed(c, song, payload.Data)
	default:
		// progress callback, nothing to reconcile yet
		c.JSON(http.StatusOK, gin.H{"message": "Callback ignored"})
	}
}

func handleTaskCompleted(c *gin.Context, song models.Song, clips []piapi.Clip) {
	// Re-read right before writing: a concurrent delivery may already have
	// landed the result.
	var current models.Song
	if err := db.DB.First(&current, "id = ?", song.ID).Error; err != nil {
		utils.LogError(err, "Error re-reading the song in handleTaskCompleted")
		c.JSON(http.StatusOK, gin.H{"message": "Error logged, callback acknowledged"})
		return
	}

	if current.Status == models.SongCompleted || current.AudioURL != nil {
		c.JSON(http.StatusOK, gin.H{"message": "Song already completed"})
		return
	}

	// Two-phase write: the user-visible audio URL lands first so a failure
	// on the bookkeeping update cannot lose the result.
	err := db.DB.Model(&models.Song{}).Where("id = ?", song.ID).
		Updates(map[string]interface{}{
			"audio_url": clips[0].AudioURL,
			"status":    models.SongCompleted,
		}).Error
	if err != nil {
		utils.LogError(err, "Error storing the audio URL in handleTaskCompleted")
		c.JSON(http.StatusOK, gin.H{"message": "Error logged, callback acknowledged"})
		return
	}

	err = db.DB.Model(&models.Song{}).Where("id = ?", song.ID).
		Updates(map[string]interface{}{
			"error":     nil,
			"retryable": nil,
			"task_id":   nil,
		}).Error
	if err != nil {
		// the audio URL is already persisted; the leftover task_id is
		// cleared by the maintenance sweep
		utils.LogError(err, "Error clearing the bookkeeping fields in handleTaskCompleted")
	}

	for _, clip := range clips[1:] {
		variation := models.SongVariation{
			SongID:   song.ID,
			AudioURL: clip.AudioURL,
			Title:    clip.Title,
			Metadata: datatypes.JSON(clip.Metadata),
		}
		if err := db.DB.Create(&variation).Error; err != nil {
			utils.LogError(err, "Error storing a song variation in handleTaskCompleted")
		}
	}

	utils.LogSuccess("Song " + song.ID + " completed")
	c.JSON(http.StatusOK, gin.H{"message": "Song completed"})
}

func handleTaskFailed(c *gin.Context, song models.Song, data piapi.WebhookData) {
	var current models.Song
	if err := db.DB.First(&current, "id = ?", song.ID).Error; err != nil {
		utils.LogError(err, "Error re-reading the song in handleTaskFailed")
		c.JSON(http.StatusOK, gin.H{"message": "Error logged, callback acknowledged"})
		return
	}

	// A failure callback must never clobber a result that already arrived.
	if current.Status == models.SongCompleted || current.AudioURL != nil {
		c.JSON(http.StatusOK, gin.H{"message": "Song already completed, failure ignored"})
		return
	}

	message := data.Error.Message
	if message == "" {
		message = "Generation failed"
	}

	err := db.DB.Model(&models.Song{}).Where("id = ?", song.ID).
		Updates(map[string]interface{}{
			"status":    models.SongFailed,
			"error":     message,
			"retryable": piapi.IsRetryableError(message),
			"audio_url": nil,
			"task_id":   nil,
		}).Error
	if err != nil {
		utils.LogError(err, "Error recording the failure in handleTaskFailed")
		c.JSON(http.StatusOK, gin.H{"message": "Error logged, callback acknowledged"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Song marked as failed"})
}
