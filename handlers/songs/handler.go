package songs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"tuneloom-backend/db"
	"tuneloom-backend/models"
	"tuneloom-backend/piapi"
	"tuneloom-backend/quota"
	"tuneloom-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// generator is swapped out in tests
var generator = piapi.NewClient()

// @Summary Request a new song generation
// @Description Validate the request, consume the caller's generation allowance, create a placeholder song and submit the generation task to the vendor
// @Tags songs
// @Accept json
// @Produce json
// @Param song body models.SongCreate true "Generation request"
// @Security BearerAuth
// @Success 200 {object} models.Song
// @Failure 400 {object} map[string]string "error: Invalid input or vendor error"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Generation limit reached"
// @Failure 404 {object} map[string]string "error: Profile not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /songs [post]
func CreateSong(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input models.SongCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := quota.ConsumeGeneration(userID.(string)); err != nil {
		switch {
		case errors.Is(err, quota.ErrProfileNotFound):
			utils.LogErrorWithUser(userID, err, "Profile not found in CreateSong")
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		case errors.Is(err, quota.ErrLimitReached):
			utils.LogErrorWithUser(userID, nil, "Generation limit reached in CreateSong")
			c.JSON(http.StatusForbidden, gin.H{"error": "Generation limit reached"})
		default:
			utils.LogErrorWithUser(userID, err, "Error checking the generation allowance in CreateSong")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking the generation allowance"})
		}
		return
	}

	song := models.Song{
		UserID:         userID.(string),
		Name:           input.Name,
		Theme:          input.Theme,
		Mood:           input.Mood,
		SongType:       input.SongType,
		PresetType:     input.PresetType,
		IsInstrumental: input.IsInstrumental,
		Status:         models.SongPending,
	}

	if err := db.DB.Create(&song).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the song in CreateSong")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the song"})
		return
	}

	taskID, err := generator.CreateMusicTask(piapi.MusicTaskInput{
		Prompt:           buildPrompt(input),
		Title:            input.Name,
		Tags:             input.Mood,
		MakeInstrumental: input.IsInstrumental,
	})
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Vendor task creation failed in CreateSong")
		failErr := db.DB.Model(&models.Song{}).Where("id = ?", song.ID).
			Updates(map[string]interface{}{
				"status":    models.SongFailed,
				"error":     err.Error(),
				"retryable": true,
			}).Error
		if failErr != nil {
			utils.LogErrorWithUser(userID, failErr, "Error recording the vendor failure in CreateSong")
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error starting the generation: " + err.Error()})
		return
	}

	if err := db.DB.Model(&models.Song{}).Where("id = ?", song.ID).
		Update("task_id", taskID).Error; err != nil {
		// The job is running; the stuck-task sweep will pick the row up if
		// the webhook cannot match it.
		utils.LogErrorWithUser(userID, err, "Error storing the task id in CreateSong")
	} else {
		song.TaskID = &taskID
	}

	utils.LogSuccessWithUser(userID, "Song generation started in CreateSong")
	c.JSON(http.StatusOK, song)
}

// @Summary List the caller's songs
// @Description Return all songs of the connected user, newest first, with their variations
// @Tags songs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Song
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /songs [get]
func ListSongs(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var songs []models.Song
	err := db.DB.Preload("Variations").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&songs).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error fetching songs in ListSongs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching songs"})
		return
	}

	c.JSON(http.StatusOK, songs)
}

// @Summary Song details
// @Description Return one song with its variations
// @Tags songs
// @Produce json
// @Param id path string true "Song ID"
// @Security BearerAuth
// @Success 200 {object} models.Song
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Not the owner"
// @Failure 404 {object} map[string]string "error: Song not found"
// @Router /songs/{id} [get]
func GetSong(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	songID := c.Param("id")
	if _, err := uuid.Parse(songID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid song ID"})
		return
	}

	var song models.Song
	if err := db.DB.Preload("Variations").First(&song, "id = ?", songID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Song not found"})
		return
	}

	if song.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to view this song"})
		return
	}

	c.JSON(http.StatusOK, song)
}

// @Summary Toggle favorite on a song
// @Description Flip the is_favorite flag; only the owner may do it
// @Tags songs
// @Produce json
// @Param id path string true "Song ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Favorite updated"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Not the owner"
// @Failure 404 {object} map[string]string "error: Song not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /songs/{id}/favorite [post]
func ToggleFavorite(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	songID := c.Param("id")
	if _, err := uuid.Parse(songID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid song ID"})
		return
	}

	var song models.Song
	if err := db.DB.First(&song, "id = ?", songID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Song not found"})
		return
	}

	if song.UserID != userID {
		utils.LogErrorWithUser(userID, nil, "Not the owner in ToggleFavorite")
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to update this song"})
		return
	}

	err := db.DB.Model(&models.Song{}).
		Where("id = ? AND user_id = ?", songID, userID).
		Update("is_favorite", !song.IsFavorite).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating favorite in ToggleFavorite")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating favorite"})
		return
	}

	if song.IsFavorite {
		c.JSON(http.StatusOK, gin.H{"message": "Favorite removed successfully"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Favorite added successfully"})
	}
}

func buildPrompt(input models.SongCreate) string {
	parts := []string{fmt.Sprintf("A %s song for a baby named %s", input.SongType, input.BabyName)}
	if input.Theme != "" {
		parts = append(parts, "about "+input.Theme)
	}
	if input.Mood != "" {
		parts = append(parts, "with a "+input.Mood+" mood")
	}
	return strings.Join(parts, " ")
}
