package tasks

import (
	"time"

	"tuneloom-backend/db"
	"tuneloom-backend/models"
	"tuneloom-backend/utils"
)

const (
	// StuckTaskTimeout is how long a generation may stay in flight before
	// the sweep gives up on the vendor callback.
	StuckTaskTimeout = 5 * time.Minute

	// AbandonedSignupAge is how long a profile may sit in onboarding before
	// the cleanup removes it.
	AbandonedSignupAge = 24 * time.Hour

	stuckTaskError = "Generation timed out after 5 minutes"
)

// RepairStuckSongs fails out songs whose generation task neither completed
// nor failed within the timeout. Best effort: each row is updated
// independently and one failure does not abort the batch. Returns the
// number of repaired rows.
func RepairStuckSongs() (int, error) {
	cutoff := time.Now().Add(-StuckTaskTimeout)

	var songs []models.Song
	err := db.DB.Where("task_id IS NOT NULL AND audio_url IS NULL AND error IS NULL AND created_at < ?", cutoff).
		Find(&songs).Error
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, song := range songs {
		err := db.DB.Model(&models.Song{}).Where("id = ?", song.ID).
			Updates(map[string]interface{}{
				"task_id":   nil,
				"error":     stuckTaskError,
				"retryable": true,
				"status":    models.SongFailed,
			}).Error
		if err != nil {
			utils.LogError(err, "Error repairing stuck song "+song.ID)
			continue
		}
		repaired++
	}

	if repaired > 0 {
		utils.LogInfo("Repaired stuck songs")
	}
	return repaired, nil
}

// ClearFinishedTaskIDs clears the task id on songs that already have their
// audio URL. Leftover bookkeeping from a lost race between the webhook's
// two-phase write and a concurrent delivery.
func ClearFinishedTaskIDs() (int, error) {
	var songs []models.Song
	err := db.DB.Where("audio_url IS NOT NULL AND task_id IS NOT NULL").
		Find(&songs).Error
	if err != nil {
		return 0, err
	}

	cleared := 0
	for _, song := range songs {
		err := db.DB.Model(&models.Song{}).Where("id = ?", song.ID).
			Update("task_id", nil).Error
		if err != nil {
			utils.LogError(err, "Error clearing the task id on song "+song.ID)
			continue
		}
		cleared++
	}

	return cleared, nil
}

// CleanupAbandonedProfiles deletes profiles stuck in onboarding past the age
// threshold, together with any songs they created.
func CleanupAbandonedProfiles() (int, error) {
	cutoff := time.Now().Add(-AbandonedSignupAge)

	var profiles []models.Profile
	err := db.DB.Where("is_onboarding = true AND created_at < ?", cutoff).
		Find(&profiles).Error
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, profile := range profiles {
		if err := db.DB.Where("user_id = ?", profile.UserID).Delete(&models.Song{}).Error; err != nil {
			utils.LogErrorWithUser(profile.UserID, err, "Error deleting songs of an abandoned profile")
			continue
		}
		if err := db.DB.Delete(&models.Profile{}, "id = ?", profile.ID).Error; err != nil {
			utils.LogErrorWithUser(profile.UserID, err, "Error deleting an abandoned profile")
			continue
		}
		deleted++
	}

	return deleted, nil
}
