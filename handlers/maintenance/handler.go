package maintenance

import (
	"net/http"

	"tuneloom-backend/tasks"
	"tuneloom-backend/utils"

	"github.com/gin-gonic/gin"
)

// Admin-triggered versions of the background sweeps, for running a batch by
// hand without waiting for the next tick.

// @Summary Repair stuck generation tasks
// @Description Fail out songs whose generation task has been in flight for more than five minutes
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "repaired: number of repaired songs"
// @Failure 403 {object} map[string]string "error: Admin role required"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /maintenance/repair-stuck [post]
func RepairStuckSongs(c *gin.Context) {
	repaired, err := tasks.RepairStuckSongs()
	if err != nil {
		utils.LogError(err, "Error running the stuck-song repair in RepairStuckSongs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error repairing stuck songs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"repaired": repaired})
}

// @Summary Clear leftover task ids
// @Description Clear the task id on songs that already have their audio URL
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "cleared: number of cleared songs"
// @Failure 403 {object} map[string]string "error: Admin role required"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /maintenance/clear-task-ids [post]
func ClearFinishedTaskIDs(c *gin.Context) {
	cleared, err := tasks.ClearFinishedTaskIDs()
	if err != nil {
		utils.LogError(err, "Error running the task-id cleanup in ClearFinishedTaskIDs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error clearing task ids"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": cleared})
}

// @Summary Delete abandoned signups
// @Description Delete profiles stuck in onboarding for more than a day, with their songs
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "deleted: number of deleted profiles"
// @Failure 403 {object} map[string]string "error: Admin role required"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /maintenance/cleanup-profiles [post]
func CleanupAbandonedProfiles(c *gin.Context) {
	deleted, err := tasks.CleanupAbandonedProfiles()
	if err != nil {
		utils.LogError(err, "Error running the abandoned-profile cleanup in CleanupAbandonedProfiles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cleaning up profiles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
