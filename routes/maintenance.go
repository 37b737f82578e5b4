package routes

import (
	"tuneloom-backend/handlers/maintenance"
	"tuneloom-backend/middleware"

	"github.com/gin-gonic/gin"
)

func MaintenanceRoutes(r *gin.Engine) {
	maintenanceRoutes := r.Group("/maintenance")
	maintenanceRoutes.Use(middleware.AdminAuth())
	{
		maintenanceRoutes.POST("/repair-stuck", maintenance.RepairStuckSongs)
		maintenanceRoutes.POST("/clear-task-ids", maintenance.ClearFinishedTaskIDs)
		maintenanceRoutes.POST("/cleanup-profiles", maintenance.CleanupAbandonedProfiles)
	}
}
