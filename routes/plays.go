package routes

import (
	"tuneloom-backend/handlers/plays"
	"tuneloom-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PlaysRoutes(r *gin.Engine) {
	r.POST("/plays", middleware.JWTAuth(), plays.RecordPlay)
}
