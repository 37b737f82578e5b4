package routes

import (
	"tuneloom-backend/handlers/profiles"
	"tuneloom-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ProfilesRoutes(r *gin.Engine) {
	profileRoutes := r.Group("/profile")
	profileRoutes.Use(middleware.JWTAuth())
	{
		profileRoutes.POST("", profiles.CreateProfile)
		profileRoutes.GET("", profiles.GetProfile)
		profileRoutes.POST("/onboarding/complete", profiles.CompleteOnboarding)
	}
}
