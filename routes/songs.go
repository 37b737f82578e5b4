package routes

import (
	"tuneloom-backend/handlers/songs"
	"tuneloom-backend/middleware"

	"github.com/gin-gonic/gin"
)

func SongsRoutes(r *gin.Engine) {
	songRoutes := r.Group("/songs")
	songRoutes.Use(middleware.JWTAuth())
	{
		songRoutes.POST("", songs.CreateSong)
		songRoutes.GET("", songs.ListSongs)
		songRoutes.GET("/:id", songs.GetSong)
		songRoutes.POST("/:id/favorite", songs.ToggleFavorite)
	}
}
