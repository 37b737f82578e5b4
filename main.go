package main

import (
	"log"
	"os"

	"tuneloom-backend/db"
	_ "tuneloom-backend/docs"
	"tuneloom-backend/routes"
	"tuneloom-backend/tasks"

	"github.com/gin-gonic/gin"
)

// @title TuneLoom API
// @version 1.0
// @description Backend API for TuneLoom, AI-generated music for babies and toddlers
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	sweeper := tasks.NewSweeper()
	sweeper.Start()
	defer sweeper.Stop()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
