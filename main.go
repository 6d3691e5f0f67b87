package main

import (
	"os"

	"paytrack/config"
	"paytrack/middlewares"
	"paytrack/models"
	"paytrack/routes"
	"paytrack/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		config.Log.Warn().Msg(".env file not found, using system environment variables")
	}

	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Payment{},
	); err != nil {
		config.Log.Fatal().Err(err).Msg("migration failed")
	}

	if s := os.Getenv("JWT_SECRET"); s != "" {
		utils.Secret = []byte(s)
	}

	r := gin.Default()
	r.Use(middlewares.Metrics())
	routes.SetupRoutes(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	config.Log.Info().Str("port", port).Msg("paytrack api listening")
	if err := r.Run(":" + port); err != nil {
		config.Log.Fatal().Err(err).Msg("server stopped")
	}
}
