package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stayhub/config"
	"stayhub/jobs"
	"stayhub/models"
	"stayhub/routes"
	"stayhub/services"
	"stayhub/utils"
)

func migrate() {
	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Room{},
		&models.Booking{},
		&models.PartnerApplication{},
		&models.Review{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, using existing environment: %v", err)
	}

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrate()

	if err := services.ConnectElastic(); err != nil {
		log.Printf("Warning: %v", err)
	}

	jobs.SetStayCompleter(services.NewBookingService(config.DB))
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	utils.LogInfo("server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
