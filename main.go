package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/rfdelacruz/property-app/audit"
	"github.com/rfdelacruz/property-app/config"
	"github.com/rfdelacruz/property-app/database"
	"github.com/rfdelacruz/property-app/realtime"
	"github.com/rfdelacruz/property-app/router"
	"github.com/rfdelacruz/property-app/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Error connecting to database: %v", err)
	}
	utils.InitDB(db)

	if err := database.AutoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Error running migrations: %v", err)
	}
	if err := database.SeedRoles(db); err != nil {
		utils.ErrorLogger.Fatalf("Error seeding roles: %v", err)
	}

	rec := audit.NewRecorder()
	hub := realtime.NewHub()
	rec.SetNotifier(hub)

	r := router.SetupRouter(db, rec, hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Starting server on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatalf("Error starting server: %v", err)
	}
}
