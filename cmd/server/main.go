package main

import (
	"context"
	"log"

	"github.com/anasreg/supporter-hub/backend/internal/router"
	"github.com/anasreg/supporter-hub/backend/pkg/config"
	"github.com/anasreg/supporter-hub/backend/pkg/firebase"
	"github.com/anasreg/supporter-hub/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Initialize Firebase
	ctx := context.Background()
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo, firebaseApp.AuthClient, cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
