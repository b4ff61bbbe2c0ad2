package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/anasreg/supporter-hub/backend/internal/board"
	"github.com/anasreg/supporter-hub/backend/internal/handlers"
	"github.com/anasreg/supporter-hub/backend/internal/identity"
	"github.com/anasreg/supporter-hub/backend/internal/middleware"
	"github.com/anasreg/supporter-hub/backend/internal/models"
	"github.com/anasreg/supporter-hub/backend/internal/repositories"
	"github.com/anasreg/supporter-hub/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.Comment{},
		&models.Profile{},
		&models.Draft{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize repositories ---
	postRepo := repositories.NewMongoPostRepository(mgClient.Database(cfg.MongoDatabase))
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	profileRepo := repositories.NewPostgresProfileRepository(pgdb)
	draftRepo := repositories.NewPostgresDraftRepository(pgdb)

	// --- Identity and board services ---
	guestTokens := identity.NewGuestTokens(cfg.GuestTokenSecret)
	resolver := identity.NewResolver(profileRepo, guestTokens)
	boardService := board.NewService(postRepo, commentRepo, draftRepo, resolver, board.LogNotifier{})

	// --- API routes; anonymous traffic is allowed everywhere ---
	api := e.Group("/api/v1")
	api.Use(middleware.ActorMiddleware(firebaseAuthClient, guestTokens))
	log.Println("Actor middleware applied to /api/v1 group.")

	identityHandler := handlers.NewIdentityHandler(resolver, profileRepo)
	identityHandler.RegisterIdentityRoutes(api)
	log.Println("Identity routes configured.")

	feedHandler := handlers.NewFeedHandler(boardService)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	postHandler := handlers.NewPostHandler(boardService)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	commentHandler := handlers.NewCommentHandler(boardService, commentRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	statusHandler := handlers.NewStatusHandler(boardService)
	statusHandler.RegisterStatusRoutes(api)
	log.Println("Status routes configured.")

	log.Println("All routes configured.")
}
