package main

import (
	"context"
	"log"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(cfg *config.Config, userService *usecase.UserService, notesService *usecase.NotesService, tokens *services.TokenService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))
	router.Use(middleware.SessionMiddleware(tokens))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/api/health", handler.HealthHandler)

	// Public routes: signup and signin create sessions, signout only
	// clears the client cookie and needs no identity.
	auth := router.Group("/api/auth")
	{
		auth.POST("/signup", func(c *gin.Context) {
			handler.SignupHandler(c, userService, cfg)
		})
		auth.POST("/signin", func(c *gin.Context) {
			handler.SigninHandler(c, userService, cfg)
		})
		auth.POST("/signout", handler.SignoutHandler)
	}

	// Protected routes: every note operation requires a resolved identity.
	notes := router.Group("/api/notes")
	notes.Use(middleware.AuthMiddleware())
	{
		notes.GET("", func(c *gin.Context) {
			handler.AllNotesHandler(c, notesService)
		})
		notes.GET("/:id", func(c *gin.Context) {
			handler.SingleNoteHandler(c, notesService)
		})
		notes.POST("", func(c *gin.Context) {
			handler.NewNoteHandler(c, notesService)
		})
		notes.PUT("/:id", func(c *gin.Context) {
			handler.ModifyNoteHandler(c, notesService)
		})
		notes.DELETE("/:id", func(c *gin.Context) {
			handler.DeleteNoteHandler(c, notesService)
		})
	}

	return router
}

func main() {
	cfg := config.Load()

	client, err := config.ConnectMongo(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	if err := repository.EnsureIndexes(context.Background(), client, cfg.MongoDB); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	userService := usecase.NewUserService(repository.NewUserRepo(client, cfg.MongoDB), tokens)
	notesService := usecase.NewNotesService(repository.NewNoteRepo(client, cfg.MongoDB))

	router := setupRouter(cfg, userService, notesService, tokens)

	log.Printf("Server starting on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
