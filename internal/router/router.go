// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trustpulse/pulse-backend/internal/config"
	"github.com/trustpulse/pulse-backend/internal/genai"
	"github.com/trustpulse/pulse-backend/internal/handlers"
	"github.com/trustpulse/pulse-backend/internal/middleware"
	"github.com/trustpulse/pulse-backend/internal/services"
	"github.com/trustpulse/pulse-backend/internal/state"
	"github.com/trustpulse/pulse-backend/internal/utils"
)

func Initialize(cfg *config.Config) *gin.Engine {
	// Shared infrastructure
	ai := genai.NewClient(
		cfg.Gemini.APIKey,
		cfg.Gemini.BaseURL,
		cfg.Gemini.TextModel,
		cfg.Gemini.ImageModel,
		time.Duration(cfg.Gemini.Timeout)*time.Second,
	)
	store := state.NewStore(time.Duration(cfg.Session.IdleHours) * time.Hour)

	// Initialize services
	sessionService := services.NewSessionService(store, cfg)
	classifierService := services.NewClassifierService(ai)
	insightService := services.NewInsightService(ai, classifierService)
	reviewService := services.NewReviewService()
	directoryService := services.NewDirectoryService(ai)
	collabService := services.NewCollabService(ai)
	studioService := services.NewStudioService(ai)
	chatService := services.NewChatService(ai)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(sessionService)
	searchHandler := handlers.NewSearchHandler(insightService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	businessHandler := handlers.NewBusinessHandler(directoryService)
	collabHandler := handlers.NewCollabHandler(collabService)
	studioHandler := handlers.NewStudioHandler(studioService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.Session.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.SessionRequired(store), authHandler.Logout)
			auth.GET("/me", middleware.SessionRequired(store), authHandler.Me)
			auth.POST("/creator/apply", middleware.SessionRequired(store), authHandler.ApplyCreator)
		}

		// Search pipeline routes
		search := v1.Group("/search")
		search.Use(middleware.SessionRequired(store))
		{
			search.POST("", middleware.SearchRateLimit(), searchHandler.Search)
			search.GET("/current", searchHandler.Current)
		}

		// Review routes
		reviews := v1.Group("/reviews")
		reviews.Use(middleware.SessionRequired(store))
		{
			reviews.GET("", reviewHandler.Tabs)
			reviews.POST("", reviewHandler.Submit)
		}

		// Business directory routes
		businesses := v1.Group("/businesses")
		businesses.Use(middleware.SessionRequired(store))
		{
			businesses.GET("", businessHandler.List)
			businesses.POST("", businessHandler.Create)
			businesses.GET("/discover", middleware.SearchRateLimit(), businessHandler.Discover)
			businesses.GET("/reputation", middleware.SearchRateLimit(), businessHandler.Reputation)
		}

		// Collaboration hub routes
		collab := v1.Group("/collab")
		collab.Use(middleware.SessionRequired(store))
		{
			collab.GET("/influencers", middleware.SearchRateLimit(), collabHandler.Influencers)
			collab.POST("/matches", middleware.SearchRateLimit(), collabHandler.Matches)
		}

		// Creative studio routes
		studio := v1.Group("/studio")
		studio.Use(middleware.SessionRequired(store), middleware.StudioRateLimit())
		{
			studio.POST("/assets", studioHandler.GenerateAsset)
			studio.POST("/tryon", studioHandler.TryOn)
			studio.POST("/measure", studioHandler.Measure)
		}

		// Analyst chat routes
		chat := v1.Group("/chat")
		chat.Use(middleware.SessionRequired(store))
		{
			chat.POST("", chatHandler.Send)
			chat.DELETE("", chatHandler.Reset)
		}
	}

	return r
}
