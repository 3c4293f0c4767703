package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servired/backend/internal/config"
	"github.com/servired/backend/internal/middleware"
	"github.com/servired/backend/internal/repositories"
	"github.com/servired/backend/internal/services"
)

// NewRouter wires repositories, services and handlers into the HTTP
// surface.
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	userRepo := repositories.NewUserRepository(db)
	friendRepo := repositories.NewFriendRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	friendshipService := services.NewFriendshipService(userRepo, friendRepo)
	networkService := services.NewNetworkService(userRepo, friendRepo, serviceRepo, reviewRepo, cfg.RecommendationMinRating)
	recommendationService := services.NewRecommendationService(userRepo, friendRepo, serviceRepo, reviewRepo, cfg.RecommendationMinRating, cfg.FriendBoostFactor)
	reviewService := services.NewReviewService(reviewRepo)
	serviceRequestService := services.NewServiceRequestService(userRepo, serviceRepo)

	friendHandler := NewFriendHandler(friendshipService)
	networkHandler := NewNetworkHandler(networkService, cfg.NetworkMaxDepth)
	recommendationHandler := NewRecommendationHandler(recommendationService)
	reviewHandler := NewReviewHandler(reviewService)
	serviceHandler := NewServiceHandler(serviceRequestService)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerUser, cfg.RateLimitPerIP, time.Minute)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.Auth(cfg.JWTSecret), limiter.Handler())
	{
		friends := api.Group("/friends")
		{
			friends.POST("/request", friendHandler.SendRequest)
			friends.GET("/requests", friendHandler.ListPendingRequests)
			friends.POST("/requests/:id/accept", friendHandler.AcceptRequest)
			friends.POST("/requests/:id/reject", friendHandler.RejectRequest)
			friends.GET("", friendHandler.ListFriends)
			friends.DELETE("/:id", friendHandler.RemoveFriend)
		}

		api.GET("/network", networkHandler.GetNetwork)
		api.GET("/recommendations", recommendationHandler.GetRecommendations)
		api.POST("/reviews", reviewHandler.CreateReview)

		svc := api.Group("/services")
		{
			svc.POST("", serviceHandler.CreateService)
			svc.GET("", serviceHandler.ListServices)
			svc.GET("/requests", serviceHandler.ListPendingRequests)
			svc.GET("/:id", serviceHandler.GetService)
			svc.PUT("/:id/status", serviceHandler.UpdateStatus)
		}
	}

	return router
}
