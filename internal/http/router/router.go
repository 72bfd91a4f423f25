package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/skillswap-backend/internal/config"
	"github.com/ignatzorin/skillswap-backend/internal/http/handlers"
	"github.com/ignatzorin/skillswap-backend/internal/http/middleware"
	"github.com/ignatzorin/skillswap-backend/internal/service"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	skillHandler *handlers.SkillHandler,
	matchHandler *handlers.MatchHandler,
	connectionHandler *handlers.ConnectionHandler,
	messageHandler *handlers.MessageHandler,
	reviewHandler *handlers.ReviewHandler,
	searchHandler *handlers.SearchHandler,
	mediaHandler *handlers.MediaHandler,
	healthHandler *handlers.HealthHandler,
	seedHandler *handlers.SeedHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)
	r.StaticFS("/media", http.Dir(cfg.MediaStoragePath))

	api := r.Group("/api")
	api.GET("/health", healthHandler.Health)

	if seedHandler != nil && cfg.Env == "development" {
		api.POST("/seed", seedHandler.Seed)
		api.GET("/seed", seedHandler.Seed)
	}

	authGroup := api.Group("/auth")
	authRateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)
	authGroup.Use(authRateLimit)
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	// Публичные маршруты
	api.GET("/skills", skillHandler.ListSkills)
	api.GET("/skills/:id", middleware.UUIDValidator("id"), skillHandler.GetSkill)
	api.GET("/users/:id", middleware.UUIDValidator("id"), profileHandler.GetUserProfile)
	api.GET("/users/:id/skills", middleware.UUIDValidator("id"), skillHandler.ListUserSkills)
	api.GET("/users/:id/reviews", middleware.UUIDValidator("id"), reviewHandler.ListUserReviews)
	api.GET("/search", searchHandler.Search)

	// Защищённые маршруты
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(tokenManager))
	{
		protected.PUT("/users/:id", middleware.UUIDValidator("id"), profileHandler.UpdateProfile)
		protected.POST("/users/:id/skills", middleware.UUIDValidator("id"), skillHandler.UpsertUserSkill)

		protected.GET("/matches/:id", middleware.UUIDValidator("id"), matchHandler.GetMatches)

		protected.POST("/connections", connectionHandler.CreateConnection)
		protected.PUT("/connections/:id", middleware.UUIDValidator("id"), connectionHandler.UpdateConnectionStatus)
		protected.GET("/users/:id/connections", middleware.UUIDValidator("id"), connectionHandler.ListUserConnections)

		protected.POST("/messages", messageHandler.SendMessage)
		protected.GET("/users/:id/messages", middleware.UUIDValidator("id"), messageHandler.ListInbox)
		protected.PUT("/messages/:id/read", middleware.UUIDValidator("id"), messageHandler.MarkRead)

		protected.POST("/reviews", reviewHandler.CreateReview)

		protected.POST("/media/avatar", mediaHandler.UploadAvatar)
	}

	return r
}
