package router

import (
	"github.com/balbalm/feed-server/internal/handlers"
	"github.com/balbalm/feed-server/internal/middleware"
	"github.com/balbalm/feed-server/internal/models"
	"github.com/balbalm/feed-server/internal/repositories"
	"github.com/balbalm/feed-server/pkg/config"
	"github.com/balbalm/feed-server/pkg/logger"
	"github.com/balbalm/feed-server/pkg/storage"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(middleware.RequestLogger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// Migrate creates or updates the feed tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Post{},
		&models.Hashtag{},
		&models.Like{},
		&models.Notification{},
		&models.Profile{},
	)
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, imageStore storage.ImageStore, cfg *config.Config) error {
	if err := Migrate(db); err != nil {
		return err
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	postRepo := repositories.NewPostgresPostRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)
	profileRepo := repositories.NewPostgresProfileRepository(db)

	// --- Protected routes (require JWT authentication) ---
	feed := e.Group("/feed")
	feed.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	feed.GET("", listEndpoints)

	postHandler := handlers.NewPostHandler(postRepo, likeRepo, imageStore)
	postHandler.RegisterPostRoutes(feed)

	likeHandler := handlers.NewLikeHandler(likeRepo)
	likeHandler.RegisterLikeRoutes(feed)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(feed)

	profileHandler := handlers.NewProfileHandler(profileRepo)
	profileHandler.RegisterProfileRoutes(feed)

	logger.Log.Info("all feed routes configured")
	return nil
}

// listEndpoints serves a short directory of the feed API
func listEndpoints(c echo.Context) error {
	return c.JSON(200, echo.Map{
		"message": "Welcome to the Balbalm Feed API!",
		"endpoints": echo.Map{
			"GET /feed":                              "Feed API list",
			"GET /feed/posts":                        "List a user's posts",
			"GET /feed/posts/:id":                    "Post detail",
			"GET /feed/posts/hashtag/:tag":           "List posts by hashtag",
			"POST /feed/posts":                       "Create a post",
			"PUT /feed/posts/:id":                    "Update own post",
			"DELETE /feed/posts/:id":                 "Delete own post",
			"POST /feed/posts/:id/likes":             "Toggle like",
			"GET /feed/posts/:id/likes/count":        "Likes count",
			"GET /feed/notifications":                "Aggregated notifications",
			"PUT /feed/notifications/:post_id/read":  "Mark notifications read",
			"DELETE /feed/notifications/:id":         "Delete a notification",
			"DELETE /feed/notifications":             "Delete all notifications",
			"GET /feed/profiles/:user_id":            "Fetch a profile",
			"PUT /feed/profiles":                     "Upsert own profile",
		},
	})
}
