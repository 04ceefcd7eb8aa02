package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/Michelle21160775/yt-geo-project/internal/handler"
	"github.com/Michelle21160775/yt-geo-project/internal/middleware"
	"github.com/Michelle21160775/yt-geo-project/pkg/jwt"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Search   *handler.SearchHandler
	Auth     *handler.AuthHandler
	Profile  *handler.ProfileHandler
	Favorite *handler.FavoriteHandler
	History  *handler.HistoryHandler
	Comment  *handler.CommentHandler
	Health   *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, jwtManager *jwt.Manager, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Ops endpoints (before API group, no auth needed)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	requireAuth := middleware.RequireAuth(jwtManager)
	optionalAuth := middleware.OptionalAuth(jwtManager)

	searchLimit := middleware.NewSearchRateLimiter().Handler()
	authLimit := middleware.NewAuthRateLimiter().Handler()
	commentLimit := middleware.NewCommentWriteRateLimiter().Handler()

	api := app.Group("/api")

	// Search routes
	api.Post("/search", h.Search.Search, searchLimit)
	api.Post("/channel-videos", h.Search.ChannelVideos, searchLimit)

	// Auth routes
	api.Post("/auth/register", h.Auth.Register, authLimit)
	api.Post("/auth/login", h.Auth.Login, authLimit)

	// Profile routes
	api.Get("/profile", h.Profile.Get, requireAuth)
	api.Put("/profile", h.Profile.Update, requireAuth)
	api.Put("/profile/password", h.Profile.UpdatePassword, requireAuth)

	// Favorite routes
	api.Get("/favorites", h.Favorite.List, requireAuth)
	api.Post("/favorites", h.Favorite.Add, requireAuth)
	api.Post("/favorites/toggle", h.Favorite.Toggle, requireAuth)
	api.Get("/favorites/check/:videoId", h.Favorite.Check, requireAuth)
	api.Delete("/favorites/:favoriteId", h.Favorite.Delete, requireAuth)

	// History routes
	api.Get("/history", h.History.List, requireAuth)
	api.Post("/history", h.History.Add, requireAuth)
	api.Put("/history/progress", h.History.UpdateProgress, requireAuth)
	api.Delete("/history/:historyId", h.History.Delete, requireAuth)
	api.Delete("/history", h.History.Clear, requireAuth)

	// Comment routes
	api.Get("/comments", h.Comment.List)
	api.Get("/comments/count", h.Comment.Count)
	api.Get("/comments/user/me", h.Comment.ListMine, requireAuth)
	api.Post("/comments", h.Comment.Create, optionalAuth, commentLimit)
	api.Put("/comments/:commentId", h.Comment.Update, requireAuth, commentLimit)
	api.Delete("/comments/:commentId", h.Comment.Delete, requireAuth, commentLimit)
}
