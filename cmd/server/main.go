package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/Michelle21160775/yt-geo-project/internal/config"
	"github.com/Michelle21160775/yt-geo-project/internal/db"
	"github.com/Michelle21160775/yt-geo-project/internal/handler"
	"github.com/Michelle21160775/yt-geo-project/internal/middleware"
	"github.com/Michelle21160775/yt-geo-project/internal/repository"
	"github.com/Michelle21160775/yt-geo-project/internal/router"
	"github.com/Michelle21160775/yt-geo-project/internal/service"
	"github.com/Michelle21160775/yt-geo-project/internal/youtube"
	"github.com/Michelle21160775/yt-geo-project/pkg/jwt"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "yt-geo-api")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	handler.InitMetrics(pool)

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()
	cache.OnHit = handler.Metrics.CacheHits.Inc
	cache.OnMiss = handler.Metrics.CacheMisses.Inc

	ytClient := youtube.NewClient(cfg.YouTubeAPIKey,
		youtube.WithBaseURL(cfg.YouTubeBaseURL),
		youtube.WithCallObserver(handler.CountYouTubeCall),
	)

	jwtManager := jwt.NewManager(cfg.JWTSecret)

	userRepo := repository.NewUserRepo(pool)
	favoriteRepo := repository.NewFavoriteRepo(pool)
	historyRepo := repository.NewHistoryRepo(pool)
	commentRepo := repository.NewCommentRepo(pool)

	searchSvc := service.NewSearchService(ytClient, cfg.RegionCode, cfg.RelevanceLanguage)
	authSvc := service.NewAuthService(userRepo, jwtManager)
	userSvc := service.NewUserService(userRepo)
	favoriteSvc := service.NewFavoriteService(favoriteRepo)
	historySvc := service.NewHistoryService(historyRepo)
	commentSvc := service.NewCommentService(commentRepo, cache)

	handlers := &router.Handlers{
		Search:   handler.NewSearchHandler(searchSvc),
		Auth:     handler.NewAuthHandler(authSvc),
		Profile:  handler.NewProfileHandler(userSvc),
		Favorite: handler.NewFavoriteHandler(favoriteSvc),
		History:  handler.NewHistoryHandler(historySvc),
		Comment:  handler.NewCommentHandler(commentSvc),
		Health:   handler.NewHealthHandler(pool, cache),
	}

	app := fiber.New(fiber.Config{
		AppName:      "YT Geo API",
		ServerHeader: "yt-geo",
	})

	router.Setup(app, handlers, jwtManager, cfg.CORSOrigins)

	log.Printf("yt-geo backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
