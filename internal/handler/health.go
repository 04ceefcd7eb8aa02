package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Michelle21160775/yt-geo-project/internal/service"
)

type HealthHandler struct {
	pool    *pgxpool.Pool
	cache   *service.CacheService
	startAt time.Time
}

func NewHealthHandler(pool *pgxpool.Pool, cache *service.CacheService) *HealthHandler {
	return &HealthHandler{
		pool:    pool,
		cache:   cache,
		startAt: time.Now(),
	}
}

// Live handles GET /health/live — liveness probe.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready — readiness probe with dependency checks.
// Redis is optional so a down cache only degrades, never fails, readiness.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	overall := "healthy"

	dbCheck := h.checkDB(ctx)
	if dbCheck["status"] != "up" {
		overall = "degraded"
	}

	redisCheck := h.checkRedis(ctx)
	if redisCheck["status"] == "down" && overall == "healthy" {
		overall = "degraded"
	}

	status := fiber.StatusOK
	if overall != "healthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": fiber.Map{
			"database": dbCheck,
			"redis":    redisCheck,
		},
		"uptime_seconds": int(time.Since(h.startAt).Seconds()),
	})
}

func (h *HealthHandler) checkDB(ctx context.Context) fiber.Map {
	start := time.Now()
	err := h.pool.Ping(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return fiber.Map{
			"status":     "down",
			"latency_ms": latency,
			"error":      "connection failed",
		}
	}
	return fiber.Map{
		"status":     "up",
		"latency_ms": latency,
	}
}

func (h *HealthHandler) checkRedis(ctx context.Context) fiber.Map {
	rdb := h.cache.Client()
	if rdb == nil {
		return fiber.Map{"status": "disabled"}
	}

	start := time.Now()
	err := rdb.Ping(ctx).Err()
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return fiber.Map{
			"status":     "down",
			"latency_ms": latency,
			"error":      "connection failed",
		}
	}
	return fiber.Map{
		"status":     "up",
		"latency_ms": latency,
	}
}
