package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/pizzeria/internal/middleware"
	"github.com/deppfellow/pizzeria/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Pinger is a dependency the health check can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// HealthHandler reports whether the service and its dependencies are
// reachable. Only a failing database makes the service unhealthy; redis
// only degrades the cache.
type HealthHandler struct {
	Handler
	database Pinger
	redis    Pinger
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{
		Handler: NewHandler(s),
	}

	if s.DB != nil {
		h.database = s.DB.Pool
	}
	if s.Redis != nil {
		h.redis = redisPinger{client: s.Redis}
	}

	return h
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	observability := h.server.Config.Observability

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]any{}
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true

	if h.database != nil && observability.HealthCheckEnabled("database") {
		result, err := h.probe(c.Request().Context(), h.database)
		checks["database"] = result
		if err != nil {
			isHealthy = false
			logger.Error().Err(err).Msg("database health check failed")
			h.recordHealthCheckError("database", err)
		}
	}

	if h.redis != nil && observability.HealthCheckEnabled("redis") {
		result, err := h.probe(c.Request().Context(), h.redis)
		checks["redis"] = result
		if err != nil {
			logger.Warn().Err(err).Msg("redis health check failed")
			h.recordHealthCheckError("redis", err)
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) probe(ctx context.Context, p Pinger) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	start := time.Now()
	err := p.Ping(ctx)

	result := map[string]any{
		"status":        "healthy",
		"response_time": time.Since(start).String(),
	}
	if err != nil {
		result["status"] = "unhealthy"
		result["error"] = err.Error()
	}

	return result, err
}

func (h *HealthHandler) recordHealthCheckError(checkType string, err error) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", map[string]any{
			"check_type":    checkType,
			"operation":     "health_check",
			"error_message": err.Error(),
		})
	}
}
