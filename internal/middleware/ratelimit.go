package middleware

import (
	"crypto/subtle"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"qrgen/internal/config"
)

// BypassHeader lets trusted load generators skip the limiter when it carries the
// configured secret.
const BypassHeader = "X-Rate-Limit-Bypass"

type rateLimitResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after"`
}

var rateLimiterInternalErr = map[string]string{"error": "internal server error"}

// RateLimit throttles each client IP to cfg.RPS with bursts up to cfg.Burst. It is
// meant for the generation route, where every miss renders and stores an image.
func RateLimit(cfg *config.RateLimitConfig, logger *slog.Logger) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     cfg.Burst,
			ExpiresIn: time.Duration(cfg.ExpireMinutes) * time.Minute,
		},
	)

	retryAfter := retryAfterSeconds(cfg.RPS)
	exceeded := rateLimitResponse{Error: "rate limit exceeded", RetryAfter: retryAfter}
	retryAfterHeader := strconv.Itoa(retryAfter)

	secret := []byte(cfg.BypassSecret)
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		Skipper: func(c echo.Context) bool {
			if len(secret) == 0 {
				return false
			}
			provided := c.Request().Header.Get(BypassHeader)
			return subtle.ConstantTimeCompare([]byte(provided), secret) == 1
		},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("rate limit exceeded",
				slog.String("ip", identifier),
				slog.String("path", c.Path()),
			)
			c.Response().Header().Set("Retry-After", retryAfterHeader)
			return c.JSON(http.StatusTooManyRequests, exceeded)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Error("rate limiter error", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, rateLimiterInternalErr)
		},
	})
}

// retryAfterSeconds is the time until one more token is available, at least one second.
func retryAfterSeconds(rps float64) int {
	if rps <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(1/rps)))
}
