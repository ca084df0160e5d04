package middleware_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrgen/internal/config"
	"qrgen/internal/middleware"
)

func newLimitedEcho(cfg *config.RateLimitConfig) *echo.Echo {
	e := echo.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e.POST("/generate", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, middleware.RateLimit(cfg, logger))
	e.GET("/history", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return e
}

func post(e *echo.Echo, ip, bypass string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate", nil)
	req.RemoteAddr = ip + ":12345"
	if bypass != "" {
		req.Header.Set(middleware.BypassHeader, bypass)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_AllowsRequestsUnderLimit(t *testing.T) {
	e := newLimitedEcho(&config.RateLimitConfig{RPS: 10, Burst: 5, ExpireMinutes: 1})

	for i := range 5 {
		rec := post(e, "192.168.1.1", "")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should succeed", i)
	}
}

func TestRateLimit_BlocksRequestsOverLimit(t *testing.T) {
	e := newLimitedEcho(&config.RateLimitConfig{RPS: 1, Burst: 2, ExpireMinutes: 1})

	var rateLimited bool
	for range 10 {
		if post(e, "192.168.1.2", "").Code == http.StatusTooManyRequests {
			rateLimited = true
			break
		}
	}

	assert.True(t, rateLimited, "expected at least one request to be rate limited")
}

func TestRateLimit_Returns429WithRetryAfter(t *testing.T) {
	tests := []struct {
		name       string
		rps        float64
		wantHeader string
		wantRetry  int
	}{
		{"sub-second refill rounds up to one", 5, "1", 1},
		{"slow refill", 0.1, "10", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newLimitedEcho(&config.RateLimitConfig{RPS: tt.rps, Burst: 1, ExpireMinutes: 1})

			require.Equal(t, http.StatusOK, post(e, "192.168.1.3", "").Code)
			rec := post(e, "192.168.1.3", "")

			require.Equal(t, http.StatusTooManyRequests, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Retry-After"))

			var resp struct {
				Error      string `json:"error"`
				RetryAfter int    `json:"retry_after"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "rate limit exceeded", resp.Error)
			assert.Equal(t, tt.wantRetry, resp.RetryAfter)
		})
	}
}

func TestRateLimit_DifferentIPsHaveSeparateLimits(t *testing.T) {
	e := newLimitedEcho(&config.RateLimitConfig{RPS: 0.1, Burst: 1, ExpireMinutes: 1})

	assert.Equal(t, http.StatusOK, post(e, "192.168.1.4", "").Code, "IP1 first request should succeed")
	assert.Equal(t, http.StatusOK, post(e, "192.168.1.5", "").Code, "IP2 first request should succeed")
}

func TestRateLimit_OnlyGuardsGenerateRoute(t *testing.T) {
	e := newLimitedEcho(&config.RateLimitConfig{RPS: 0.1, Burst: 1, ExpireMinutes: 1})

	post(e, "192.168.1.9", "")
	require.Equal(t, http.StatusTooManyRequests, post(e, "192.168.1.9", "").Code)

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	req.RemoteAddr = "192.168.1.9:12345"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_Bypass(t *testing.T) {
	tests := []struct {
		name        string
		secret      string
		header      string
		wantLimited bool
	}{
		{"correct secret", "test_secret", "test_secret", false},
		{"wrong secret", "test_secret", "wrong_secret", true},
		{"disabled when secret empty", "", "any_value", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newLimitedEcho(&config.RateLimitConfig{
				RPS:           0.1,
				Burst:         1,
				ExpireMinutes: 1,
				BypassSecret:  tt.secret,
			})
			var limited bool
			for range 5 {
				if post(e, "10.0.0.1", tt.header).Code == http.StatusTooManyRequests {
					limited = true
				}
			}
			assert.Equal(t, tt.wantLimited, limited)
		})
	}
}
