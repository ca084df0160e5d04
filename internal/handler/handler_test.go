package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qrgen/internal/config"
	"qrgen/internal/domain"
	"qrgen/internal/handler"
	"qrgen/internal/handler/mocks"
	"qrgen/internal/storage"
	"qrgen/internal/validation"
)

type testHandler struct {
	*handler.Handler
	gen     *mocks.MockGenerationService
	history *mocks.MockHistoryService
	val     *mocks.MockURLValidator
	images  *mocks.MockImageReader
}

func newTestHandler(t *testing.T) testHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	th := testHandler{
		gen:     mocks.NewMockGenerationService(t),
		history: mocks.NewMockHistoryService(t),
		val:     mocks.NewMockURLValidator(t),
		images:  mocks.NewMockImageReader(t),
	}
	th.Handler = handler.New(th.gen, th.history, th.val, th.images, "/images", logger)
	return th
}

func (th testHandler) server() *echo.Echo {
	e := echo.New()
	th.Register(e)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// Generate tests

func TestGenerate_Success(t *testing.T) {
	th := newTestHandler(t)

	th.val.EXPECT().ValidateURL("https://github.com/golang/go").Return(nil)
	th.gen.EXPECT().Generate(mock.Anything, "https://github.com/golang/go").Return(&domain.GenerateResponse{
		Message:     "QR Code generated successfully",
		QRImage:     "/images/qr_0123456789abcdef0123456789abcdef.png",
		OriginalURL: "https://github.com/golang/go",
		Domain:      "github.com",
		Category:    "GitHub",
	}, nil)

	rec := do(th.server(), http.MethodPost, "/generate", `{"url":"https://github.com/golang/go"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, map[string]string{
		"message":      "QR Code generated successfully",
		"qr_image":     "/images/qr_0123456789abcdef0123456789abcdef.png",
		"original_url": "https://github.com/golang/go",
		"domain":       "github.com",
		"category":     "GitHub",
	}, body)
}

func TestGenerate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		url     string
		err     error
		wantErr string
	}{
		{"empty object", `{}`, "", validation.ErrEmptyURL, "URL is required"},
		{"empty url", `{"url":""}`, "", validation.ErrEmptyURL, "URL is required"},
		{"too long", `{"url":"https://x.io/aaaa"}`, "https://x.io/aaaa", validation.ErrURLTooLong, "url exceeds maximum length"},
		{"unknown validation error", `{"url":"x"}`, "x", errors.New("other"), "validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.val.EXPECT().ValidateURL(tt.url).Return(tt.err)

			rec := do(th.server(), http.MethodPost, "/generate", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, map[string]string{"error": tt.wantErr}, decodeBody[map[string]string](t, rec))
		})
	}
}

func TestGenerate_MissingBody(t *testing.T) {
	th := newTestHandler(t)
	th.val.EXPECT().ValidateURL("").Return(validation.ErrEmptyURL)

	rec := do(th.server(), http.MethodPost, "/generate", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "URL is required", decodeBody[map[string]string](t, rec)["error"])
}

func TestGenerate_InvalidJSON(t *testing.T) {
	for _, body := range []string{`invalid json`, `{"url":123}`} {
		t.Run(body, func(t *testing.T) {
			th := newTestHandler(t)

			rec := do(th.server(), http.MethodPost, "/generate", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "invalid request body", decodeBody[map[string]string](t, rec)["error"])
		})
	}
}

func TestGenerate_ServiceErrorIsGeneric(t *testing.T) {
	th := newTestHandler(t)

	th.val.EXPECT().ValidateURL("https://example.org").Return(nil)
	th.gen.EXPECT().Generate(mock.Anything, "https://example.org").
		Return(nil, errors.New("qr synthesis failed: data too long"))

	rec := do(th.server(), http.MethodPost, "/generate", `{"url":"https://example.org"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]string{"error": "Failed to generate QR code"}, decodeBody[map[string]string](t, rec))
}

func TestGenerate_RouteMiddleware(t *testing.T) {
	th := newTestHandler(t)

	e := echo.New()
	th.Register(e, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return c.NoContent(http.StatusTeapot)
		}
	})

	assert.Equal(t, http.StatusTeapot, do(e, http.MethodPost, "/generate", `{"url":"x"}`).Code)

	th.history.EXPECT().Recent(mock.Anything).Return([]domain.HistoryItem{}, nil)
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/history", "").Code)
}

// History tests

func TestHistory_Success(t *testing.T) {
	th := newTestHandler(t)

	th.history.EXPECT().Recent(mock.Anything).Return([]domain.HistoryItem{
		{
			ID:        3,
			URL:       "https://x.com/foo",
			ImagePath: "/images/qr_0123456789abcdef0123456789abcdef.png",
			Domain:    "x.com",
			Category:  "Twitter/X",
			CreatedAt: "2024-05-01 12:30:15",
		},
	}, nil)

	rec := do(th.server(), http.MethodGet, "/history", "")

	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeBody[[]map[string]any](t, rec)
	require.Len(t, items, 1)
	assert.EqualValues(t, 3, items[0]["id"])
	assert.Equal(t, "https://x.com/foo", items[0]["url"])
	assert.Equal(t, "/images/qr_0123456789abcdef0123456789abcdef.png", items[0]["image_path"])
	assert.Equal(t, "x.com", items[0]["domain"])
	assert.Equal(t, "Twitter/X", items[0]["category"])
	assert.Equal(t, "2024-05-01 12:30:15", items[0]["created_at"])
}

func TestHistory_EmptyIsArray(t *testing.T) {
	th := newTestHandler(t)
	th.history.EXPECT().Recent(mock.Anything).Return([]domain.HistoryItem{}, nil)

	rec := do(th.server(), http.MethodGet, "/history", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHistory_Error(t *testing.T) {
	th := newTestHandler(t)
	th.history.EXPECT().Recent(mock.Anything).Return(nil, errors.New("no such table"))

	rec := do(th.server(), http.MethodGet, "/history", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to load history"}`, rec.Body.String())
}

// ClearHistory tests

func TestClearHistory(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"success", nil, http.StatusOK, `{"message":"History cleared successfully"}`},
		{"store failure", errors.New("database is locked"), http.StatusInternalServerError, `{"error":"Failed to clear history"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.history.EXPECT().Clear(mock.Anything).Return(tt.err)

			rec := do(th.server(), http.MethodPost, "/clear_history", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

// Image tests

func TestImage(t *testing.T) {
	const name = "qr_0123456789abcdef0123456789abcdef.png"

	tests := []struct {
		name       string
		data       []byte
		err        error
		wantStatus int
	}{
		{"found", []byte("\x89PNG"), nil, http.StatusOK},
		{"missing", nil, storage.ErrImageNotFound, http.StatusNotFound},
		{"invalid name", nil, storage.ErrInvalidFilename, http.StatusNotFound},
		{"read failure", nil, errors.New("permission denied"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.images.EXPECT().Read(name).Return(tt.data, tt.err)

			rec := do(th.server(), http.MethodGet, "/images/"+name, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
				assert.Equal(t, tt.data, rec.Body.Bytes())
				assert.Contains(t, rec.Header().Get(echo.HeaderCacheControl), "immutable")
			}
		})
	}
}

func TestImage_NotFoundBody(t *testing.T) {
	th := newTestHandler(t)
	th.images.EXPECT().Read("nope.png").Return(nil, storage.ErrInvalidFilename)

	rec := do(th.server(), http.MethodGet, "/images/nope.png", "")

	assert.JSONEq(t, `{"error":"image not found"}`, rec.Body.String())
}

type mapCache map[string][]byte

func (m mapCache) Get(filename string) ([]byte, bool) {
	v, ok := m[filename]
	return v, ok
}

func (m mapCache) Set(filename string, data []byte) {
	m[filename] = data
}

func TestImage_ReferenceResolvesForAnyRouteSpelling(t *testing.T) {
	for _, route := range []string{"/images", "/images/", "images", "/"} {
		t.Run(route, func(t *testing.T) {
			store, err := storage.NewImageStore(&config.StorageConfig{
				ImageDir:   t.TempDir(),
				ImageRoute: route,
			}, mapCache{})
			require.NoError(t, err)

			filename, err := store.Save(context.Background(), []byte("\x89PNG"))
			require.NoError(t, err)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.New(
				mocks.NewMockGenerationService(t),
				mocks.NewMockHistoryService(t),
				mocks.NewMockURLValidator(t),
				store, route, logger)
			e := echo.New()
			h.Register(e)

			rec := do(e, http.MethodGet, store.Reference(filename), "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, []byte("\x89PNG"), rec.Body.Bytes())
		})
	}
}

// Framework errors

func TestHandleError_FrameworkErrorsAreJSON(t *testing.T) {
	th := newTestHandler(t)
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1K"))
	th.Register(e)
	e.GET("/panic", func(echo.Context) error { panic("boom") })

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"oversized body", http.MethodPost, "/generate", `{"url":"` + strings.Repeat("a", 2048) + `"}`,
			http.StatusRequestEntityTooLarge, `{"error":"Request Entity Too Large"}`},
		{"wrong method", http.MethodGet, "/generate", "",
			http.StatusMethodNotAllowed, `{"error":"Method Not Allowed"}`},
		{"unknown route", http.MethodGet, "/nope/deeper", "",
			http.StatusNotFound, `{"error":"Not Found"}`},
		{"recovered panic", http.MethodGet, "/panic", "",
			http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, tt.method, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandleError_InternalHTTPErrorIsGeneric(t *testing.T) {
	th := newTestHandler(t)
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	th.HandleError(echo.NewHTTPError(http.StatusBadGateway, "upstream db at 10.0.0.1 down"), c)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

// Page and health

func TestIndex(t *testing.T) {
	th := newTestHandler(t)

	rec := do(th.server(), http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "/static/js/app.js")
}

func TestStaticAssets(t *testing.T) {
	th := newTestHandler(t)
	e := th.server()

	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/static/js/app.js", "").Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/static/js/missing.js", "").Code)
}

func TestHealth(t *testing.T) {
	th := newTestHandler(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	require.NoError(t, th.Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
