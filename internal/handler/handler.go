package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"qrgen/internal/domain"
	"qrgen/internal/storage"
	"qrgen/internal/validation"
	"qrgen/internal/web"
)

const (
	msgHistoryCleared = "History cleared successfully"
	imageCacheControl = "public, max-age=31536000, immutable"
)

var (
	errInvalidBody     = map[string]string{"error": "invalid request body"}
	errURLRequired     = map[string]string{"error": "URL is required"}
	errURLTooLong      = map[string]string{"error": "url exceeds maximum length"}
	errGenerateFailed  = map[string]string{"error": "Failed to generate QR code"}
	errHistoryFailed   = map[string]string{"error": "Failed to load history"}
	errClearFailed     = map[string]string{"error": "Failed to clear history"}
	errImageNotFound   = map[string]string{"error": "image not found"}
	errImageReadFailed = map[string]string{"error": "failed to read image"}
	errInternal        = map[string]string{"error": "internal server error"}
	respHealthOK       = map[string]string{"status": "ok"}
)

type Handler struct {
	generation GenerationService
	history    HistoryService
	validator  URLValidator
	images     ImageReader
	imageRoute string
	logger     *slog.Logger
}

func New(
	generation GenerationService,
	history HistoryService,
	validator URLValidator,
	images ImageReader,
	imageRoute string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		generation: generation,
		history:    history,
		validator:  validator,
		images:     images,
		imageRoute: storage.NormalizeRoute(imageRoute),
		logger:     logger,
	}
}

// Register mounts all routes on e and installs HandleError as its error handler.
// generateMW wraps only the generation route.
func (h *Handler) Register(e *echo.Echo, generateMW ...echo.MiddlewareFunc) {
	e.HTTPErrorHandler = h.HandleError

	e.GET("/", h.Index)
	e.StaticFS("/static", web.Static())
	e.GET("/health", h.Health)
	e.POST("/generate", h.Generate, generateMW...)
	e.GET("/history", h.History)
	e.POST("/clear_history", h.ClearHistory)
	e.GET(h.imageRoute+"/:filename", h.Image)
}

func (h *Handler) Index(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, web.Index())
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) Generate(c echo.Context) error {
	var req domain.GenerateRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateURL(req.URL); err != nil {
		return h.handleValidationError(c, err)
	}

	resp, err := h.generation.Generate(c.Request().Context(), req.URL)
	if err != nil {
		h.logger.Error("failed to generate qr code",
			slog.String("url", req.URL),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errGenerateFailed)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) History(c echo.Context) error {
	items, err := h.history.Recent(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to load history", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errHistoryFailed)
	}

	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ClearHistory(c echo.Context) error {
	if err := h.history.Clear(c.Request().Context()); err != nil {
		h.logger.Error("failed to clear history", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errClearFailed)
	}

	return c.JSON(http.StatusOK, domain.MessageResponse{Message: msgHistoryCleared})
}

func (h *Handler) Image(c echo.Context) error {
	data, err := h.images.Read(c.Param("filename"))
	if err != nil {
		if errors.Is(err, storage.ErrImageNotFound) || errors.Is(err, storage.ErrInvalidFilename) {
			return c.JSON(http.StatusNotFound, errImageNotFound)
		}
		h.logger.Error("failed to read image", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errImageReadFailed)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, imageCacheControl)
	return c.Blob(http.StatusOK, "image/png", data)
}

// HandleError renders errors that reach echo itself (unknown routes, wrong methods,
// oversized bodies, recovered panics) in the same {"error": ...} shape as the routes.
func (h *Handler) HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	body := errInternal

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code < http.StatusInternalServerError {
			body = map[string]string{"error": httpErrorMessage(he)}
		}
	}
	if code >= http.StatusInternalServerError {
		h.logger.Error("unhandled request error",
			slog.String("uri", c.Request().RequestURI),
			slog.String("error", err.Error()))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		h.logger.Error("failed to write error response", slog.String("error", err.Error()))
	}
}

func httpErrorMessage(he *echo.HTTPError) string {
	if msg, ok := he.Message.(string); ok && msg != "" {
		return msg
	}
	return http.StatusText(he.Code)
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validation.ErrEmptyURL):
		return c.JSON(http.StatusBadRequest, errURLRequired)
	case errors.Is(err, validation.ErrURLTooLong):
		return c.JSON(http.StatusBadRequest, errURLTooLong)
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "validation failed"})
	}
}
