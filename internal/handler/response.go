package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/logger"
	"github.com/rdevrajsinh/totalenc/internal/middleware"
	"github.com/rdevrajsinh/totalenc/internal/repository"
	"github.com/rdevrajsinh/totalenc/internal/service"
)

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationResponse lists every failed field of a payload.
type ValidationResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors"`
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Message: message})
}

func respondNotFound(c *gin.Context, message string) {
	respondMessage(c, http.StatusNotFound, message)
}

// respondError maps service and storage errors onto status codes. Anything
// unrecognised is logged with the request id and reported as fallback.
func respondError(c *gin.Context, err error, fallback string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ValidationResponse{Message: msgValidation, Errors: verr.Errors})
	case errors.Is(err, repository.ErrDuplicateSlug):
		respondMessage(c, http.StatusConflict, msgDuplicateSlug)
	case errors.Is(err, repository.ErrDuplicateUsername):
		respondMessage(c, http.StatusConflict, msgDuplicateUser)
	case errors.Is(err, service.ErrInvalidCredentials):
		respondMessage(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrNoFiles):
		respondMessage(c, http.StatusBadRequest, "No files uploaded")
	case errors.Is(err, service.ErrTooManyFiles):
		respondMessage(c, http.StatusBadRequest, "Too many files")
	case errors.Is(err, service.ErrUnsupportedFileType):
		respondMessage(c, http.StatusUnsupportedMediaType, "Only image files are allowed")
	case errors.Is(err, service.ErrFileTooLarge):
		respondMessage(c, http.StatusRequestEntityTooLarge, "File too large")
	default:
		logger.WithRequestID(middleware.GetRequestID(c)).Error(fallback,
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		respondMessage(c, http.StatusInternalServerError, fallback)
	}
}

// bindJSON decodes the request body into dst. A malformed body is answered
// with a validation error and false is returned.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, ValidationResponse{
			Message: msgValidation,
			Errors:  []domain.FieldError{{Field: "body", Reason: invalidJSONReason}},
		})
		return false
	}
	return true
}

// parseID reads a positive numeric path parameter. An invalid value is
// answered with 400 and false is returned.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		respondMessage(c, http.StatusBadRequest, msgInvalidID)
		return 0, false
	}
	return id, true
}

// respondDeleted answers 204 when deleted, otherwise 404 with notFound.
func respondDeleted(c *gin.Context, deleted bool, notFound string) {
	if !deleted {
		respondNotFound(c, notFound)
		return
	}
	c.Status(http.StatusNoContent)
}
