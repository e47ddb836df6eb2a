package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/caisse-pos/caisse_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError translates service-layer errors into HTTP responses.
// AppError codes win; sentinel errors cover the repositories that bubble them
// up raw.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, defaultMsg string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= http.StatusInternalServerError {
			logger.Error(defaultMsg, slog.String("error", err.Error()))
			c.JSON(appErr.Code, ErrorResponse{Error: defaultMsg})
			return
		}
		logger.Warn(defaultMsg, slog.String("error", err.Error()))
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(defaultMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		logger.Warn(defaultMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(defaultMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(defaultMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: defaultMsg})
	}
}
