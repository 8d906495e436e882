package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"lostfound-tracker/internal/lferrors"
	"lostfound-tracker/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, lferrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, lferrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, lferrors.ErrMissingAnswers):
		return http.StatusBadRequest, "all security questions must be answered"
	case errors.Is(err, lferrors.ErrDuplicateQuestion):
		return http.StatusBadRequest, "duplicate security question"
	case errors.Is(err, lferrors.ErrInvalidReport):
		return http.StatusBadRequest, "invalid report details"
	case errors.Is(err, lferrors.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, lferrors.ErrMatchExists):
		return http.StatusConflict, "match already exists"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
