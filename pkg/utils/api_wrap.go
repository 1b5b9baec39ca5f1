package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Respond writes the standard envelope: {"success": true, "trace_id": ..., <payload>}.
// Payload keys are merged at the top level so responses read as
// {"success": true, "trip": {...}} rather than nesting under "data".
func Respond(c *gin.Context, status int, payload gin.H) {
	out := gin.H{
		"success":  true,
		"trace_id": c.GetString("trace_id"),
	}
	for k, v := range payload {
		out[k] = v
	}
	c.JSON(status, out)
}

func RespondSuccess(c *gin.Context, payload gin.H) {
	Respond(c, http.StatusOK, payload)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"success":  false,
		"trace_id": c.GetString("trace_id"),
		"error":    message,
	})
}

// HandleServiceError maps service sentinels onto the API error taxonomy:
// validation 400, not found 404, everything else a generic 500 with the
// detail kept server-side.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrDayNotFound):
		RespondError(c, http.StatusNotFound, "Trip or day not found")
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.String("trace_id", c.GetString("trace_id")), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unexpected error", zap.String("trace_id", c.GetString("trace_id")), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
