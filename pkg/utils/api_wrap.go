package utils

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError writes a transport-level failure and records it on the
// gin context so the session middleware rolls the request back.
func HandleServiceError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, ErrInvalidToken):
		RespondError(c, http.StatusUnauthorized, "Token is invalid")
	case errors.Is(err, ErrDatabaseError):
		slog.Error("database error", "error", err, "trace_id", traceID(c))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		slog.Error("unhandled error", "error", err, "trace_id", traceID(c))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
