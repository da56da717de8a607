package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status    string      `json:"status"`
	Code      int         `json:"code"`
	Message   string      `json:"message,omitempty"`
	ErrorCode string      `json:"error_code,omitempty"`
	TraceID   string      `json:"trace_id,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

func traceIDOf(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDOf(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, errorCode string, message string) {
	c.JSON(code, APIResponse{
		Status:    "error",
		Code:      code,
		Message:   message,
		ErrorCode: errorCode,
		TraceID:   traceIDOf(c),
	})
}

// HandleServiceError maps a service error onto the error taxonomy. Internal
// failures are logged with their cause and reported without it.
func HandleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, CodeInvalidInput, err.Error())
	case errors.Is(err, ErrPermissionDenied):
		RespondError(c, http.StatusForbidden, CodePermissionDenied, "Forbidden: insufficient permissions")
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, CodeUnauthenticated, "Authentication required")
	default:
		logger.Error("request failed",
			zap.String("trace_id", traceIDOf(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		RespondError(c, http.StatusInternalServerError, CodeInternal, "Internal server error")
	}
}
