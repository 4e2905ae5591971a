package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service errors onto HTTP responses. Unknown errors
// are logged with the request's logger and reported as 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrUsernameTaken):
		RespondError(c, http.StatusConflict, "User already exists")
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "No active wizard session, please log in again")
	case errors.Is(err, ErrBrandRequired):
		RespondError(c, http.StatusBadRequest, "Please select a brand!")
	case errors.Is(err, ErrNotOnRecommendation):
		RespondError(c, http.StatusConflict, "Finish the assessment before requesting a recommendation")
	case errors.Is(err, ErrMissingField), errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidImage):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrAINotConfigured):
		RespondError(c, http.StatusServiceUnavailable, "AI provider not configured")
	case errors.Is(err, ErrUnexpectedBehaviorOfAI):
		Logger(c).Warn("ai service error", zap.Error(err))
		RespondError(c, http.StatusBadGateway, "Prediction failed, try again later")
	case errors.Is(err, ErrDatabaseError):
		Logger(c).Error("database error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		Logger(c).Error("unknown error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// Logger returns the request-scoped logger set by the logging middleware.
func Logger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get("logger"); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.L()
}
