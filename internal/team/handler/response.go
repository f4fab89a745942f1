package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/teamtracker/teamtracker/internal/team/model"
)

// ErrorResponse represents the error body returned by every endpoint.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

var statusByCode = map[string]int{
	"UNAUTHENTICATED":     http.StatusUnauthorized,
	"VALIDATION_ERROR":    http.StatusBadRequest,
	"NOT_FOUND":           http.StatusNotFound,
	"INVALID_INVITE_CODE": http.StatusNotFound,
	"ALREADY_MEMBER":      http.StatusConflict,
	"PERMISSION_DENIED":   http.StatusForbidden,
	"STORAGE_ERROR":       http.StatusInternalServerError,
}

// errorResponse writes an error body with the given code.
func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// serviceErrorResponse maps a service error to its status and code.
// Storage failures are logged and their details are not exposed.
func serviceErrorResponse(c *gin.Context, logger *zap.SugaredLogger, msg string, err error) {
	code := teamModel.Code(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		logger.Errorw(msg, "path", c.FullPath(), "error", err)
		errorResponse(c, code, "internal storage error", status)
		return
	}

	errorResponse(c, code, err.Error(), status)
}
