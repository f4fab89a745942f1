package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/teamtracker/teamtracker/internal/team/model"
)

// ErrorResponse represents the error body returned by profile endpoints.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// serviceErrorResponse maps profile service errors. Only the
// unauthenticated, validation and storage kinds can occur here.
func serviceErrorResponse(c *gin.Context, logger *zap.SugaredLogger, msg string, err error) {
	switch code := teamModel.Code(err); code {
	case "UNAUTHENTICATED":
		errorResponse(c, code, err.Error(), http.StatusUnauthorized)
	case "VALIDATION_ERROR":
		errorResponse(c, code, err.Error(), http.StatusBadRequest)
	default:
		logger.Errorw(msg, "error", err)
		errorResponse(c, "STORAGE_ERROR", "internal storage error", http.StatusInternalServerError)
	}
}
