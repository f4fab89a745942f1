package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/teamtracker/teamtracker/internal/team/model"
)

// ErrorResponse is the error body of statistics endpoints.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorResponse(c *gin.Context, status int, code, message string) {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(status, resp)
}

// serviceErrorResponse writes 401 for a missing identity and hides every
// other failure behind STORAGE_ERROR.
func serviceErrorResponse(c *gin.Context, logger *zap.SugaredLogger, err error) {
	if code := teamModel.Code(err); code == "UNAUTHENTICATED" {
		errorResponse(c, http.StatusUnauthorized, code, err.Error())
		return
	}
	logger.Errorw("error getting team statistics", "error", err)
	errorResponse(c, http.StatusInternalServerError, "STORAGE_ERROR", "internal storage error")
}
