// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamtracker/teamtracker/internal/middleware"
	"github.com/teamtracker/teamtracker/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetTeamStatistics handles GET /statistics/teams request.
// @Summary Get membership statistics for the caller's teams
// @Tags Statistics
// @Produce json
// @Success 200 {object} model.TeamStatisticsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /statistics/teams [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetTeamStatistics(c *gin.Context) {
	resp, err := h.service.GetTeamStatistics(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		serviceErrorResponse(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
