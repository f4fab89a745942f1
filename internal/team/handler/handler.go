// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamtracker/teamtracker/internal/middleware"
	teamModel "github.com/teamtracker/teamtracker/internal/team/model"
	"github.com/teamtracker/teamtracker/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTeam handles POST /teams request.
// @Summary Create a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body teamModel.CreateTeamRequest true "Request"
// @Success 201 {object} teamModel.CreateTeamResponse
// @Failure 400 {object} ErrorResponse "VALIDATION_ERROR"
// @Failure 401 {object} ErrorResponse "UNAUTHENTICATED"
// @Failure 500 {object} ErrorResponse "STORAGE_ERROR"
// @Router /teams [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateTeam(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_ERROR", "name is required", http.StatusBadRequest)
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), middleware.UserID(c), req.Name)
	if err != nil {
		serviceErrorResponse(c, h.logger, "error creating team", err)
		return
	}

	c.JSON(http.StatusCreated, teamModel.CreateTeamResponse{Team: *team})
}

// JoinTeam handles POST /teams/join request.
// @Summary Join a team with an invite code
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body teamModel.JoinTeamRequest true "Request"
// @Success 200 {object} teamModel.JoinTeamResponse
// @Failure 400 {object} ErrorResponse "VALIDATION_ERROR"
// @Failure 404 {object} ErrorResponse "INVALID_INVITE_CODE"
// @Failure 409 {object} ErrorResponse "ALREADY_MEMBER"
// @Router /teams/join [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) JoinTeam(c *gin.Context) {
	var req teamModel.JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_ERROR", "invite_code is required", http.StatusBadRequest)
		return
	}

	team, err := h.service.JoinTeam(c.Request.Context(), middleware.UserID(c), req.InviteCode)
	if err != nil {
		serviceErrorResponse(c, h.logger, "error joining team", err)
		return
	}

	c.JSON(http.StatusOK, teamModel.JoinTeamResponse{TeamName: team.Name})
}

// DeleteTeam handles DELETE /teams/:id request.
// @Summary Delete a team and its memberships
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} teamModel.DeleteTeamResponse
// @Failure 403 {object} ErrorResponse "PERMISSION_DENIED"
// @Failure 404 {object} ErrorResponse "NOT_FOUND"
// @Router /teams/{id} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) DeleteTeam(c *gin.Context) {
	err := h.service.DeleteTeam(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		serviceErrorResponse(c, h.logger, "error deleting team", err)
		return
	}

	c.JSON(http.StatusOK, teamModel.DeleteTeamResponse{OK: true})
}

// ListTeams handles GET /teams request.
// @Summary List the caller's teams
// @Tags Teams
// @Produce json
// @Success 200 {object} teamModel.ListTeamsResponse
// @Router /teams [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListTeams(c *gin.Context) {
	teams, err := h.service.ListTeams(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		serviceErrorResponse(c, h.logger, "error listing teams", err)
		return
	}

	c.JSON(http.StatusOK, teamModel.ListTeamsResponse{Teams: teams})
}

// GetMembers handles GET /teams/:id/members request.
// @Summary List the members of a team
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} teamModel.TeamMembersResponse
// @Failure 403 {object} ErrorResponse "PERMISSION_DENIED"
// @Failure 404 {object} ErrorResponse "NOT_FOUND"
// @Router /teams/{id}/members [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetMembers(c *gin.Context) {
	resp, err := h.service.GetMembers(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		serviceErrorResponse(c, h.logger, "error listing team members", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
