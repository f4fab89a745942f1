// Package handler provides HTTP handlers for profile endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamtracker/teamtracker/internal/middleware"
	"github.com/teamtracker/teamtracker/internal/profile/model"
	"github.com/teamtracker/teamtracker/internal/profile/service"
)

// Handler handles HTTP requests for profile endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new profile handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetProfile handles GET /profile request.
// @Summary Get the caller's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} model.ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Router /profile [get].
func (h *Handler) GetProfile(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	profile, err := h.service.GetProfile(c.Request.Context(), identity.UserID, identity.Email)
	if err != nil {
		serviceErrorResponse(c, h.logger, "error getting profile", err)
		return
	}

	c.JSON(http.StatusOK, model.ProfileResponse{Profile: *profile})
}

// UpdateProfile handles PUT /profile request.
// @Summary Create or update the caller's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body model.UpdateProfileRequest true "Request"
// @Success 200 {object} model.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Router /profile [put].
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_ERROR", "invalid request body", http.StatusBadRequest)
		return
	}

	identity, _ := middleware.IdentityFrom(c)

	profile, err := h.service.UpdateProfile(c.Request.Context(), identity.UserID, identity.Email, &req)
	if err != nil {
		serviceErrorResponse(c, h.logger, "error updating profile", err)
		return
	}

	c.JSON(http.StatusOK, model.ProfileResponse{Profile: *profile})
}
