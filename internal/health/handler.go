// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teamtracker/teamtracker/internal/database/database"
)

const checkTimeout = 5 * time.Second

// Handler handles health check requests.
type Handler struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Response represents health check response.
type Response struct {
	Status string `json:"status"`
	// OpenConnections is reported only while the database is reachable.
	OpenConnections int `json:"open_connections,omitempty"`
}

// Check handles GET /health request.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{Status: "unhealthy"})
		return
	}

	resp := Response{Status: "ok"}
	if stats, err := database.GetStats(h.db); err == nil {
		resp.OpenConnections = stats.OpenConnections
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterRoutes registers the health endpoint outside any auth group.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	r.GET("/health", New(db, logger).Check)
}
