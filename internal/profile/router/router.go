// Package router provides profile module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teamtracker/teamtracker/internal/profile/handler"
	"github.com/teamtracker/teamtracker/internal/profile/repository"
	"github.com/teamtracker/teamtracker/internal/profile/service"
)

// RegisterRoutes registers profile module routes on an authenticated router.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/profile", h.GetProfile)
	r.PUT("/profile", h.UpdateProfile)
}
