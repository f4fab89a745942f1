// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/teamtracker/teamtracker/internal/config"
	"github.com/teamtracker/teamtracker/internal/team/handler"
	"github.com/teamtracker/teamtracker/internal/team/invitecode"
	"github.com/teamtracker/teamtracker/internal/team/repository"
	"github.com/teamtracker/teamtracker/internal/team/service"
)

// RegisterRoutes registers team module routes on r, which is expected to
// carry the authentication middleware already.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, cfg appConfig.TeamConfig, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, invitecode.New(), cfg, logger)
	h := handler.New(svc, logger)

	teams := r.Group("/teams")
	teams.POST("", h.CreateTeam)
	teams.GET("", h.ListTeams)
	teams.POST("/join", h.JoinTeam)
	teams.DELETE("/:id", h.DeleteTeam)
	teams.GET("/:id/members", h.GetMembers)
}
