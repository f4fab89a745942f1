// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teamtracker/teamtracker/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetTeamStatistics returns per-team counts for every team userID belongs to.
	GetTeamStatistics(ctx context.Context, userID string) ([]model.TeamStatistics, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetTeamStatistics returns per-team counts ordered by team name, then id.
func (r *repository) GetTeamStatistics(ctx context.Context, userID string) ([]model.TeamStatistics, error) {
	r.logger.Debugw("GetTeamStatistics called", "user_id", userID)

	var rows []struct {
		TeamID      string `gorm:"column:team_id"`
		Name        string `gorm:"column:name"`
		Role        string `gorm:"column:role"`
		MemberCount int64  `gorm:"column:member_count"`
		AdminCount  int64  `gorm:"column:admin_count"`
	}

	err := r.db.WithContext(ctx).
		Table("team_members AS mine").
		Select(`
			teams.id AS team_id,
			teams.name AS name,
			mine.role AS role,
			COUNT(members.user_id) AS member_count,
			SUM(CASE WHEN members.role = 'admin' THEN 1 ELSE 0 END) AS admin_count
		`).
		Joins("JOIN teams ON teams.id = mine.team_id").
		Joins("JOIN team_members AS members ON members.team_id = mine.team_id").
		Where("mine.user_id = ?", userID).
		Group("teams.id, teams.name, mine.role").
		Order("teams.name ASC, teams.id ASC").
		Scan(&rows).Error

	if err != nil {
		r.logger.Errorw("GetTeamStatistics database error", "user_id", userID, "error", err)
		return nil, err
	}

	stats := make([]model.TeamStatistics, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, model.TeamStatistics{
			TeamID:      row.TeamID,
			Name:        row.Name,
			IsAdmin:     row.Role == "admin",
			MemberCount: int(row.MemberCount),
			AdminCount:  int(row.AdminCount),
		})
	}

	r.logger.Debugw("GetTeamStatistics completed", "user_id", userID, "count", len(stats))
	return stats, nil
}
