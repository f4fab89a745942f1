// Package service provides business logic layer for statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/teamtracker/teamtracker/internal/statistics/model"
	"github.com/teamtracker/teamtracker/internal/statistics/repository"
	teamModel "github.com/teamtracker/teamtracker/internal/team/model"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetTeamStatistics returns membership statistics for the caller's teams.
	GetTeamStatistics(ctx context.Context, userID string) (*model.TeamStatisticsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetTeamStatistics aggregates per-team counts into totals.
func (s *service) GetTeamStatistics(ctx context.Context, userID string) (*model.TeamStatisticsResponse, error) {
	s.logger.Debugw("GetTeamStatistics called", "user_id", userID)

	if userID == "" {
		return nil, teamModel.ErrUnauthenticated
	}

	teams, err := s.repo.GetTeamStatistics(ctx, userID)
	if err != nil {
		s.logger.Errorw("GetTeamStatistics failed", "user_id", userID, "error", err)
		return nil, teamModel.AsStorageError(err)
	}

	if teams == nil {
		teams = []model.TeamStatistics{}
	}

	resp := &model.TeamStatisticsResponse{
		TotalTeams: len(teams),
		Teams:      teams,
	}
	for _, team := range teams {
		if team.IsAdmin {
			resp.AdminTeams++
		}
		resp.TotalMembers += team.MemberCount
	}

	s.logger.Infow("GetTeamStatistics completed", "user_id", userID, "teams", resp.TotalTeams)
	return resp, nil
}
