// Package service provides business logic layer for profile module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/teamtracker/teamtracker/internal/profile/model"
	"github.com/teamtracker/teamtracker/internal/profile/repository"
	teamModel "github.com/teamtracker/teamtracker/internal/team/model"
)

// Service defines the interface for profile business logic operations.
type Service interface {
	// GetProfile returns the caller's profile, or an empty one carrying the
	// identity's id and email when none was saved yet.
	GetProfile(ctx context.Context, userID, email string) (*model.Profile, error)

	// UpdateProfile saves the caller's profile and refreshes the email.
	UpdateProfile(ctx context.Context, userID, email string, req *model.UpdateProfileRequest) (*model.Profile, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new profile service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// GetProfile returns the caller's profile.
func (s *service) GetProfile(ctx context.Context, userID, email string) (*model.Profile, error) {
	s.logger.Debugw("GetProfile called", "user_id", userID)

	if userID == "" {
		return nil, teamModel.ErrUnauthenticated
	}

	profile, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return &model.Profile{UserID: userID, Email: email}, nil
		}
		s.logger.Errorw("GetProfile failed", "user_id", userID, "error", err)
		return nil, teamModel.AsStorageError(err)
	}

	return profile, nil
}

// UpdateProfile validates and upserts the caller's profile.
func (s *service) UpdateProfile(
	ctx context.Context,
	userID, email string,
	req *model.UpdateProfileRequest,
) (*model.Profile, error) {
	s.logger.Debugw("UpdateProfile called", "user_id", userID)

	if userID == "" {
		return nil, teamModel.ErrUnauthenticated
	}

	normalized, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	profile, err := s.repo.Upsert(ctx, &model.Profile{
		UserID:   userID,
		Email:    email,
		FullName: normalized.FullName,
		RiotID:   normalized.RiotID,
	})
	if err != nil {
		s.logger.Errorw("UpdateProfile failed", "user_id", userID, "error", err)
		return nil, teamModel.AsStorageError(err)
	}

	s.logger.Infow("profile updated", "user_id", userID)
	return profile, nil
}
