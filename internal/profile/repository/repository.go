// Package repository provides data access layer for profile module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/teamtracker/teamtracker/internal/profile/model"
)

// Repository defines the interface for profile data access operations.
type Repository interface {
	// GetByID finds a profile by user_id.
	GetByID(ctx context.Context, userID string) (*model.Profile, error)

	// Upsert inserts the profile or overwrites the existing one for the same user.
	Upsert(ctx context.Context, profile *model.Profile) (*model.Profile, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new profile repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetByID finds a profile by user_id.
func (r *repository) GetByID(ctx context.Context, userID string) (*model.Profile, error) {
	r.logger.Debugw("GetByID called", "user_id", userID)

	var profile model.Profile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrProfileNotFound
		}
		r.logger.Errorw("GetByID database error", "user_id", userID, "error", err)
		return nil, err
	}

	return &profile, nil
}

// Upsert writes the profile with INSERT ... ON CONFLICT (user_id) DO UPDATE.
// created_at is kept from the first insert.
func (r *repository) Upsert(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	r.logger.Debugw("Upsert called", "user_id", profile.UserID)

	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "full_name", "riot_id", "updated_at"}),
		}).
		Create(profile).Error
	if err != nil {
		r.logger.Errorw("Upsert database error", "user_id", profile.UserID, "error", err)
		return nil, err
	}

	return r.GetByID(ctx, profile.UserID)
}
