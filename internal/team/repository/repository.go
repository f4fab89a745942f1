// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	teamModel "github.com/teamtracker/teamtracker/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// CreateTeam inserts a team. A clash on the invite code returns ErrInviteCodeTaken.
	CreateTeam(ctx context.Context, team *teamModel.Team) error

	// AddMember inserts a membership. An existing (team, user) pair returns ErrAlreadyMember.
	AddMember(ctx context.Context, member *teamModel.TeamMember) error

	// InviteCodeExists reports whether any team uses code.
	InviteCodeExists(ctx context.Context, code string) (bool, error)

	// GetByID finds a team by id.
	GetByID(ctx context.Context, teamID string) (*teamModel.Team, error)

	// FindByInviteCode returns every team using code.
	FindByInviteCode(ctx context.Context, code string) ([]teamModel.Team, error)

	// IsMember reports whether userID belongs to teamID.
	IsMember(ctx context.Context, teamID, userID string) (bool, error)

	// DeleteTeam removes a team created by createdBy together with its memberships.
	// It reports whether a team row was removed.
	DeleteTeam(ctx context.Context, teamID, createdBy string) (bool, error)

	// ListMemberships returns the teams userID belongs to with the role held in each.
	ListMemberships(ctx context.Context, userID string) ([]teamModel.Membership, error)

	// ListMembers returns the members of a team with their profile fields.
	ListMembers(ctx context.Context, teamID string) ([]teamModel.MemberDetails, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// CreateTeam inserts a team row.
func (r *repository) CreateTeam(ctx context.Context, team *teamModel.Team) error {
	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		if isUniqueViolation(err, constraintInviteCode) {
			r.logger.Debugw("invite code collision on insert", "invite_code", team.InviteCode)
			return teamModel.ErrInviteCodeTaken
		}
		return err
	}

	r.logger.Debugw("team inserted", "team_id", team.ID)
	return nil
}

// AddMember inserts a membership row.
func (r *repository) AddMember(ctx context.Context, member *teamModel.TeamMember) error {
	err := r.db.WithContext(ctx).Create(member).Error
	if err != nil {
		if isUniqueViolation(err, constraintMembership) {
			return teamModel.ErrAlreadyMember
		}
		return err
	}

	r.logger.Debugw("member inserted", "team_id", member.TeamID, "user_id", member.UserID, "role", member.Role)
	return nil
}

// InviteCodeExists reports whether any team uses code.
func (r *repository) InviteCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("invite_code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, teamID string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", teamID).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// FindByInviteCode returns every team using code. More than one row means
// the uniqueness constraint is broken and is left to the caller to report.
func (r *repository) FindByInviteCode(ctx context.Context, code string) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Where("invite_code = ?", code).
		Find(&teams).Error
	if err != nil {
		return nil, err
	}

	return teams, nil
}

// IsMember reports whether userID belongs to teamID.
func (r *repository) IsMember(ctx context.Context, teamID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&teamModel.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// DeleteTeam removes the memberships first so the result does not depend on
// the store enforcing ON DELETE CASCADE. Callers run it in a transaction.
func (r *repository) DeleteTeam(ctx context.Context, teamID, createdBy string) (bool, error) {
	db := r.db.WithContext(ctx)

	if err := db.Where("team_id = ?", teamID).Delete(&teamModel.TeamMember{}).Error; err != nil {
		return false, err
	}

	result := db.Where("id = ? AND created_by = ?", teamID, createdBy).Delete(&teamModel.Team{})
	if result.Error != nil {
		return false, result.Error
	}

	r.logger.Debugw("team delete executed", "team_id", teamID, "rows", result.RowsAffected)
	return result.RowsAffected > 0, nil
}

// ListMemberships returns the user's teams ordered by name, then id.
func (r *repository) ListMemberships(ctx context.Context, userID string) ([]teamModel.Membership, error) {
	var memberships []teamModel.Membership

	err := r.db.WithContext(ctx).
		Table("teams").
		Select("teams.id, teams.name, teams.invite_code, teams.created_by, team_members.role").
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Order("teams.name ASC, teams.id ASC").
		Scan(&memberships).Error
	if err != nil {
		return nil, err
	}

	if memberships == nil {
		return []teamModel.Membership{}, nil
	}

	return memberships, nil
}

// ListMembers returns admins first, then members by join time.
func (r *repository) ListMembers(ctx context.Context, teamID string) ([]teamModel.MemberDetails, error) {
	var members []teamModel.MemberDetails

	err := r.db.WithContext(ctx).
		Table("team_members").
		Select("team_members.user_id, team_members.role, team_members.joined_at, " +
			"COALESCE(profiles.full_name, '') AS full_name, COALESCE(profiles.riot_id, '') AS riot_id").
		Joins("LEFT JOIN profiles ON profiles.user_id = team_members.user_id").
		Where("team_members.team_id = ?", teamID).
		Order("team_members.role ASC, team_members.joined_at ASC, team_members.user_id ASC").
		Scan(&members).Error
	if err != nil {
		return nil, err
	}

	if members == nil {
		return []teamModel.MemberDetails{}, nil
	}

	return members, nil
}
