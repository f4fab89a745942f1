// Package service provides business logic layer for team module.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/teamtracker/teamtracker/internal/config"
	"github.com/teamtracker/teamtracker/internal/metrics"
	"github.com/teamtracker/teamtracker/internal/team/invitecode"
	teamModel "github.com/teamtracker/teamtracker/internal/team/model"
	"github.com/teamtracker/teamtracker/internal/team/repository"
	"github.com/teamtracker/teamtracker/pkg/retry"
)

// Operation names used for metrics and logs.
const (
	OperationCreate  = "create"
	OperationDelete  = "delete"
	OperationJoin    = "join"
	OperationList    = "list"
	OperationMembers = "members"
)

// Service defines the interface for team business logic operations.
// requesterID is the authenticated user; an empty value yields ErrUnauthenticated.
type Service interface {
	// CreateTeam creates a team with a fresh invite code and makes the requester its admin.
	CreateTeam(ctx context.Context, requesterID, name string) (*teamModel.Team, error)

	// DeleteTeam removes a team and all its memberships. Only the creator may do this.
	DeleteTeam(ctx context.Context, requesterID, teamID string) error

	// JoinTeam adds the requester as a member of the team using inviteCode.
	JoinTeam(ctx context.Context, requesterID, inviteCode string) (*teamModel.Team, error)

	// ListTeams returns every team the requester belongs to.
	ListTeams(ctx context.Context, requesterID string) ([]teamModel.TeamSummary, error)

	// GetMembers returns the members of a team the requester belongs to.
	GetMembers(ctx context.Context, requesterID, teamID string) (*teamModel.TeamMembersResponse, error)
}

type service struct {
	repo      repository.Repository
	db        *gorm.DB
	generator invitecode.Generator
	cfg       appConfig.TeamConfig
	logger    *zap.SugaredLogger
}

// New creates a new team service instance.
func New(
	repo repository.Repository,
	db *gorm.DB,
	generator invitecode.Generator,
	cfg appConfig.TeamConfig,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:      repo,
		db:        db,
		generator: generator,
		cfg:       cfg,
		logger:    logger,
	}
}

// CreateTeam generates invite codes until one is unused, then inserts the
// team and the creator's admin membership in a single transaction.
func (s *service) CreateTeam(ctx context.Context, requesterID, name string) (team *teamModel.Team, err error) {
	defer func() { s.report(OperationCreate, err) }()

	if requesterID == "" {
		return nil, teamModel.ErrUnauthenticated
	}

	name, err = teamModel.NormalizeTeamName(name)
	if err != nil {
		return nil, err
	}

	cfg := retry.ImmediateConfig(s.cfg.InviteCodeMaxAttempts, func(err error) bool {
		return errors.Is(err, teamModel.ErrInviteCodeTaken)
	})
	cfg.OnRetry = func(attempt int, _ error) {
		metrics.ReportInviteCodeCollision()
		s.logger.Warnw("invite code collision, regenerating", "attempt", attempt)
	}

	team, err = retry.DoWithResult(ctx, cfg, func() (*teamModel.Team, error) {
		return s.createWithNewCode(ctx, requesterID, name)
	})
	if err != nil {
		if errors.Is(err, teamModel.ErrInviteCodeTaken) {
			metrics.ReportInviteCodeCollision()
			s.logger.Errorw("no unused invite code found",
				"attempts", s.cfg.InviteCodeMaxAttempts,
				"requester_id", requesterID,
			)
			return nil, fmt.Errorf("%w: no unused invite code after %d attempts",
				teamModel.ErrStorage, s.cfg.InviteCodeMaxAttempts)
		}
		s.logger.Errorw("failed to create team", "requester_id", requesterID, "error", err)
		return nil, teamModel.AsStorageError(err)
	}

	s.logger.Infow("team created", "team_id", team.ID, "created_by", requesterID)
	return team, nil
}

func (s *service) createWithNewCode(ctx context.Context, requesterID, name string) (*teamModel.Team, error) {
	code, err := s.generator.Generate()
	if err != nil {
		return nil, err
	}

	// The pre-check avoids most collisions; the unique constraint settles races.
	taken, err := s.repo.InviteCodeExists(ctx, code)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, teamModel.ErrInviteCodeTaken
	}

	team := &teamModel.Team{
		Name:       name,
		InviteCode: code,
		CreatedBy:  requesterID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		if err := txRepo.CreateTeam(ctx, team); err != nil {
			return err
		}

		err := txRepo.AddMember(ctx, &teamModel.TeamMember{
			TeamID: team.ID,
			UserID: requesterID,
			Role:   teamModel.RoleAdmin,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to add creator membership: %v", teamModel.ErrStorage, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}

// DeleteTeam removes a team owned by the requester.
func (s *service) DeleteTeam(ctx context.Context, requesterID, teamID string) (err error) {
	defer func() { s.report(OperationDelete, err) }()

	team, err := s.lookupTeam(ctx, requesterID, teamID)
	if err != nil {
		return err
	}

	if team.CreatedBy != requesterID {
		return teamModel.ErrPermissionDenied
	}

	var deleted bool
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, err = repository.New(tx, s.logger).DeleteTeam(ctx, team.ID, requesterID)
		return err
	})
	if err != nil {
		s.logger.Errorw("failed to delete team", "team_id", team.ID, "error", err)
		return teamModel.AsStorageError(err)
	}

	// Removed concurrently between the lookup and the delete.
	if !deleted {
		return teamModel.ErrTeamNotFound
	}

	s.logger.Infow("team deleted", "team_id", team.ID, "deleted_by", requesterID)
	return nil
}

// JoinTeam adds the requester to the team owning inviteCode.
func (s *service) JoinTeam(ctx context.Context, requesterID, inviteCode string) (team *teamModel.Team, err error) {
	defer func() { s.report(OperationJoin, err) }()

	if requesterID == "" {
		return nil, teamModel.ErrUnauthenticated
	}

	code, err := teamModel.NormalizeInviteCode(inviteCode)
	if err != nil {
		return nil, err
	}

	teams, err := s.repo.FindByInviteCode(ctx, code)
	if err != nil {
		return nil, teamModel.AsStorageError(err)
	}

	switch len(teams) {
	case 0:
		return nil, teamModel.ErrInvalidInviteCode
	case 1:
	default:
		s.logger.Errorw("invite code shared by several teams", "invite_code", code, "teams", len(teams))
		return nil, fmt.Errorf("%w: invite code matches %d teams", teamModel.ErrStorage, len(teams))
	}
	team = &teams[0]

	member, err := s.repo.IsMember(ctx, team.ID, requesterID)
	if err != nil {
		return nil, teamModel.AsStorageError(err)
	}
	if member {
		return nil, teamModel.ErrAlreadyMember
	}

	// A concurrent join by the same user surfaces here as ErrAlreadyMember.
	err = s.repo.AddMember(ctx, &teamModel.TeamMember{
		TeamID: team.ID,
		UserID: requesterID,
		Role:   teamModel.RoleMember,
	})
	if err != nil {
		if !errors.Is(err, teamModel.ErrAlreadyMember) {
			s.logger.Errorw("failed to add member", "team_id", team.ID, "user_id", requesterID, "error", err)
		}
		return nil, teamModel.AsStorageError(err)
	}

	s.logger.Infow("member joined team", "team_id", team.ID, "user_id", requesterID)
	return team, nil
}

// ListTeams returns the requester's teams with admin flags.
func (s *service) ListTeams(ctx context.Context, requesterID string) (teams []teamModel.TeamSummary, err error) {
	defer func() { s.report(OperationList, err) }()

	if requesterID == "" {
		return nil, teamModel.ErrUnauthenticated
	}

	memberships, err := s.repo.ListMemberships(ctx, requesterID)
	if err != nil {
		return nil, teamModel.AsStorageError(err)
	}

	teams = make([]teamModel.TeamSummary, 0, len(memberships))
	for _, m := range memberships {
		teams = append(teams, teamModel.NewTeamSummary(m))
	}

	return teams, nil
}

// GetMembers lists a team's members for one of its members.
func (s *service) GetMembers(
	ctx context.Context,
	requesterID, teamID string,
) (resp *teamModel.TeamMembersResponse, err error) {
	defer func() { s.report(OperationMembers, err) }()

	team, err := s.lookupTeam(ctx, requesterID, teamID)
	if err != nil {
		return nil, err
	}

	member, err := s.repo.IsMember(ctx, team.ID, requesterID)
	if err != nil {
		return nil, teamModel.AsStorageError(err)
	}
	if !member {
		return nil, teamModel.ErrPermissionDenied
	}

	details, err := s.repo.ListMembers(ctx, team.ID)
	if err != nil {
		return nil, teamModel.AsStorageError(err)
	}

	resp = &teamModel.TeamMembersResponse{
		TeamID:  team.ID,
		Members: make([]teamModel.MemberResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Members = append(resp.Members, teamModel.NewMemberResponse(d))
	}

	return resp, nil
}

// lookupTeam checks the requester and team id, then loads the team.
// Ids that are not UUIDs cannot exist and are reported as ErrTeamNotFound.
func (s *service) lookupTeam(ctx context.Context, requesterID, teamID string) (*teamModel.Team, error) {
	if requesterID == "" {
		return nil, teamModel.ErrUnauthenticated
	}

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, teamModel.ErrInvalidTeamID
	}
	if _, err := uuid.Parse(teamID); err != nil {
		return nil, teamModel.ErrTeamNotFound
	}

	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, teamModel.AsStorageError(err)
	}

	return team, nil
}

func (s *service) report(operation string, err error) {
	metrics.ReportTeamOperation(operation, strings.ToLower(teamModel.Code(err)))
}
