package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxTeamNameLength is the longest accepted team name, in characters.
	MaxTeamNameLength = 50
	// InviteCodeLength is the fixed invite code length.
	InviteCodeLength = 8
)

// CreateTeamRequest is the body of POST /teams.
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateTeamResponse wraps the created team.
type CreateTeamResponse struct {
	Team Team `json:"team"`
}

// JoinTeamRequest is the body of POST /teams/join.
type JoinTeamRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

// JoinTeamResponse carries the joined team's name.
type JoinTeamResponse struct {
	TeamName string `json:"team_name"`
}

// DeleteTeamResponse signals a successful deletion.
type DeleteTeamResponse struct {
	OK bool `json:"ok"`
}

// TeamSummary is one entry of the caller's team list.
// InviteCode is only set for teams the caller administers.
type TeamSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	InviteCode string `json:"invite_code,omitempty"`
	IsAdmin    bool   `json:"is_admin"`
	CreatedBy  string `json:"created_by"`
}

// ListTeamsResponse is the body of GET /teams.
type ListTeamsResponse struct {
	Teams []TeamSummary `json:"teams"`
}

// MemberResponse is one entry of GET /teams/:id/members.
type MemberResponse struct {
	UserID   string    `json:"user_id"`
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
	FullName string    `json:"full_name"`
	RiotID   string    `json:"riot_id"`
}

// TeamMembersResponse is the body of GET /teams/:id/members.
type TeamMembersResponse struct {
	TeamID  string           `json:"team_id"`
	Members []MemberResponse `json:"members"`
}

// NewTeamSummary projects a membership for the list view.
func NewTeamSummary(m Membership) TeamSummary {
	summary := TeamSummary{
		ID:        m.ID,
		Name:      m.Name,
		IsAdmin:   m.IsAdmin(),
		CreatedBy: m.CreatedBy,
	}
	if summary.IsAdmin {
		summary.InviteCode = m.InviteCode
	}
	return summary
}

// NewMemberResponse converts repository rows for the members view.
func NewMemberResponse(d MemberDetails) MemberResponse {
	return MemberResponse(d)
}

// NormalizeTeamName trims the name and checks its length.
func NormalizeTeamName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxTeamNameLength {
		return "", ErrInvalidTeamName
	}
	return name, nil
}

// NormalizeInviteCode trims and upper-cases code, then checks that it is
// InviteCodeLength characters of [0-9A-Z].
func NormalizeInviteCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != InviteCodeLength {
		return "", ErrInvalidInviteCodeFormat
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'Z') {
			return "", ErrInvalidInviteCodeFormat
		}
	}
	return code, nil
}
