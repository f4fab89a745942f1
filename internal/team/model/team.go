// Package model provides domain models, DTOs and errors for the team module.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is a membership role within a team.
type Role string

const (
	// RoleAdmin is granted to the team creator.
	RoleAdmin Role = "admin"
	// RoleMember is granted to users joining with an invite code.
	RoleMember Role = "member"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// Team represents a row of the teams table.
// Name, InviteCode and CreatedBy never change after creation.
type Team struct {
	ID         string    `gorm:"primaryKey;column:id"                                     json:"id"`
	Name       string    `gorm:"column:name;not null"                                     json:"name"`
	InviteCode string    `gorm:"column:invite_code;not null;uniqueIndex:uq_teams_invite_code" json:"invite_code"`
	CreatedBy  string    `gorm:"column:created_by;not null;index"                         json:"created_by"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"                               json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate assigns an id and creation time when they are not set.
func (t *Team) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	return nil
}

// TeamMember represents a row of the team_members table.
type TeamMember struct {
	TeamID   string    `gorm:"primaryKey;column:team_id"  json:"team_id"`
	UserID   string    `gorm:"primaryKey;column:user_id"  json:"user_id"`
	Role     Role      `gorm:"column:role;not null"       json:"role"`
	JoinedAt time.Time `gorm:"column:joined_at;not null"  json:"joined_at"`
}

// TableName specifies the table name for GORM.
func (TeamMember) TableName() string {
	return "team_members"
}

// BeforeCreate stamps the join time.
func (m *TeamMember) BeforeCreate(_ *gorm.DB) error {
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now().UTC()
	}
	return nil
}

// Membership is a team together with the requester's role in it.
type Membership struct {
	ID         string `gorm:"column:id"`
	Name       string `gorm:"column:name"`
	InviteCode string `gorm:"column:invite_code"`
	CreatedBy  string `gorm:"column:created_by"`
	Role       Role   `gorm:"column:role"`
}

// IsAdmin reports whether the requester administers the team.
func (m Membership) IsAdmin() bool {
	return m.Role == RoleAdmin
}

// MemberDetails is a membership row enriched with the member's profile.
type MemberDetails struct {
	UserID   string    `gorm:"column:user_id"`
	Role     Role      `gorm:"column:role"`
	JoinedAt time.Time `gorm:"column:joined_at"`
	FullName string    `gorm:"column:full_name"`
	RiotID   string    `gorm:"column:riot_id"`
}
