package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	constraintInviteCode = "uq_teams_invite_code"
	constraintMembership = "pk_team_members"

	pgUniqueViolation = "23505"
)

// SQLite reports violated columns instead of constraint names.
var sqliteConstraintColumns = map[string]string{
	constraintInviteCode: "teams.invite_code",
	constraintMembership: "team_members.team_id, team_members.user_id",
}

// isUniqueViolation reports whether err is a unique violation of constraint.
func isUniqueViolation(err error, constraint string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraint
	}

	msg := err.Error()
	columns, ok := sqliteConstraintColumns[constraint]
	return ok && strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, columns)
}
