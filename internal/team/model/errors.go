package model

import (
	"errors"
	"fmt"
)

// Error kinds returned by the team and profile services.
// Every service error matches exactly one of them with errors.Is.
var (
	// ErrUnauthenticated indicates the caller has no identity.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrValidation indicates malformed input.
	ErrValidation = errors.New("validation error")
	// ErrTeamNotFound indicates that the referenced team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidInviteCode indicates that no team uses the supplied code.
	ErrInvalidInviteCode = errors.New("invalid invite code")
	// ErrAlreadyMember indicates the caller already belongs to the team.
	ErrAlreadyMember = errors.New("already a member of this team")
	// ErrPermissionDenied indicates the caller may not perform the action.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrStorage indicates a store failure or an unexpected store state.
	ErrStorage = errors.New("storage error")
)

// Validation failures. Each one also matches ErrValidation.
var (
	ErrInvalidTeamName = fmt.Errorf("%w: team name must be 1 to %d characters",
		ErrValidation, MaxTeamNameLength)
	ErrInvalidInviteCodeFormat = fmt.Errorf("%w: invite code must be %d letters or digits",
		ErrValidation, InviteCodeLength)
	ErrInvalidTeamID = fmt.Errorf("%w: team id is required", ErrValidation)
)

// ErrInviteCodeTaken reports a collision with another team's invite code.
// The service retries on it and never returns it.
var ErrInviteCodeTaken = errors.New("invite code already in use")

var kinds = []error{
	ErrUnauthenticated,
	ErrValidation,
	ErrTeamNotFound,
	ErrInvalidInviteCode,
	ErrAlreadyMember,
	ErrPermissionDenied,
	ErrStorage,
}

// IsKnown reports whether err already carries one of the error kinds.
func IsKnown(err error) bool {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// AsStorageError marks err as ErrStorage unless it already has a kind.
func AsStorageError(err error) error {
	if err == nil || IsKnown(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

// Code returns the public code of err's kind. Errors without a kind are
// reported as STORAGE_ERROR.
func Code(err error) string {
	switch {
	case err == nil:
		return "OK"
	case errors.Is(err, ErrUnauthenticated):
		return "UNAUTHENTICATED"
	case errors.Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrTeamNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInvalidInviteCode):
		return "INVALID_INVITE_CODE"
	case errors.Is(err, ErrAlreadyMember):
		return "ALREADY_MEMBER"
	case errors.Is(err, ErrPermissionDenied):
		return "PERMISSION_DENIED"
	default:
		return "STORAGE_ERROR"
	}
}
