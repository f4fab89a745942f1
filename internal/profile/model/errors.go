package model

import (
	"errors"
	"fmt"

	teamModel "github.com/teamtracker/teamtracker/internal/team/model"
)

var (
	// ErrProfileNotFound indicates that the user has not saved a profile yet.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidFullName indicates that full_name is too long.
	ErrInvalidFullName = fmt.Errorf("%w: full_name must be at most %d characters",
		teamModel.ErrValidation, MaxFullNameLength)
	// ErrInvalidRiotID indicates that riot_id is too long.
	ErrInvalidRiotID = fmt.Errorf("%w: riot_id must be at most %d characters",
		teamModel.ErrValidation, MaxRiotIDLength)
)
