package model

import (
	"strings"
	"unicode/utf8"
)

const (
	// MaxFullNameLength is the longest accepted full name, in characters.
	MaxFullNameLength = 100
	// MaxRiotIDLength is the longest accepted Riot ID, in characters.
	MaxRiotIDLength = 32
)

// UpdateProfileRequest is the body of PUT /profile.
type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	RiotID   string `json:"riot_id"`
}

// ProfileResponse wraps a profile.
type ProfileResponse struct {
	Profile Profile `json:"profile"`
}

// Normalize trims both fields and checks their lengths.
func (r UpdateProfileRequest) Normalize() (UpdateProfileRequest, error) {
	r.FullName = strings.TrimSpace(r.FullName)
	r.RiotID = strings.TrimSpace(r.RiotID)

	if utf8.RuneCountInString(r.FullName) > MaxFullNameLength {
		return r, ErrInvalidFullName
	}
	if utf8.RuneCountInString(r.RiotID) > MaxRiotIDLength {
		return r, ErrInvalidRiotID
	}

	return r, nil
}
