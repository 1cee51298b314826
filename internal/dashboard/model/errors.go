package model

import "errors"

var (
	// ErrNoTeam indicates that the caller does not belong to a team.
	ErrNoTeam = errors.New("no team joined")
	// ErrTeamNotFound indicates that the caller's team no longer exists.
	ErrTeamNotFound = errors.New("team not found")
)
