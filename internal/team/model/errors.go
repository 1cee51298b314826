package model

import "errors"

var (
	// ErrInvalidTeamName indicates that the provided team name is invalid (e.g., empty).
	ErrInvalidTeamName = errors.New("invalid team name")
	// ErrAlreadyInTeam indicates that the caller already belongs to a team.
	ErrAlreadyInTeam = errors.New("already in a team")
	// ErrNoTeam indicates that the caller does not belong to a team.
	ErrNoTeam = errors.New("no team joined")
	// ErrNotAdmin indicates that the caller lacks the ADMIN role.
	ErrNotAdmin = errors.New("admin role required")
	// ErrTeamNotFound indicates that no team matches the given id or invite code.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInviteCodeTaken indicates an invite code collided with an existing one.
	ErrInviteCodeTaken = errors.New("invite code already taken")
)
