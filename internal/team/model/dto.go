// Package model provides domain models and DTOs for team module.
package model

import "github.com/google/uuid"

// CreateTeamRequest represents the request to create a team.
type CreateTeamRequest struct {
	Name string `json:"name"`
}

// RenameTeamRequest represents the request to rename the caller's team.
type RenameTeamRequest struct {
	Name string `json:"name"`
}

// JoinTeamRequest represents the request to join a team by invite code.
type JoinTeamRequest struct {
	InviteCode string `json:"inviteCode"`
}

// TeamResponse represents a team in API responses after create.
type TeamResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	InviteCode string    `json:"inviteCode"`
}

// RenamedTeamResponse represents a team in API responses after rename.
type RenamedTeamResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// InviteResponse represents the response after rotating the invite code.
type InviteResponse struct {
	ID         uuid.UUID `json:"id"`
	InviteCode string    `json:"inviteCode"`
}

// JoinResponse represents the response after joining a team.
type JoinResponse struct {
	OK     bool      `json:"ok"`
	TeamID uuid.UUID `json:"teamId"`
}
