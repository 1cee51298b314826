// Package model provides data transfer objects for dashboard module.
package model

import (
	"github.com/google/uuid"

	userModel "github.com/hong13131/godlife/internal/user/model"
)

// TeamInfo describes the caller's team. InviteCode is present only when the
// caller is an ADMIN.
type TeamInfo struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	InviteCode string    `json:"inviteCode,omitempty"`
}

// GoalDetail summarizes one goal's progress for the dashboard.
type GoalDetail struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	TargetCount int       `json:"targetCount"`
	Unit        string    `json:"unit"`
	Progress    int       `json:"progress"`
	Checks      float64   `json:"checks"`
}

// RecentCheck is one of a member's latest check-ins, tagged with its goal.
type RecentCheck struct {
	Date      string `json:"date"`
	GoalTitle string `json:"goalTitle"`
}

// MemberSummary aggregates one team member's progress.
type MemberSummary struct {
	ID           uuid.UUID      `json:"id"`
	Name         *string        `json:"name"`
	Email        string         `json:"email"`
	Role         userModel.Role `json:"role"`
	Completion   int            `json:"completion"`
	Goals        int            `json:"goals"`
	GoalsDetail  []GoalDetail   `json:"goalsDetail"`
	RecentChecks []RecentCheck  `json:"recentChecks"`
}

// TeamSummaryResponse is the team dashboard payload.
type TeamSummaryResponse struct {
	Team    TeamInfo        `json:"team"`
	Members []MemberSummary `json:"members"`
	MeRole  userModel.Role  `json:"meRole"`
}
