// Package model provides domain models and DTOs for goal module.
package model

import "github.com/hong13131/godlife/pkg/civil"

// CreateGoalRequest represents the request to create a goal.
type CreateGoalRequest struct {
	Title       string      `json:"title"`
	TargetCount *int        `json:"targetCount"`
	Unit        string      `json:"unit"`
	Category    *string     `json:"category"`
	Notes       *string     `json:"notes"`
	Month       string      `json:"month"` // YYYY-MM, defaults to the current month
	StartDate   *civil.Date `json:"startDate"`
	EndDate     *civil.Date `json:"endDate"`
}

// UpdateGoalRequest represents a partial goal update.
// Nil fields are left unchanged.
type UpdateGoalRequest struct {
	Title       *string     `json:"title"`
	TargetCount *int        `json:"targetCount"`
	Unit        *string     `json:"unit"`
	Category    *string     `json:"category"`
	Notes       *string     `json:"notes"`
	Status      *string     `json:"status"`
	StartDate   *civil.Date `json:"startDate"`
	EndDate     *civil.Date `json:"endDate"`
}
