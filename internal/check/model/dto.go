// Package model provides domain models and DTOs for check module.
package model

import "github.com/hong13131/godlife/pkg/civil"

// RecordCheckRequest represents the request to record a day's progress.
// Omitted value defaults to 1; an existing row for the day is overwritten.
type RecordCheckRequest struct {
	GoalID string     `json:"goalId"`
	Date   civil.Date `json:"date"`
	Value  *float64   `json:"value"`
}
