package model

import "errors"

var (
	// ErrGoalNotFound indicates that the goal does not exist or is not owned by the caller.
	ErrGoalNotFound = errors.New("goal not found")
	// ErrMissingFields indicates that title, targetCount or unit is absent.
	ErrMissingFields = errors.New("title, targetCount, unit are required")
	// ErrInvalidMonth indicates a malformed month parameter.
	ErrInvalidMonth = errors.New("invalid month")
)
