package model

import "errors"

// ErrGoalNotFound indicates that the goal does not exist or is not owned by the caller.
var ErrGoalNotFound = errors.New("goal not found")
