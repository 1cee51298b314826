// Package service provides business logic layer for goal module.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hong13131/godlife/internal/goal/model"
	"github.com/hong13131/godlife/internal/goal/repository"
	userModel "github.com/hong13131/godlife/internal/user/model"
	"github.com/hong13131/godlife/pkg/civil"
)

// Service defines the interface for goal business logic operations.
type Service interface {
	// List returns the caller's goals for a month (YYYY-MM, defaults to current).
	List(ctx context.Context, caller *userModel.User, month string) ([]model.Goal, error)

	// Create creates a goal owned by the caller.
	Create(ctx context.Context, caller *userModel.User, req *model.CreateGoalRequest) (*model.Goal, error)

	// Update applies a partial update to a goal owned by the caller.
	Update(ctx context.Context, caller *userModel.User, goalID uuid.UUID, req *model.UpdateGoalRequest) (*model.Goal, error)

	// Delete removes a goal owned by the caller; silent no-op otherwise.
	Delete(ctx context.Context, caller *userModel.User, goalID uuid.UUID) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new goal service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// resolveMonth parses a YYYY-MM parameter, defaulting to the current month.
func resolveMonth(month string) (civil.Date, error) {
	if month == "" {
		return civil.MonthOf(time.Now().UTC()), nil
	}
	parsed, err := civil.ParseMonth(month)
	if err != nil {
		return civil.Date{}, model.ErrInvalidMonth
	}
	return parsed, nil
}

// List returns the caller's goals for a month.
func (s *service) List(ctx context.Context, caller *userModel.User, month string) ([]model.Goal, error) {
	monthStart, err := resolveMonth(month)
	if err != nil {
		return nil, err
	}

	return s.repo.ListByMonth(ctx, caller.ID, monthStart)
}

// Create creates a goal owned by the caller. The goal's team is a snapshot of
// the caller's membership at creation time.
func (s *service) Create(
	ctx context.Context,
	caller *userModel.User,
	req *model.CreateGoalRequest,
) (*model.Goal, error) {
	if req.Title == "" || req.Unit == "" || req.TargetCount == nil || *req.TargetCount <= 0 {
		return nil, model.ErrMissingFields
	}

	monthStart, err := resolveMonth(req.Month)
	if err != nil {
		return nil, err
	}

	goal := &model.Goal{
		UserID:      caller.ID,
		TeamID:      caller.TeamID,
		Title:       req.Title,
		TargetCount: *req.TargetCount,
		Unit:        req.Unit,
		Category:    req.Category,
		Notes:       req.Notes,
		Month:       monthStart,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, err
	}

	s.logger.Infow("goal created", "goal_id", goal.ID, "user_id", caller.ID)
	return goal, nil
}

// Update applies a partial update; nil fields are left unchanged.
func (s *service) Update(
	ctx context.Context,
	caller *userModel.User,
	goalID uuid.UUID,
	req *model.UpdateGoalRequest,
) (*model.Goal, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.TargetCount != nil {
		updates["target_count"] = *req.TargetCount
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}

	return s.repo.UpdateOwned(ctx, caller.ID, goalID, updates)
}

// Delete removes a goal owned by the caller.
func (s *service) Delete(ctx context.Context, caller *userModel.User, goalID uuid.UUID) error {
	return s.repo.DeleteOwned(ctx, caller.ID, goalID)
}
