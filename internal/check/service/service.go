// Package service provides business logic layer for check module.
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hong13131/godlife/internal/check/model"
	"github.com/hong13131/godlife/internal/check/repository"
	userModel "github.com/hong13131/godlife/internal/user/model"
	"github.com/hong13131/godlife/pkg/civil"
)

// Service defines the interface for check business logic operations.
type Service interface {
	// Record upserts the check for (goalID, date), overwriting any existing
	// value for that day. The goal must be owned by the caller.
	Record(ctx context.Context, caller *userModel.User, goalID uuid.UUID, date civil.Date, value float64) (*model.Check, error)

	// Delete removes the check for (goalID, date); succeeds when none exists.
	Delete(ctx context.Context, caller *userModel.User, goalID uuid.UUID, date civil.Date) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new check service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Record upserts the check for (goalID, date).
func (s *service) Record(
	ctx context.Context,
	caller *userModel.User,
	goalID uuid.UUID,
	date civil.Date,
	value float64,
) (*model.Check, error) {
	owned, err := s.repo.GoalOwnedBy(ctx, goalID, caller.ID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, model.ErrGoalNotFound
	}

	check, err := s.repo.Upsert(ctx, goalID, date, value)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("check recorded", "goal_id", goalID, "date", date.String(), "value", value)
	return check, nil
}

// Delete removes the check for (goalID, date).
func (s *service) Delete(
	ctx context.Context,
	caller *userModel.User,
	goalID uuid.UUID,
	date civil.Date,
) error {
	owned, err := s.repo.GoalOwnedBy(ctx, goalID, caller.ID)
	if err != nil {
		return err
	}
	if !owned {
		return model.ErrGoalNotFound
	}

	return s.repo.Delete(ctx, goalID, date)
}
