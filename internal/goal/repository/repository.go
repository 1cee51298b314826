// Package repository provides data access layer for goal module.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	checkModel "github.com/hong13131/godlife/internal/check/model"
	"github.com/hong13131/godlife/internal/goal/model"
	"github.com/hong13131/godlife/pkg/civil"
)

// Repository defines the interface for goal data access operations.
type Repository interface {
	// ListByMonth returns the owner's goals for a month, checks included,
	// newest-created first.
	ListByMonth(ctx context.Context, userID uuid.UUID, month civil.Date) ([]model.Goal, error)

	// Create persists a new goal.
	Create(ctx context.Context, goal *model.Goal) error

	// GetOwned returns the goal if it exists and belongs to userID.
	GetOwned(ctx context.Context, userID, goalID uuid.UUID) (*model.Goal, error)

	// UpdateOwned applies the given column updates if the goal belongs to userID.
	UpdateOwned(ctx context.Context, userID, goalID uuid.UUID, updates map[string]interface{}) (*model.Goal, error)

	// DeleteOwned deletes the goal and its checks if owned by userID; no-op otherwise.
	DeleteOwned(ctx context.Context, userID, goalID uuid.UUID) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new goal repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// ListByMonth returns the owner's goals for a month with their checks.
func (r *repository) ListByMonth(ctx context.Context, userID uuid.UUID, month civil.Date) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.db.WithContext(ctx).
		Preload("Checks").
		Where("user_id = ? AND month = ?", userID, month).
		Order("created_at DESC").
		Find(&goals).Error
	if err != nil {
		r.logger.Errorw("ListByMonth database error", "user_id", userID, "error", err)
		return nil, err
	}

	if goals == nil {
		goals = []model.Goal{}
	}
	for i := range goals {
		if goals[i].Checks == nil {
			goals[i].Checks = []checkModel.Check{}
		}
	}
	return goals, nil
}

// Create persists a new goal.
func (r *repository) Create(ctx context.Context, goal *model.Goal) error {
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		r.logger.Errorw("Create database error", "user_id", goal.UserID, "error", err)
		return err
	}
	return nil
}

// GetOwned returns the goal if it exists and belongs to userID.
func (r *repository) GetOwned(ctx context.Context, userID, goalID uuid.UUID) (*model.Goal, error) {
	var goal model.Goal
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrGoalNotFound
		}
		r.logger.Errorw("GetOwned database error", "goal_id", goalID, "error", err)
		return nil, err
	}

	return &goal, nil
}

// UpdateOwned applies the updates in a single conditional statement so the
// ownership check and the write cannot be split by a concurrent change.
func (r *repository) UpdateOwned(
	ctx context.Context,
	userID, goalID uuid.UUID,
	updates map[string]interface{},
) (*model.Goal, error) {
	if len(updates) > 0 {
		result := r.db.WithContext(ctx).
			Model(&model.Goal{}).
			Where("id = ? AND user_id = ?", goalID, userID).
			Updates(updates)
		if result.Error != nil {
			r.logger.Errorw("UpdateOwned database error", "goal_id", goalID, "error", result.Error)
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, model.ErrGoalNotFound
		}
	}

	return r.GetOwned(ctx, userID, goalID)
}

// DeleteOwned deletes the goal and its checks if owned by userID.
// Deleting a goal that does not exist or is not owned is a silent no-op.
func (r *repository) DeleteOwned(ctx context.Context, userID, goalID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", goalID, userID).Delete(&model.Goal{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return tx.Where("goal_id = ?", goalID).Delete(&checkModel.Check{}).Error
	})
	if err != nil {
		r.logger.Errorw("DeleteOwned database error", "goal_id", goalID, "error", err)
	}
	return err
}
