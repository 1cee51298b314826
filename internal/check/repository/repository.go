// Package repository provides data access layer for check module.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hong13131/godlife/internal/check/model"
	"github.com/hong13131/godlife/pkg/civil"
)

// Repository defines the interface for check data access operations.
type Repository interface {
	// GoalOwnedBy reports whether the goal exists and belongs to userID.
	GoalOwnedBy(ctx context.Context, goalID, userID uuid.UUID) (bool, error)

	// Upsert writes the check for (goalID, date), overwriting an existing
	// value, and returns the resulting row.
	Upsert(ctx context.Context, goalID uuid.UUID, date civil.Date, value float64) (*model.Check, error)

	// Delete removes the check for (goalID, date); no error if none exists.
	Delete(ctx context.Context, goalID uuid.UUID, date civil.Date) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new check repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GoalOwnedBy reports whether the goal exists and belongs to userID.
func (r *repository) GoalOwnedBy(ctx context.Context, goalID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("goals").
		Where("id = ? AND user_id = ?", goalID, userID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("GoalOwnedBy database error", "goal_id", goalID, "error", err)
		return false, err
	}
	return count > 0, nil
}

// Upsert writes the check for (goalID, date) through the store's native
// insert-or-update so concurrent writes to the same day cannot produce
// duplicate rows.
func (r *repository) Upsert(
	ctx context.Context,
	goalID uuid.UUID,
	date civil.Date,
	value float64,
) (*model.Check, error) {
	check := &model.Check{
		GoalID: goalID,
		Date:   date,
		Value:  value,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "goal_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"value":      value,
				"updated_at": time.Now(),
			}),
		}).
		Create(check).Error
	if err != nil {
		r.logger.Errorw("Upsert database error", "goal_id", goalID, "error", err)
		return nil, err
	}

	// Re-read: on conflict the insert path did not run and check holds a
	// discarded id.
	var out model.Check
	err = r.db.WithContext(ctx).
		Where("goal_id = ? AND date = ?", goalID, date).
		First(&out).Error
	if err != nil {
		r.logger.Errorw("Upsert fetch error", "goal_id", goalID, "error", err)
		return nil, err
	}

	return &out, nil
}

// Delete removes the check for (goalID, date).
func (r *repository) Delete(ctx context.Context, goalID uuid.UUID, date civil.Date) error {
	err := r.db.WithContext(ctx).
		Where("goal_id = ? AND date = ?", goalID, date).
		Delete(&model.Check{}).Error
	if err != nil {
		r.logger.Errorw("Delete database error", "goal_id", goalID, "error", err)
	}
	return err
}
