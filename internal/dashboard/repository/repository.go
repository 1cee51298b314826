// Package repository provides data access layer for dashboard module.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dashboardModel "github.com/hong13131/godlife/internal/dashboard/model"
	goalModel "github.com/hong13131/godlife/internal/goal/model"
	teamModel "github.com/hong13131/godlife/internal/team/model"
	userModel "github.com/hong13131/godlife/internal/user/model"
)

// Repository defines the interface for dashboard data access operations.
type Repository interface {
	// GetTeam finds a team by id.
	GetTeam(ctx context.Context, teamID uuid.UUID) (*teamModel.Team, error)

	// GetMembers returns all users on a team.
	GetMembers(ctx context.Context, teamID uuid.UUID) ([]userModel.User, error)

	// GetGoalsWithChecks returns all goals (any month) for the given users,
	// checks included.
	GetGoalsWithChecks(ctx context.Context, userIDs []uuid.UUID) ([]goalModel.Goal, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new dashboard repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetTeam finds a team by id.
func (r *repository) GetTeam(ctx context.Context, teamID uuid.UUID) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", teamID).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dashboardModel.ErrTeamNotFound
		}
		r.logger.Errorw("GetTeam database error", "team_id", teamID, "error", err)
		return nil, err
	}

	return &team, nil
}

// GetMembers returns all users on a team.
func (r *repository) GetMembers(ctx context.Context, teamID uuid.UUID) ([]userModel.User, error) {
	var members []userModel.User
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		r.logger.Errorw("GetMembers database error", "team_id", teamID, "error", err)
		return nil, err
	}

	if members == nil {
		members = []userModel.User{}
	}
	return members, nil
}

// GetGoalsWithChecks returns all goals for the given users with their checks.
func (r *repository) GetGoalsWithChecks(ctx context.Context, userIDs []uuid.UUID) ([]goalModel.Goal, error) {
	if len(userIDs) == 0 {
		return []goalModel.Goal{}, nil
	}

	var goals []goalModel.Goal
	err := r.db.WithContext(ctx).
		Preload("Checks").
		Where("user_id IN ?", userIDs).
		Find(&goals).Error
	if err != nil {
		r.logger.Errorw("GetGoalsWithChecks database error", "error", err)
		return nil, err
	}

	if goals == nil {
		goals = []goalModel.Goal{}
	}
	return goals, nil
}
