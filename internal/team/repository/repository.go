// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hong13131/godlife/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create creates a new team with the given name and invite code.
	Create(ctx context.Context, name, inviteCode string) (*model.Team, error)

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Team, error)

	// GetByInviteCode finds a team by invite code.
	GetByInviteCode(ctx context.Context, inviteCode string) (*model.Team, error)

	// UpdateInviteCode replaces the team's invite code.
	UpdateInviteCode(ctx context.Context, teamID uuid.UUID, inviteCode string) error

	// Rename updates the team's name.
	Rename(ctx context.Context, teamID uuid.UUID, name string) (*model.Team, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// isDuplicateError checks if err is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// Create creates a new team.
func (r *repository) Create(ctx context.Context, name, inviteCode string) (*model.Team, error) {
	team := &model.Team{
		Name:       name,
		InviteCode: inviteCode,
	}

	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		if isDuplicateError(err) {
			return nil, model.ErrInviteCodeTaken
		}
		r.logger.Errorw("Create database error", "name", name, "error", err)
		return nil, err
	}

	return team, nil
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTeamNotFound
		}
		r.logger.Errorw("GetByID database error", "team_id", id, "error", err)
		return nil, err
	}

	return &team, nil
}

// GetByInviteCode finds a team by invite code.
func (r *repository) GetByInviteCode(ctx context.Context, inviteCode string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Where("invite_code = ?", inviteCode).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTeamNotFound
		}
		r.logger.Errorw("GetByInviteCode database error", "error", err)
		return nil, err
	}

	return &team, nil
}

// UpdateInviteCode replaces the team's invite code.
func (r *repository) UpdateInviteCode(ctx context.Context, teamID uuid.UUID, inviteCode string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Where("id = ?", teamID).
		Update("invite_code", inviteCode)
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return model.ErrInviteCodeTaken
		}
		r.logger.Errorw("UpdateInviteCode database error", "team_id", teamID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrTeamNotFound
	}
	return nil
}

// Rename updates the team's name.
func (r *repository) Rename(ctx context.Context, teamID uuid.UUID, name string) (*model.Team, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Where("id = ?", teamID).
		Update("name", name)
	if result.Error != nil {
		r.logger.Errorw("Rename database error", "team_id", teamID, "error", result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, model.ErrTeamNotFound
	}

	var team model.Team
	if err := r.db.WithContext(ctx).Where("id = ?", teamID).First(&team).Error; err != nil {
		r.logger.Errorw("Rename fetch error", "team_id", teamID, "error", err)
		return nil, err
	}
	return &team, nil
}
