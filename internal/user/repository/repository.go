// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hong13131/godlife/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// FindOrCreateByAuthID finds the user linked to an external identity,
	// creating one if none exists. Safe under concurrent first requests.
	FindOrCreateByAuthID(ctx context.Context, authUserID, email string, name *string) (*model.User, error)

	// GetByID finds a user by internal id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// SetTeam assigns the user to a team with the given role.
	SetTeam(ctx context.Context, userID uuid.UUID, teamID uuid.UUID, role model.Role) error

	// ClearTeam removes the user's team membership and resets the role to MEMBER.
	ClearTeam(ctx context.Context, userID uuid.UUID) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// FindOrCreateByAuthID finds or lazily provisions the user for an external identity.
// The insert is guarded by the unique index on auth_user_id rather than a
// check-then-insert, so concurrent first requests cannot create duplicates.
func (r *repository) FindOrCreateByAuthID(
	ctx context.Context,
	authUserID, email string,
	name *string,
) (*model.User, error) {
	user := &model.User{
		AuthUserID: authUserID,
		Email:      email,
		Name:       name,
		Role:       model.RoleMember,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "auth_user_id"}},
			DoNothing: true,
		}).
		Create(user).Error
	if err != nil {
		r.logger.Errorw("FindOrCreateByAuthID insert error", "auth_user_id", authUserID, "error", err)
		return nil, err
	}

	// Re-read: on conflict the insert was a no-op and user holds a discarded id.
	var out model.User
	err = r.db.WithContext(ctx).
		Where("auth_user_id = ?", authUserID).
		First(&out).Error
	if err != nil {
		r.logger.Errorw("FindOrCreateByAuthID fetch error", "auth_user_id", authUserID, "error", err)
		return nil, err
	}

	return &out, nil
}

// GetByID finds a user by internal id.
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetByID database error", "user_id", id, "error", err)
		return nil, err
	}

	return &user, nil
}

// SetTeam assigns the user to a team with the given role.
func (r *repository) SetTeam(ctx context.Context, userID uuid.UUID, teamID uuid.UUID, role model.Role) error {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"team_id": teamID,
			"role":    role,
		})
	if result.Error != nil {
		r.logger.Errorw("SetTeam database error", "user_id", userID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// ClearTeam removes the user's team membership and resets the role to MEMBER.
func (r *repository) ClearTeam(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"team_id": nil,
			"role":    model.RoleMember,
		})
	if result.Error != nil {
		r.logger.Errorw("ClearTeam database error", "user_id", userID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
