// Package service provides business logic layer for team module.
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	teamModel "github.com/hong13131/godlife/internal/team/model"
	"github.com/hong13131/godlife/internal/team/repository"
	userModel "github.com/hong13131/godlife/internal/user/model"
	userRepository "github.com/hong13131/godlife/internal/user/repository"
)

// inviteCodeAttempts bounds regeneration when a generated code collides.
const inviteCodeAttempts = 3

// Service defines the interface for team business logic operations.
type Service interface {
	// Create creates a team and makes the caller its ADMIN.
	Create(ctx context.Context, caller *userModel.User, name string) (*teamModel.TeamResponse, error)

	// RotateInvite replaces the invite code of the caller's team. ADMIN only.
	RotateInvite(ctx context.Context, caller *userModel.User) (*teamModel.InviteResponse, error)

	// Join moves the caller onto the team matching inviteCode, demoting to MEMBER.
	Join(ctx context.Context, caller *userModel.User, inviteCode string) (*teamModel.JoinResponse, error)

	// Leave removes the caller from their team.
	Leave(ctx context.Context, caller *userModel.User) error

	// Rename renames the caller's team. ADMIN only.
	Rename(ctx context.Context, caller *userModel.User, name string) (*teamModel.RenamedTeamResponse, error)
}

type service struct {
	repo     repository.Repository
	userRepo userRepository.Repository
	db       *gorm.DB
	logger   *zap.SugaredLogger
}

// New creates a new team service instance.
func New(
	repo repository.Repository,
	userRepo userRepository.Repository,
	db *gorm.DB,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
		db:       db,
		logger:   logger,
	}
}

// generateInviteCode returns an opaque 8-character token.
func generateInviteCode() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Create creates a team and makes the caller its ADMIN.
func (s *service) Create(
	ctx context.Context,
	caller *userModel.User,
	name string,
) (*teamModel.TeamResponse, error) {
	if name == "" {
		return nil, teamModel.ErrInvalidTeamName
	}
	if caller.TeamID != nil {
		return nil, teamModel.ErrAlreadyInTeam
	}

	var created *teamModel.Team
	var err error
	for attempt := 0; attempt < inviteCodeAttempts; attempt++ {
		var code string
		code, err = generateInviteCode()
		if err != nil {
			return nil, err
		}

		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			txRepo := repository.New(tx, s.logger)
			txUserRepo := userRepository.New(tx, s.logger)

			team, txErr := txRepo.Create(ctx, name, code)
			if txErr != nil {
				return txErr
			}
			if txErr := txUserRepo.SetTeam(ctx, caller.ID, team.ID, userModel.RoleAdmin); txErr != nil {
				return txErr
			}

			created = team
			return nil
		})
		if err == nil {
			break
		}
		if !errors.Is(err, teamModel.ErrInviteCodeTaken) {
			return nil, err
		}
	}
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_id", created.ID, "admin_id", caller.ID)
	return &teamModel.TeamResponse{
		ID:         created.ID,
		Name:       created.Name,
		InviteCode: created.InviteCode,
	}, nil
}

// RotateInvite replaces the invite code of the caller's team.
func (s *service) RotateInvite(ctx context.Context, caller *userModel.User) (*teamModel.InviteResponse, error) {
	if !caller.Role.CanManageTeam() {
		return nil, teamModel.ErrNotAdmin
	}
	if caller.TeamID == nil {
		return nil, teamModel.ErrNoTeam
	}

	var err error
	for attempt := 0; attempt < inviteCodeAttempts; attempt++ {
		var code string
		code, err = generateInviteCode()
		if err != nil {
			return nil, err
		}

		err = s.repo.UpdateInviteCode(ctx, *caller.TeamID, code)
		if err == nil {
			s.logger.Infow("invite code rotated", "team_id", *caller.TeamID)
			return &teamModel.InviteResponse{ID: *caller.TeamID, InviteCode: code}, nil
		}
		if !errors.Is(err, teamModel.ErrInviteCodeTaken) {
			return nil, err
		}
	}
	return nil, err
}

// Join moves the caller onto the team matching inviteCode.
// An existing membership is replaced and the caller is demoted to MEMBER.
func (s *service) Join(
	ctx context.Context,
	caller *userModel.User,
	inviteCode string,
) (*teamModel.JoinResponse, error) {
	team, err := s.repo.GetByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetTeam(ctx, caller.ID, team.ID, userModel.RoleMember); err != nil {
		return nil, err
	}

	s.logger.Infow("user joined team", "team_id", team.ID, "user_id", caller.ID)
	return &teamModel.JoinResponse{OK: true, TeamID: team.ID}, nil
}

// Leave removes the caller from their team. The team itself is never deleted,
// even when the caller was its last member or only ADMIN.
func (s *service) Leave(ctx context.Context, caller *userModel.User) error {
	if caller.TeamID == nil {
		return teamModel.ErrNoTeam
	}

	if err := s.userRepo.ClearTeam(ctx, caller.ID); err != nil {
		return err
	}

	s.logger.Infow("user left team", "team_id", *caller.TeamID, "user_id", caller.ID)
	return nil
}

// Rename renames the caller's team.
func (s *service) Rename(
	ctx context.Context,
	caller *userModel.User,
	name string,
) (*teamModel.RenamedTeamResponse, error) {
	if name == "" {
		return nil, teamModel.ErrInvalidTeamName
	}
	if caller.TeamID == nil {
		return nil, teamModel.ErrNoTeam
	}
	if !caller.Role.CanManageTeam() {
		return nil, teamModel.ErrNotAdmin
	}

	team, err := s.repo.Rename(ctx, *caller.TeamID, name)
	if err != nil {
		return nil, err
	}

	return &teamModel.RenamedTeamResponse{ID: team.ID, Name: team.Name}, nil
}
