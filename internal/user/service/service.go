// Package service provides business logic layer for user module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/hong13131/godlife/internal/auth"
	"github.com/hong13131/godlife/internal/user/model"
	"github.com/hong13131/godlife/internal/user/repository"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// Resolve maps a verified external identity to the internal user,
	// provisioning the record on first contact.
	Resolve(ctx context.Context, identity *auth.Identity) (*model.User, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Resolve maps a verified external identity to the internal user record.
func (s *service) Resolve(ctx context.Context, identity *auth.Identity) (*model.User, error) {
	if identity == nil || identity.Subject == "" {
		return nil, model.ErrInvalidIdentity
	}

	var name *string
	if identity.Name != "" {
		name = &identity.Name
	}

	user, err := s.repo.FindOrCreateByAuthID(ctx, identity.Subject, identity.Email, name)
	if err != nil {
		s.logger.Errorw("Resolve failed", "auth_user_id", identity.Subject, "error", err)
		return nil, err
	}

	return user, nil
}
