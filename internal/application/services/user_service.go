package services

import (
	"context"

	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/infrastructure/logger"
	"github.com/shopease/core/internal/ports"
)

// UserService handles admin-managed user records
type UserService struct {
	store  ports.UserStore
	logger *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(store ports.UserStore, logger *logger.Logger) *UserService {
	return &UserService{store: store, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]entities.User, error) {
	return s.store.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*entities.User, error) {
	return s.store.GetByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id string, update ports.UserUpdate) (*entities.User, error) {
	user, err := s.store.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.logger.Info("User updated", "user_id", id)
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("User deleted", "user_id", id)
	return nil
}
