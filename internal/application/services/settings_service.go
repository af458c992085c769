package services

import (
	"context"

	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/infrastructure/logger"
	"github.com/shopease/core/internal/ports"
)

// SettingsService handles the store configuration record
type SettingsService struct {
	store  ports.SettingsStore
	logger *logger.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(store ports.SettingsStore, logger *logger.Logger) *SettingsService {
	return &SettingsService{store: store, logger: logger}
}

func (s *SettingsService) Get(ctx context.Context) (entities.Settings, error) {
	return s.store.Get(ctx)
}

// Update shallow-merges the provided fields onto the current record and
// returns the result. Unknown fields in the request are ignored.
func (s *SettingsService) Update(ctx context.Context, update ports.SettingsUpdate) (entities.Settings, error) {
	settings, err := s.store.Update(ctx, update)
	if err != nil {
		return entities.Settings{}, err
	}
	s.logger.Info("Settings updated")
	return settings, nil
}
