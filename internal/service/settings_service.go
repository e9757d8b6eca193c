package service

import (
	"context"

	"github.com/google/uuid"

	"arbos/internal/domain"
	"arbos/internal/port"
)

// UpsertSettingInput is the DTO for writing a setting.
type UpsertSettingInput struct {
	Value string `json:"value" binding:"required"`
}

// SettingsService defines the integration settings store contract.
// Reads are public; writes require an authenticated user.
type SettingsService interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	List(ctx context.Context) ([]domain.Setting, error)
	Upsert(ctx context.Context, userID uuid.UUID, key string, input UpsertSettingInput) (*domain.Setting, error)
}

type settingsService struct {
	settingRepo port.SettingRepository
}

// NewSettingsService creates a new SettingsService implementation.
func NewSettingsService(settingRepo port.SettingRepository) SettingsService {
	return &settingsService{settingRepo: settingRepo}
}

func (s *settingsService) Get(ctx context.Context, key string) (*domain.Setting, error) {
	return s.settingRepo.Get(ctx, key)
}

func (s *settingsService) List(ctx context.Context) ([]domain.Setting, error) {
	return s.settingRepo.List(ctx)
}

func (s *settingsService) Upsert(ctx context.Context, userID uuid.UUID, key string, input UpsertSettingInput) (*domain.Setting, error) {
	setting := &domain.Setting{
		Key:       key,
		Value:     input.Value,
		UpdatedBy: &userID,
	}
	if err := s.settingRepo.Upsert(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}
