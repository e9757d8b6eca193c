package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"arbos/internal/domain"
	"arbos/internal/port"
)

type settingRepo struct {
	db *sqlx.DB
}

// NewSettingRepo creates a new PostgreSQL-backed SettingRepository.
func NewSettingRepo(db *sqlx.DB) port.SettingRepository {
	return &settingRepo{db: db}
}

func (r *settingRepo) Get(ctx context.Context, key string) (*domain.Setting, error) {
	var setting domain.Setting
	err := r.db.GetContext(ctx, &setting, "SELECT * FROM settings WHERE key = $1", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("settingRepo.Get: %w", err)
	}
	return &setting, nil
}

func (r *settingRepo) List(ctx context.Context) ([]domain.Setting, error) {
	var settings []domain.Setting
	err := r.db.SelectContext(ctx, &settings, "SELECT * FROM settings ORDER BY key ASC")
	if err != nil {
		return nil, fmt.Errorf("settingRepo.List: %w", err)
	}
	return settings, nil
}

func (r *settingRepo) Upsert(ctx context.Context, setting *domain.Setting) error {
	setting.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_by, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_by = $3, updated_at = $4`,
		setting.Key, setting.Value, setting.UpdatedBy, setting.UpdatedAt)
	if err != nil {
		return fmt.Errorf("settingRepo.Upsert: %w", err)
	}
	return nil
}
