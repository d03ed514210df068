package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerly/ledgerly_backend/internal/apperrors"
	portsrepo "github.com/ledgerly/ledgerly_backend/internal/core/ports/repositories"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for key/value app settings.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

// GetSetting retrieves the value stored under the given key.
func (r *PgxSettingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	query := `SELECT setting_value FROM app_settings WHERE setting_key = $1;`

	var value string
	err := r.Pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to get setting "+key, err)
	}
	return value, nil
}

// SetSetting upserts the value stored under the given key.
func (r *PgxSettingsRepository) SetSetting(ctx context.Context, key, value, updaterUserID string) error {
	query := `
		INSERT INTO app_settings (setting_key, setting_value, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (setting_key)
		DO UPDATE SET setting_value = EXCLUDED.setting_value,
		              last_updated_at = EXCLUDED.last_updated_at,
		              last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query, key, value, time.Now().UTC(), updaterUserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to set setting "+key, err)
	}
	return nil
}
