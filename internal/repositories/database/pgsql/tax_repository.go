package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerly/ledgerly_backend/internal/apperrors"
	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	portsrepo "github.com/ledgerly/ledgerly_backend/internal/core/ports/repositories"
	"github.com/ledgerly/ledgerly_backend/internal/models"
	"github.com/ledgerly/ledgerly_backend/internal/utils/mapping"
)

type PgxTaxRateRepository struct {
	BaseRepository
}

// newPgxTaxRateRepository creates a new repository for tax rates.
func newPgxTaxRateRepository(pool *pgxpool.Pool) portsrepo.TaxRateRepository {
	return &PgxTaxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TaxRateRepository = (*PgxTaxRateRepository)(nil)

const selectTaxRateColumns = `
	tax_rate_id, name, code, rate, is_default, is_active, account_code, description,
	created_at, created_by, last_updated_at, last_updated_by
`

// SaveTaxRate inserts a new tax rate.
func (r *PgxTaxRateRepository) SaveTaxRate(ctx context.Context, rate domain.TaxRate) error {
	query := `
		INSERT INTO tax_rates (` + selectTaxRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	m := mapping.ToModelTaxRate(rate)
	_, err := r.Pool.Exec(ctx, query,
		m.TaxRateID,
		m.Name,
		m.Code,
		m.Rate,
		m.IsDefault,
		m.IsActive,
		m.AccountCode,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert tax rate "+m.Code, err)
	}
	return nil
}

func scanTaxRate(row pgx.Row) (*models.TaxRate, error) {
	var m models.TaxRate
	err := row.Scan(
		&m.TaxRateID,
		&m.Name,
		&m.Code,
		&m.Rate,
		&m.IsDefault,
		&m.IsActive,
		&m.AccountCode,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindTaxRateByID retrieves one tax rate.
func (r *PgxTaxRateRepository) FindTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error) {
	query := `SELECT ` + selectTaxRateColumns + ` FROM tax_rates WHERE tax_rate_id = $1;`

	m, err := scanTaxRate(r.Pool.QueryRow(ctx, query, taxRateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find tax rate "+taxRateID, err)
	}

	rate := mapping.ToDomainTaxRate(*m)
	return &rate, nil
}

// ListTaxRates retrieves tax rates, optionally only active ones.
func (r *PgxTaxRateRepository) ListTaxRates(ctx context.Context, activeOnly bool) ([]domain.TaxRate, error) {
	query := `SELECT ` + selectTaxRateColumns + ` FROM tax_rates`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tax rates", err)
	}
	defer rows.Close()

	rates := []models.TaxRate{}
	for rows.Next() {
		m, err := scanTaxRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax rate row", err)
		}
		rates = append(rates, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating tax rate rows", err)
	}

	return mapping.ToDomainTaxRateSlice(rates), nil
}

// UpdateTaxRate rewrites the mutable columns of a tax rate.
func (r *PgxTaxRateRepository) UpdateTaxRate(ctx context.Context, rate domain.TaxRate) error {
	query := `
		UPDATE tax_rates
		SET name = $2, rate = $3, account_code = $4, description = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE tax_rate_id = $1;
	`
	m := mapping.ToModelTaxRate(rate)
	tag, err := r.Pool.Exec(ctx, query,
		m.TaxRateID,
		m.Name,
		m.Rate,
		m.AccountCode,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update tax rate "+m.TaxRateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetDefaultTaxRate clears is_default everywhere and sets it on the given
// rate, atomically.
func (r *PgxTaxRateRepository) SetDefaultTaxRate(ctx context.Context, taxRateID string, updaterUserID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	clearQuery := `
		UPDATE tax_rates
		SET is_default = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE is_default = TRUE;
	`
	if _, err := tx.Exec(ctx, clearQuery, now, updaterUserID); err != nil {
		return apperrors.NewAppError(500, "failed to clear default tax rate flag", err)
	}

	setQuery := `
		UPDATE tax_rates
		SET is_default = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE tax_rate_id = $1;
	`
	tag, err := tx.Exec(ctx, setQuery, taxRateID, now, updaterUserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to set default tax rate "+taxRateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// SetTaxRateActive toggles the active flag. Deactivating also drops the
// default flag so the default never points at an inactive rate.
func (r *PgxTaxRateRepository) SetTaxRateActive(ctx context.Context, taxRateID string, active bool, updaterUserID string, now time.Time) error {
	query := `
		UPDATE tax_rates
		SET is_active = $2,
		    is_default = CASE WHEN $2 THEN is_default ELSE FALSE END,
		    last_updated_at = $3, last_updated_by = $4
		WHERE tax_rate_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, taxRateID, active, now, updaterUserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to change active state of tax rate "+taxRateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
