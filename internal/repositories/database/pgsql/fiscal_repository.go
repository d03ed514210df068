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

type PgxFiscalRepository struct {
	BaseRepository
}

// newPgxFiscalRepository creates a new repository for fiscal years and periods.
func newPgxFiscalRepository(pool *pgxpool.Pool) portsrepo.FiscalRepository {
	return &PgxFiscalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FiscalRepository = (*PgxFiscalRepository)(nil)

const selectFiscalYearColumns = `
	fiscal_year_id, name, start_date, end_date, is_current, is_locked,
	created_at, created_by, last_updated_at, last_updated_by
`

// SaveFiscalYear inserts a new fiscal year.
func (r *PgxFiscalRepository) SaveFiscalYear(ctx context.Context, year domain.FiscalYear) error {
	query := `
		INSERT INTO fiscal_years (` + selectFiscalYearColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	m := mapping.ToModelFiscalYear(year)
	_, err := r.Pool.Exec(ctx, query,
		m.FiscalYearID,
		m.Name,
		m.StartDate,
		m.EndDate,
		m.IsCurrent,
		m.IsLocked,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert fiscal year "+m.FiscalYearID, err)
	}
	return nil
}

func scanFiscalYear(row pgx.Row) (*models.FiscalYear, error) {
	var m models.FiscalYear
	err := row.Scan(
		&m.FiscalYearID,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.IsCurrent,
		&m.IsLocked,
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

// FindFiscalYearByID retrieves a fiscal year by its ID.
func (r *PgxFiscalRepository) FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error) {
	query := `SELECT ` + selectFiscalYearColumns + ` FROM fiscal_years WHERE fiscal_year_id = $1;`

	m, err := scanFiscalYear(r.Pool.QueryRow(ctx, query, fiscalYearID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find fiscal year "+fiscalYearID, err)
	}

	year := mapping.ToDomainFiscalYear(*m)
	return &year, nil
}

// FindCurrentFiscalYear retrieves the year flagged as current.
func (r *PgxFiscalRepository) FindCurrentFiscalYear(ctx context.Context) (*domain.FiscalYear, error) {
	query := `SELECT ` + selectFiscalYearColumns + ` FROM fiscal_years WHERE is_current = TRUE;`

	m, err := scanFiscalYear(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find current fiscal year", err)
	}

	year := mapping.ToDomainFiscalYear(*m)
	return &year, nil
}

// ListFiscalYears retrieves all fiscal years, newest first.
func (r *PgxFiscalRepository) ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error) {
	query := `SELECT ` + selectFiscalYearColumns + ` FROM fiscal_years ORDER BY start_date DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query fiscal years", err)
	}
	defer rows.Close()

	years := []models.FiscalYear{}
	for rows.Next() {
		m, err := scanFiscalYear(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan fiscal year row", err)
		}
		years = append(years, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating fiscal year rows", err)
	}

	return mapping.ToDomainFiscalYearSlice(years), nil
}

// SetCurrentFiscalYear clears is_current on every year and sets it on the
// given one, atomically.
func (r *PgxFiscalRepository) SetCurrentFiscalYear(ctx context.Context, fiscalYearID string, updaterUserID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	clearQuery := `
		UPDATE fiscal_years
		SET is_current = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE is_current = TRUE;
	`
	if _, err := tx.Exec(ctx, clearQuery, now, updaterUserID); err != nil {
		return apperrors.NewAppError(500, "failed to clear current fiscal year flag", err)
	}

	setQuery := `
		UPDATE fiscal_years
		SET is_current = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE fiscal_year_id = $1;
	`
	tag, err := tx.Exec(ctx, setQuery, fiscalYearID, now, updaterUserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to set current fiscal year "+fiscalYearID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// ReplacePeriods deletes the year's existing periods and inserts the new set,
// atomically.
func (r *PgxFiscalRepository) ReplacePeriods(ctx context.Context, fiscalYearID string, periods []domain.AccountingPeriod) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM accounting_periods WHERE fiscal_year_id = $1;`, fiscalYearID); err != nil {
		return apperrors.NewAppError(500, "failed to delete periods for fiscal year "+fiscalYearID, err)
	}

	insertQuery := `
		INSERT INTO accounting_periods (
			period_id, fiscal_year_id, name, period_type, start_date, end_date,
			is_closed, sequence,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	batch := &pgx.Batch{}
	for _, p := range periods {
		m := mapping.ToModelAccountingPeriod(p)
		batch.Queue(insertQuery,
			m.PeriodID,
			m.FiscalYearID,
			m.Name,
			m.Type,
			m.StartDate,
			m.EndDate,
			m.IsClosed,
			m.Sequence,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert periods for fiscal year "+fiscalYearID, err)
	}

	return r.Commit(ctx, tx)
}

const selectPeriodColumns = `
	period_id, fiscal_year_id, name, period_type, start_date, end_date,
	is_closed, sequence,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanPeriod(row pgx.Row) (*models.AccountingPeriod, error) {
	var m models.AccountingPeriod
	err := row.Scan(
		&m.PeriodID,
		&m.FiscalYearID,
		&m.Name,
		&m.Type,
		&m.StartDate,
		&m.EndDate,
		&m.IsClosed,
		&m.Sequence,
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

// ListPeriods retrieves the year's periods ordered by sequence.
func (r *PgxFiscalRepository) ListPeriods(ctx context.Context, fiscalYearID string) ([]domain.AccountingPeriod, error) {
	query := `SELECT ` + selectPeriodColumns + ` FROM accounting_periods WHERE fiscal_year_id = $1 ORDER BY sequence;`

	rows, err := r.Pool.Query(ctx, query, fiscalYearID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query periods for fiscal year "+fiscalYearID, err)
	}
	defer rows.Close()

	periods := []models.AccountingPeriod{}
	for rows.Next() {
		m, err := scanPeriod(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan period row", err)
		}
		periods = append(periods, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating period rows", err)
	}

	return mapping.ToDomainAccountingPeriodSlice(periods), nil
}

// FindPeriodByID retrieves one period.
func (r *PgxFiscalRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	query := `SELECT ` + selectPeriodColumns + ` FROM accounting_periods WHERE period_id = $1;`

	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find period "+periodID, err)
	}

	period := mapping.ToDomainAccountingPeriod(*m)
	return &period, nil
}

// SetPeriodClosed toggles the closed flag of one period.
func (r *PgxFiscalRepository) SetPeriodClosed(ctx context.Context, periodID string, closed bool, updaterUserID string, now time.Time) error {
	query := `
		UPDATE accounting_periods
		SET is_closed = $2, last_updated_at = $3, last_updated_by = $4
		WHERE period_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, periodID, closed, now, updaterUserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to change closed state of period "+periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CloseFiscalYear closes every period of the year and locks it, atomically.
func (r *PgxFiscalRepository) CloseFiscalYear(ctx context.Context, fiscalYearID string, updaterUserID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	closePeriodsQuery := `
		UPDATE accounting_periods
		SET is_closed = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE fiscal_year_id = $1 AND is_closed = FALSE;
	`
	if _, err := tx.Exec(ctx, closePeriodsQuery, fiscalYearID, now, updaterUserID); err != nil {
		return apperrors.NewAppError(500, "failed to close periods of fiscal year "+fiscalYearID, err)
	}

	lockYearQuery := `
		UPDATE fiscal_years
		SET is_locked = TRUE, is_current = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE fiscal_year_id = $1;
	`
	tag, err := tx.Exec(ctx, lockYearQuery, fiscalYearID, now, updaterUserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock fiscal year "+fiscalYearID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
