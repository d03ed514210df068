package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerly/ledgerly_backend/internal/apperrors"
	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	portsrepo "github.com/ledgerly/ledgerly_backend/internal/core/ports/repositories"
	"github.com/ledgerly/ledgerly_backend/internal/models"
	"github.com/ledgerly/ledgerly_backend/internal/utils/mapping"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and lines.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

const insertEntryQuery = `
	INSERT INTO accounting_entries (
		entry_id, reference, entry_date, description, currency_code, status,
		validated_by, validated_at,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

const insertLineQuery = `
	INSERT INTO accounting_entry_lines (
		line_id, entry_id, account_code, account_name, debit, credit, description
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

// SaveEntry inserts the entry header and all its lines in one transaction.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournalEntry(entry)
	_, err = tx.Exec(ctx, insertEntryQuery,
		m.EntryID,
		m.Reference,
		m.EntryDate,
		m.Description,
		m.CurrencyCode,
		m.Status,
		m.ValidatedBy,
		m.ValidatedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
	}

	if err := insertLines(ctx, tx, lines); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func insertLines(ctx context.Context, tx pgx.Tx, lines []domain.JournalLine) error {
	batch := &pgx.Batch{}
	for _, line := range lines {
		ml := mapping.ToModelJournalLine(line)
		batch.Queue(insertLineQuery,
			ml.LineID,
			ml.EntryID,
			ml.AccountCode,
			ml.AccountName,
			ml.Debit,
			ml.Credit,
			ml.Description,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry lines", err)
	}
	return nil
}

const selectEntryColumns = `
	entry_id, reference, entry_date, description, currency_code, status,
	validated_by, validated_at,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanEntry(row pgx.Row) (*models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.Reference,
		&m.EntryDate,
		&m.Description,
		&m.CurrencyCode,
		&m.Status,
		&m.ValidatedBy,
		&m.ValidatedAt,
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

// FindEntryByID retrieves an entry header by its ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM accounting_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry "+entryID, err)
	}

	entry := mapping.ToDomainJournalEntry(*m)
	return &entry, nil
}

// FindLinesByEntryID retrieves all lines of one entry.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, account_code, account_name, debit, credit, description
		FROM accounting_entry_lines
		WHERE entry_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines := []models.JournalLine{}
	for rows.Next() {
		var l models.JournalLine
		err := rows.Scan(
			&l.LineID,
			&l.EntryID,
			&l.AccountCode,
			&l.AccountName,
			&l.Debit,
			&l.Credit,
			&l.Description,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for entry "+entryID, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for entry "+entryID, err)
	}

	return mapping.ToDomainJournalLineSlice(lines), nil
}

// UpdateEntry rewrites the header and replaces the lines in one transaction.
func (r *PgxJournalRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournalEntry(entry)
	updateQuery := `
		UPDATE accounting_entries
		SET reference = $2, entry_date = $3, description = $4, currency_code = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE entry_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		m.EntryID,
		m.Reference,
		m.EntryDate,
		m.Description,
		m.CurrencyCode,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update journal entry "+m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM accounting_entry_lines WHERE entry_id = $1;`, m.EntryID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines for entry "+m.EntryID, err)
	}
	if err := insertLines(ctx, tx, lines); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateEntryStatus records a status transition with its audit stamps.
func (r *PgxJournalRepository) UpdateEntryStatus(ctx context.Context, entryID string, status domain.EntryStatus, validatedBy *string, validatedAt *time.Time, updaterUserID string, now time.Time) error {
	query := `
		UPDATE accounting_entries
		SET status = $2, validated_by = $3, validated_at = $4,
		    last_updated_at = $5, last_updated_by = $6
		WHERE entry_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, entryID, string(status), validatedBy, validatedAt, now, updaterUserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of journal entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes the entry and its lines in one transaction.
func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM accounting_entry_lines WHERE entry_id = $1;`, entryID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines for entry "+entryID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM accounting_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete journal entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// ListEntries retrieves entry headers matching the filter, with their lines
// attached in a second query.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, filter portsrepo.JournalEntryFilter) ([]domain.JournalEntry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM accounting_entries e WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if filter.DateFrom != nil {
		query += ` AND e.entry_date >= $` + strconv.Itoa(argNum)
		args = append(args, *filter.DateFrom)
		argNum++
	}
	if filter.DateTo != nil {
		query += ` AND e.entry_date <= $` + strconv.Itoa(argNum)
		args = append(args, *filter.DateTo)
		argNum++
	}
	if filter.Status != "" {
		query += ` AND e.status = $` + strconv.Itoa(argNum)
		args = append(args, string(filter.Status))
		argNum++
	}
	if filter.Search != "" {
		query += ` AND (e.reference ILIKE $` + strconv.Itoa(argNum) + ` OR e.description ILIKE $` + strconv.Itoa(argNum) + `)`
		args = append(args, "%"+filter.Search+"%")
		argNum++
	}

	orderCol := "e.entry_date"
	switch filter.SortBy {
	case "reference":
		orderCol = "e.reference"
	case "amount":
		orderCol = `(SELECT COALESCE(SUM(l.debit), 0) FROM accounting_entry_lines l WHERE l.entry_id = e.entry_id)`
	}
	direction := " ASC"
	if filter.SortDesc {
		direction = " DESC"
	}
	query += ` ORDER BY ` + orderCol + direction + `, e.created_at` + direction + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	entryModels := []models.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entryModels = append(entryModels, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	entries := make([]domain.JournalEntry, len(entryModels))
	index := make(map[string]int, len(entryModels))
	entryIDs := make([]string, len(entryModels))
	for i, m := range entryModels {
		entries[i] = mapping.ToDomainJournalEntry(m)
		index[m.EntryID] = i
		entryIDs[i] = m.EntryID
	}
	if len(entryIDs) == 0 {
		return entries, nil
	}

	lineQuery := `
		SELECT line_id, entry_id, account_code, account_name, debit, credit, description
		FROM accounting_entry_lines
		WHERE entry_id = ANY($1)
		ORDER BY line_id;
	`
	lineRows, err := r.Pool.Query(ctx, lineQuery, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for journal entries", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var l models.JournalLine
		err := lineRows.Scan(
			&l.LineID,
			&l.EntryID,
			&l.AccountCode,
			&l.AccountName,
			&l.Debit,
			&l.Credit,
			&l.Description,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row", err)
		}
		if i, ok := index[l.EntryID]; ok {
			entries[i].Lines = append(entries[i].Lines, mapping.ToDomainJournalLine(l))
		}
	}
	if err := lineRows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows", err)
	}

	return entries, nil
}

// CountLinesByAccountCode backs the account deletion guard.
func (r *PgxJournalRepository) CountLinesByAccountCode(ctx context.Context, accountCode string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM accounting_entry_lines WHERE account_code = $1;`, accountCode).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count lines for account "+accountCode, err)
	}
	return count, nil
}
