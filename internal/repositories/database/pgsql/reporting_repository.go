package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerly/ledgerly_backend/internal/apperrors"
	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	portsrepo "github.com/ledgerly/ledgerly_backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for aggregate statements.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// TrialBalance aggregates validated journal lines per account, optionally
// bounded by an inclusive entry-date range. Only VALIDATED entries count.
func (r *PgxReportingRepository) TrialBalance(ctx context.Context, dateFrom, dateTo *time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT l.account_code,
		       COALESCE(a.name, l.account_name) AS account_name,
		       COALESCE(a.account_type, 'OTHER') AS account_type,
		       COALESCE(SUM(l.debit), 0) AS total_debits,
		       COALESCE(SUM(l.credit), 0) AS total_credits,
		       COALESCE(SUM(l.debit), 0) - COALESCE(SUM(l.credit), 0) AS balance
		FROM accounting_entry_lines l
		JOIN accounting_entries e ON e.entry_id = l.entry_id
		LEFT JOIN accounting_accounts a ON a.code = l.account_code
		WHERE e.status = 'VALIDATED'`
	args := []interface{}{}
	argNum := 1

	if dateFrom != nil {
		query += ` AND e.entry_date >= $` + strconv.Itoa(argNum)
		args = append(args, *dateFrom)
		argNum++
	}
	if dateTo != nil {
		query += ` AND e.entry_date <= $` + strconv.Itoa(argNum)
		args = append(args, *dateTo)
		argNum++
	}

	query += `
		GROUP BY l.account_code, COALESCE(a.name, l.account_name), COALESCE(a.account_type, 'OTHER')
		ORDER BY l.account_code;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trial balance", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string
		err := rows.Scan(
			&row.AccountCode,
			&row.AccountName,
			&accountType,
			&row.TotalDebits,
			&row.TotalCredits,
			&row.Balance,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trial balance row", err)
		}
		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trial balance rows", err)
	}

	return result, nil
}
