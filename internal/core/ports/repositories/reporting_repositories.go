package repositories

import (
	"context"
	"time"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
)

// ReportingRepository runs read-only aggregate queries over validated entries.
type ReportingRepository interface {
	// TrialBalance aggregates validated journal lines per account, optionally
	// bounded by an inclusive entry-date range.
	TrialBalance(ctx context.Context, dateFrom, dateTo *time.Time) ([]domain.TrialBalanceRow, error)
}
