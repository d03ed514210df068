package repositories

import (
	"context"
	"time"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
)

// AccountFilter narrows a ListAccounts query.
type AccountFilter struct {
	ActiveOnly  bool
	ClassPrefix string // e.g. "5" for class 5 accounts
}

// AccountRepository persists the chart of accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context, filter AccountFilter) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	SetAccountActive(ctx context.Context, accountID string, active bool, updaterUserID string, now time.Time) error
	DeleteAccount(ctx context.Context, accountID string) error
}
