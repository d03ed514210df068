package services

import (
	"context"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	"github.com/ledgerly/ledgerly_backend/internal/dto"
)

// AccountSvcFacade exposes chart-of-accounts management.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, accountID string, updaterUserID string) error
	// DeleteAccount fails with ErrAccountInUse when journal lines reference
	// the account's code; callers should deactivate instead.
	DeleteAccount(ctx context.Context, accountID string) error
}
