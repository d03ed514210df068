package services

import (
	"context"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	"github.com/ledgerly/ledgerly_backend/internal/dto"
)

// ReportingSvcFacade exposes read-only statements over validated entries.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context, params dto.TrialBalanceParams) ([]domain.TrialBalanceRow, error)
}
