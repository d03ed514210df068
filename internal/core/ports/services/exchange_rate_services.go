package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	"github.com/ledgerly/ledgerly_backend/internal/dto"
)

// ExchangeRateSvcFacade exposes rate storage, lookup and conversion.
type ExchangeRateSvcFacade interface {
	GetAllExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
	// GetExchangeRate returns 1 for identical codes and ErrNoExchangeRate
	// when no direct rate is stored. No multi-hop derivation is attempted.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error)
	// UpdateExchangeRate upserts the pair and its reciprocal atomically and
	// invalidates the cache.
	UpdateExchangeRate(ctx context.Context, req dto.UpdateExchangeRateRequest, updaterUserID string) (*domain.ExchangeRate, error)
	// ConvertAmount distinguishes "no rate" (ErrNoExchangeRate) from zero.
	ConvertAmount(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error)
}
