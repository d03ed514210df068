package repositories

import (
	"context"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
)

// ExchangeRateRepository persists currency exchange rates.
type ExchangeRateRepository interface {
	// SaveRatePair upserts a rate and its reciprocal in a single transaction.
	SaveRatePair(ctx context.Context, rate domain.ExchangeRate, inverse domain.ExchangeRate) error
	// FindRate returns the direct rate for the pair, or apperrors.ErrNotFound.
	FindRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error)
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
}
