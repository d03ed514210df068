package repositories

import (
	"context"
	"time"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
)

// TaxRateRepository persists configurable tax rates.
type TaxRateRepository interface {
	SaveTaxRate(ctx context.Context, rate domain.TaxRate) error
	FindTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error)
	ListTaxRates(ctx context.Context, activeOnly bool) ([]domain.TaxRate, error)
	UpdateTaxRate(ctx context.Context, rate domain.TaxRate) error
	// SetDefaultTaxRate clears is_default everywhere and sets it on the given
	// rate, atomically.
	SetDefaultTaxRate(ctx context.Context, taxRateID string, updaterUserID string, now time.Time) error
	SetTaxRateActive(ctx context.Context, taxRateID string, active bool, updaterUserID string, now time.Time) error
}
