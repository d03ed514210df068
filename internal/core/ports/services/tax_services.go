package services

import (
	"context"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	"github.com/ledgerly/ledgerly_backend/internal/dto"
)

// TaxSvcFacade exposes tax-rate configuration.
type TaxSvcFacade interface {
	CreateTaxRate(ctx context.Context, req dto.CreateTaxRateRequest, creatorUserID string) (*domain.TaxRate, error)
	GetTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error)
	ListTaxRates(ctx context.Context, activeOnly bool) ([]domain.TaxRate, error)
	UpdateTaxRate(ctx context.Context, taxRateID string, req dto.UpdateTaxRateRequest, updaterUserID string) (*domain.TaxRate, error)
	// SetDefaultTaxRate leaves exactly one default rate.
	SetDefaultTaxRate(ctx context.Context, taxRateID string, updaterUserID string) error
	DeactivateTaxRate(ctx context.Context, taxRateID string, updaterUserID string) error
}
