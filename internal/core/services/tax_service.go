package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerly/ledgerly_backend/internal/apperrors"
	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	portsrepo "github.com/ledgerly/ledgerly_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerly/ledgerly_backend/internal/core/ports/services"
	"github.com/ledgerly/ledgerly_backend/internal/dto"
)

// ErrNegativeTaxRate rejects rates below zero.
var ErrNegativeTaxRate = errors.New("tax rate must not be negative")

// taxService implements tax-rate configuration.
type taxService struct {
	BaseService
	taxRepo portsrepo.TaxRateRepository
}

// NewTaxService creates a new tax service.
func NewTaxService(taxRepo portsrepo.TaxRateRepository) portssvc.TaxSvcFacade {
	return &taxService{taxRepo: taxRepo}
}

var _ portssvc.TaxSvcFacade = (*taxService)(nil)

// CreateTaxRate adds a rate. Marking it default demotes the previous default
// in the same request.
func (s *taxService) CreateTaxRate(ctx context.Context, req dto.CreateTaxRateRequest, creatorUserID string) (*domain.TaxRate, error) {
	if req.Rate.IsNegative() {
		return nil, ErrNegativeTaxRate
	}

	now := time.Now().UTC()
	rate := domain.TaxRate{
		TaxRateID:   uuid.NewString(),
		Name:        req.Name,
		Code:        req.Code,
		Rate:        req.Rate,
		IsActive:    true,
		AccountCode: req.AccountCode,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.taxRepo.SaveTaxRate(ctx, rate); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("tax rate code '%s' already exists: %w", req.Code, err)
		}
		s.LogError(ctx, err, "Failed to save tax rate", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save tax rate: %w", err)
	}

	if req.IsDefault {
		if err := s.SetDefaultTaxRate(ctx, rate.TaxRateID, creatorUserID); err != nil {
			return nil, err
		}
		rate.IsDefault = true
	}

	s.LogInfo(ctx, "Tax rate created", slog.String("tax_rate_id", rate.TaxRateID), slog.String("code", rate.Code))
	return &rate, nil
}

// GetTaxRateByID fetches one tax rate.
func (s *taxService) GetTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error) {
	rate, err := s.taxRepo.FindTaxRateByID(ctx, taxRateID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find tax rate", slog.String("tax_rate_id", taxRateID))
		}
		return nil, fmt.Errorf("failed to find tax rate %s: %w", taxRateID, err)
	}
	return rate, nil
}

// ListTaxRates returns configured rates, optionally only active ones.
func (s *taxService) ListTaxRates(ctx context.Context, activeOnly bool) ([]domain.TaxRate, error) {
	rates, err := s.taxRepo.ListTaxRates(ctx, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tax rates")
		return nil, fmt.Errorf("failed to list tax rates: %w", err)
	}
	return rates, nil
}

// UpdateTaxRate edits name, rate, account code or description.
func (s *taxService) UpdateTaxRate(ctx context.Context, taxRateID string, req dto.UpdateTaxRateRequest, updaterUserID string) (*domain.TaxRate, error) {
	rate, err := s.taxRepo.FindTaxRateByID(ctx, taxRateID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tax rate %s: %w", taxRateID, err)
	}

	if req.Name != nil {
		rate.Name = *req.Name
	}
	if req.Rate != nil {
		if req.Rate.IsNegative() {
			return nil, ErrNegativeTaxRate
		}
		rate.Rate = *req.Rate
	}
	if req.AccountCode != nil {
		rate.AccountCode = *req.AccountCode
	}
	if req.Description != nil {
		rate.Description = *req.Description
	}
	rate.LastUpdatedAt = time.Now().UTC()
	rate.LastUpdatedBy = updaterUserID

	if err := s.taxRepo.UpdateTaxRate(ctx, *rate); err != nil {
		s.LogError(ctx, err, "Failed to update tax rate", slog.String("tax_rate_id", taxRateID))
		return nil, fmt.Errorf("failed to update tax rate: %w", err)
	}

	s.LogInfo(ctx, "Tax rate updated", slog.String("tax_rate_id", taxRateID))
	return rate, nil
}

// SetDefaultTaxRate makes the given rate the default. The repository clears
// the flag on every other rate in the same transaction.
func (s *taxService) SetDefaultTaxRate(ctx context.Context, taxRateID string, updaterUserID string) error {
	rate, err := s.taxRepo.FindTaxRateByID(ctx, taxRateID)
	if err != nil {
		return fmt.Errorf("failed to find tax rate %s: %w", taxRateID, err)
	}
	if !rate.IsActive {
		return fmt.Errorf("%w: cannot set inactive tax rate '%s' as default", apperrors.ErrValidation, rate.Code)
	}

	if err := s.taxRepo.SetDefaultTaxRate(ctx, taxRateID, updaterUserID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to set default tax rate", slog.String("tax_rate_id", taxRateID))
		return fmt.Errorf("failed to set default tax rate: %w", err)
	}

	s.LogInfo(ctx, "Default tax rate changed", slog.String("tax_rate_id", taxRateID), slog.String("code", rate.Code))
	return nil
}

// DeactivateTaxRate hides the rate from active listings. A deactivated
// default loses its default flag so pickers never preselect an inactive rate.
func (s *taxService) DeactivateTaxRate(ctx context.Context, taxRateID string, updaterUserID string) error {
	if err := s.taxRepo.SetTaxRateActive(ctx, taxRateID, false, updaterUserID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate tax rate", slog.String("tax_rate_id", taxRateID))
		return fmt.Errorf("failed to deactivate tax rate %s: %w", taxRateID, err)
	}
	s.LogInfo(ctx, "Tax rate deactivated", slog.String("tax_rate_id", taxRateID))
	return nil
}
