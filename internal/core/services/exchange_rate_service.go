package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerly/ledgerly_backend/internal/apperrors"
	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	portsrepo "github.com/ledgerly/ledgerly_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerly/ledgerly_backend/internal/core/ports/services"
	"github.com/ledgerly/ledgerly_backend/internal/dto"
)

// ErrNoExchangeRate signals that no direct rate is stored for a pair. It is
// distinct from a zero rate or a zero amount.
var ErrNoExchangeRate = errors.New("no exchange rate stored for currency pair")

// rateCache holds the loaded rate list. Invalidation clears it; the next
// read reloads from the repository.
type rateCache struct {
	mu    sync.RWMutex
	rates []domain.ExchangeRate
	valid bool
}

func (c *rateCache) get() ([]domain.ExchangeRate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rates, c.valid
}

func (c *rateCache) set(rates []domain.ExchangeRate) {
	c.mu.Lock()
	c.rates = rates
	c.valid = true
	c.mu.Unlock()
}

func (c *rateCache) invalidate() {
	c.mu.Lock()
	c.rates = nil
	c.valid = false
	c.mu.Unlock()
}

// exchangeRateService provides rate storage, lookup and conversion.
type exchangeRateService struct {
	BaseService
	rateRepo    portsrepo.ExchangeRateRepository
	currencySvc portssvc.CurrencySvcFacade
	cache       rateCache
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepository, currencySvc portssvc.CurrencySvcFacade) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:    rateRepo,
		currencySvc: currencySvc,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// GetAllExchangeRates returns the cached rate list, loading it from the
// repository on first access.
func (s *exchangeRateService) GetAllExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	if rates, ok := s.cache.get(); ok {
		return rates, nil
	}

	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load exchange rates")
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}
	s.cache.set(rates)
	return rates, nil
}

// GetExchangeRate returns 1 for identical currencies, the direct stored rate
// otherwise, and ErrNoExchangeRate when no direct rate exists. No multi-hop
// path is derived.
func (s *exchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if len(fromCode) != 3 || len(toCode) != 3 {
		return decimal.Zero, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	if fromCode == toCode {
		return decimal.NewFromInt(1), nil
	}

	rate, err := s.rateRepo.FindRate(ctx, fromCode, toCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: %s to %s", ErrNoExchangeRate, fromCode, toCode)
		}
		s.LogError(ctx, err, "Failed to look up exchange rate", slog.String("from", fromCode), slog.String("to", toCode))
		return decimal.Zero, fmt.Errorf("failed to look up exchange rate: %w", err)
	}
	return rate.Rate, nil
}

// UpdateExchangeRate validates and upserts the pair together with its
// reciprocal in one transaction, then invalidates the cache.
func (s *exchangeRateService) UpdateExchangeRate(ctx context.Context, req dto.UpdateExchangeRateRequest, updaterUserID string) (*domain.ExchangeRate, error) {
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	fromCode := strings.ToUpper(req.FromCurrencyCode)
	toCode := strings.ToUpper(req.ToCurrencyCode)
	if fromCode == toCode {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}
	if s.currencySvc.GetCurrencyInfo(fromCode) == nil {
		return nil, fmt.Errorf("%w: 'from' currency code '%s' not supported", apperrors.ErrValidation, fromCode)
	}
	if s.currencySvc.GetCurrencyInfo(toCode) == nil {
		return nil, fmt.Errorf("%w: 'to' currency code '%s' not supported", apperrors.ErrValidation, toCode)
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     updaterUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: updaterUserID,
	}

	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		Rate:             req.Rate,
		AuditFields:      audit,
	}
	inverse := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: toCode,
		ToCurrencyCode:   fromCode,
		Rate:             decimal.NewFromInt(1).Div(req.Rate),
		AuditFields:      audit,
	}

	if err := s.rateRepo.SaveRatePair(ctx, rate, inverse); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate pair", slog.String("from", fromCode), slog.String("to", toCode))
		return nil, fmt.Errorf("failed to save exchange rate: %w", err)
	}

	s.cache.invalidate()
	s.LogInfo(ctx, "Exchange rate updated", slog.String("from", fromCode), slog.String("to", toCode), slog.String("rate", req.Rate.String()))
	return &rate, nil
}

// ConvertAmount converts through the direct rate. Same-currency conversion
// is the identity; an absent rate yields ErrNoExchangeRate, never zero.
func (s *exchangeRateService) ConvertAmount(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if fromCode == toCode {
		return amount, nil
	}

	rate, err := s.GetExchangeRate(ctx, fromCode, toCode)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}
