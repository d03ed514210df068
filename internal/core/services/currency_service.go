package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	portsrepo "github.com/ledgerly/ledgerly_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerly/ledgerly_backend/internal/core/ports/services"
	"github.com/ledgerly/ledgerly_backend/internal/utils"
)

// currencyService backs UI rendering paths: every read degrades to a safe
// default instead of failing, so a missing preference or a malformed stored
// value never breaks a caller.
type currencyService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(settingsRepo portsrepo.SettingsRepository) portssvc.CurrencySvcFacade {
	return &currencyService{settingsRepo: settingsRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// GetSelectedCurrency returns the persisted preference, or the registry
// default when unset, unknown, or unreadable. It never fails.
func (s *currencyService) GetSelectedCurrency(ctx context.Context) domain.Currency {
	code, err := s.settingsRepo.GetSetting(ctx, domain.SelectedCurrencyKey)
	if err != nil {
		s.LogDebug(ctx, "Falling back to default currency", slog.String("reason", err.Error()))
		return *domain.LookupCurrency(domain.DefaultCurrencyCode)
	}
	if c := domain.LookupCurrency(code); c != nil {
		return *c
	}
	s.LogDebug(ctx, "Stored currency preference not in registry, using default", slog.String("code", code))
	return *domain.LookupCurrency(domain.DefaultCurrencyCode)
}

// SetSelectedCurrency persists the code. Registry membership is NOT checked
// here; callers that care validate with GetCurrencyInfo first.
func (s *currencyService) SetSelectedCurrency(ctx context.Context, code, updaterUserID string) error {
	if err := s.settingsRepo.SetSetting(ctx, domain.SelectedCurrencyKey, code, updaterUserID); err != nil {
		s.LogError(ctx, err, "Failed to persist currency preference", slog.String("code", code))
		return err
	}
	s.LogInfo(ctx, "Currency preference updated", slog.String("code", code))
	return nil
}

// GetCurrencyInfo is a pure registry lookup.
func (s *currencyService) GetCurrencyInfo(code string) *domain.Currency {
	return domain.LookupCurrency(code)
}

// ListCurrencies returns the static registry.
func (s *currencyService) ListCurrencies() []domain.Currency {
	return domain.SupportedCurrencies()
}

// FormatAmount renders the amount per the currency's conventions. Unknown
// codes fall back to the bare numeric string; this never fails.
func (s *currencyService) FormatAmount(amount decimal.Decimal, code string, opts utils.FormatOptions) string {
	currency := domain.LookupCurrency(code)
	if currency == nil {
		precision := 2
		if opts.Decimals != nil && *opts.Decimals >= 0 {
			precision = *opts.Decimals
		}
		return utils.FormatWithPrecision(amount, precision)
	}
	return utils.FormatWithCurrency(amount, *currency, opts)
}
