package services

import (
	portsrepo "github.com/ledgerly/ledgerly_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerly/ledgerly_backend/internal/core/ports/services"
	"github.com/ledgerly/ledgerly_backend/internal/platform/config"
)

// NewServiceContainer creates a service container with all dependencies wired.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency first, the exchange rate service validates codes through it.
	container.Currency = NewCurrencyService(repos.SettingsRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency)

	container.Account = NewAccountService(repos.AccountRepo, repos.JournalRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo)
	container.Fiscal = NewFiscalService(repos.FiscalRepo)
	container.Tax = NewTaxService(repos.TaxRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.FiscalRepo)

	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo)

	return container
}
