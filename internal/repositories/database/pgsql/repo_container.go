package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/ledgerly/ledgerly_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SettingsRepo:     newPgxSettingsRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		JournalRepo:      newPgxJournalRepository(dbPool),
		AccountRepo:      newPgxAccountRepository(dbPool),
		FiscalRepo:       newPgxFiscalRepository(dbPool),
		TaxRepo:          newPgxTaxRateRepository(dbPool),
		ReportingRepo:    newPgxReportingRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
	}
}
