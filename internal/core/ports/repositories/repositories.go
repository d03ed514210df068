package repositories

// RepositoryProvider bundles all repositories for service construction.
type RepositoryProvider struct {
	SettingsRepo     SettingsRepository
	ExchangeRateRepo ExchangeRateRepository
	JournalRepo      JournalRepository
	AccountRepo      AccountRepository
	FiscalRepo       FiscalRepository
	TaxRepo          TaxRateRepository
	ReportingRepo    ReportingRepository
	UserRepo         UserRepository
}
