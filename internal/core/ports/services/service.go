package services

// ServiceContainer bundles all service facades for handler registration.
type ServiceContainer struct {
	Currency     CurrencySvcFacade
	ExchangeRate ExchangeRateSvcFacade
	Journal      JournalSvcFacade
	Account      AccountSvcFacade
	Fiscal       FiscalSvcFacade
	Tax          TaxSvcFacade
	Reporting    ReportingSvcFacade
	User         UserSvcFacade
	Auth         AuthSvcFacade
}
