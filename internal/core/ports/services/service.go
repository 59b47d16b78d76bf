package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers and the worker.
type ServiceContainer struct {
	Company      CompanySvcFacade
	Account      AccountSvcFacade
	Ledger       LedgerSvcFacade
	Project      ProjectSvcFacade
	Counterparty CounterpartySvcFacade
	APIToken     APITokenSvc
}
