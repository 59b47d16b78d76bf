package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo      AccountRepositoryFacade
	TransactionRepo  TransactionRepositoryFacade
	ProjectRepo      ProjectRepositoryFacade
	CounterpartyRepo CounterpartyRepositoryFacade
	CompanyRepo      CompanyRepositoryFacade
	APITokenRepo     APITokenRepository
	TxManager        TransactionManager
}
