package services

import (
	portsrepo "github.com/revlo/revlo_ledger/internal/core/ports/repositories"
	portssvc "github.com/revlo/revlo_ledger/internal/core/ports/services"
	"github.com/revlo/revlo_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// debtCache may be nil, in which case debt summaries are derived on every read.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, debtCache portsrepo.DebtSummaryCache) (*portssvc.ServiceContainer, error) {
	overdraft, err := ParseOverdraftPolicy(cfg.OverdraftPolicy)
	if err != nil {
		return nil, err
	}

	container := &portssvc.ServiceContainer{}

	// Initialize company service first since other services authorize through it
	container.Company = NewCompanyService(repos.CompanyRepo)
	authorizer := container.Company.(portssvc.CompanyAuthorizerSvc)

	container.Account = NewAccountService(
		repos.AccountRepo,
		repos.TxManager,
		WithAccountCompanyAuthorizer(authorizer),
	)

	ledgerOpts := []LedgerServiceOption{
		WithLedgerCompanyAuthorizer(authorizer),
		WithOverdraftPolicy(overdraft),
	}
	counterpartyOpts := []CounterpartyServiceOption{
		WithCounterpartyCompanyAuthorizer(authorizer),
	}
	if debtCache != nil {
		ledgerOpts = append(ledgerOpts, WithLedgerDebtCache(debtCache))
		counterpartyOpts = append(counterpartyOpts, WithDebtSummaryCache(debtCache))
	}

	container.Ledger = NewLedgerService(repos.TxManager, repos.AccountRepo, repos.TransactionRepo, ledgerOpts...)
	container.Project = NewProjectService(
		repos.ProjectRepo,
		repos.CounterpartyRepo,
		repos.CompanyRepo,
		repos.TxManager,
		WithProjectCompanyAuthorizer(authorizer),
	)
	container.Counterparty = NewCounterpartyService(repos.CounterpartyRepo, repos.TransactionRepo, counterpartyOpts...)
	container.APIToken = NewAPITokenService(repos.APITokenRepo)

	return container, nil
}
