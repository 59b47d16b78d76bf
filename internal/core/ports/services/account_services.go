package services

import (
	"context"

	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account of a company.
	GetAccountByID(ctx context.Context, companyID string, accountID string, userID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts for a company.
	ListAccounts(ctx context.Context, companyID string, userID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account. A positive opening balance is
	// posted as an INCOME row so the balance stays derivable from the log.
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
}

// AccountReconcilerSvc compares stored balances with the transaction log.
type AccountReconcilerSvc interface {
	// ReconcileAccount reports drift between the stored and derived balance
	// and, when repair is true, overwrites the stored balance.
	ReconcileAccount(ctx context.Context, companyID string, accountID string, userID string, repair bool) (*domain.AccountReconciliation, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountReconcilerSvc
}
