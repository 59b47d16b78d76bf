package repositories

import (
	"context"
	"time"

	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account by id without tenant filtering;
	// callers compare CompanyID themselves.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a page of accounts for a company.
	ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account with a zero balance.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountTxSupport defines account operations that only run inside a storage transaction.
type AccountTxSupport interface {
	// FindAccountsByIDsForUpdate locks the accounts in ascending id order.
	// Missing ids are reported as ErrNotFound.
	FindAccountsByIDsForUpdate(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// AdjustAccountBalance atomically adds delta to the balance and returns the new balance.
	AdjustAccountBalance(ctx context.Context, accountID string, delta decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error)

	// SetAccountBalance overwrites the balance; used only by reconciliation repair.
	SetAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
