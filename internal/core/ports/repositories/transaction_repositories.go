package repositories

import (
	"context"
	"time"

	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations over the transaction log
type TransactionReader interface {
	// FindTransactionByID retrieves a row by id without tenant filtering.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccount retrieves a keyset-paginated page of rows for an account,
	// newest first. It returns the rows and a token for the next page.
	ListTransactionsByAccount(ctx context.Context, companyID, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListTransactionsByCounterparty returns every row linked to the counterparty
	// through its customer, vendor or employee link.
	ListTransactionsByCounterparty(ctx context.Context, companyID, counterpartyID string) ([]domain.Transaction, error)

	// FindDuplicateGroups reports non-reversed rows sharing account, type, amount, date and description.
	FindDuplicateGroups(ctx context.Context, companyID string) ([]domain.DuplicateGroup, error)
}

// TransactionTxSupport defines log writes that only run inside a storage transaction.
type TransactionTxSupport interface {
	// InsertTransactions appends rows. A repeated idempotency key within a
	// company fails with ErrDuplicate.
	InsertTransactions(ctx context.Context, txns []domain.Transaction) error

	// FindTransactionForUpdate locks a row.
	FindTransactionForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransferLegsForUpdate locks every row of a transfer group.
	FindTransferLegsForUpdate(ctx context.Context, companyID, transferGroupID string) ([]domain.Transaction, error)

	// MarkTransactionReversed flags a row as reversed.
	MarkTransactionReversed(ctx context.Context, transactionID string, userID string, now time.Time) error

	// UpdateTransactionAmount replaces the amount of a row.
	UpdateTransactionAmount(ctx context.Context, transactionID string, amount decimal.Decimal, userID string, now time.Time) error

	// DeleteTransactions removes rows by id.
	DeleteTransactions(ctx context.Context, transactionIDs []string) error

	// SumAccountEffects replays the log for an account and returns the derived balance.
	SumAccountEffects(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// TransactionRepositoryFacade combines read access to the log.
type TransactionRepositoryFacade interface {
	TransactionReader
}
