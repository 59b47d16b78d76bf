package services

import (
	"context"

	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// TransactionPosterSvc records monetary events.
type TransactionPosterSvc interface {
	// PostTransaction validates links, appends one row, adjusts the account
	// balance and recomputes a linked project, all in one storage transaction.
	PostTransaction(ctx context.Context, companyID string, req dto.PostTransactionRequest, userID string) (*domain.Transaction, error)
}

// TransferSvc moves money between accounts.
type TransferSvc interface {
	// TransferFunds writes a TRANSFER_OUT/TRANSFER_IN pair, plus an EXPENSE row for a fee.
	TransferFunds(ctx context.Context, companyID string, req dto.TransferFundsRequest, userID string) (*domain.TransferResult, error)

	// DeleteTransfer reverses and removes every row of a transfer group.
	DeleteTransfer(ctx context.Context, companyID string, transferGroupID string, userID string) error
}

// TransactionMutatorSvc changes or removes posted rows.
type TransactionMutatorSvc interface {
	// DeleteTransaction reverses a row's effects and removes it.
	DeleteTransaction(ctx context.Context, companyID string, transactionID string, userID string) error

	// ReverseTransaction marks a row reversed and applies its inverse effects.
	ReverseTransaction(ctx context.Context, companyID string, transactionID string, userID string) (*domain.Transaction, error)

	// UpdateTransactionAmount replaces a row's amount, moving balances by the difference.
	UpdateTransactionAmount(ctx context.Context, companyID string, transactionID string, amount decimal.Decimal, userID string) (*domain.Transaction, error)
}

// TransactionReaderSvc defines read operations over the log.
type TransactionReaderSvc interface {
	GetTransactionByID(ctx context.Context, companyID string, transactionID string, userID string) (*domain.Transaction, error)

	// ListTransactionsByAccount returns a page of rows and the token for the next page.
	ListTransactionsByAccount(ctx context.Context, companyID string, accountID string, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error)

	// FindDuplicateTransactions reports rows that look like the same event posted twice.
	FindDuplicateTransactions(ctx context.Context, companyID string, userID string) ([]domain.DuplicateGroup, error)
}

// LedgerSvcFacade combines all transaction log operations
type LedgerSvcFacade interface {
	TransactionPosterSvc
	TransferSvc
	TransactionMutatorSvc
	TransactionReaderSvc
}
