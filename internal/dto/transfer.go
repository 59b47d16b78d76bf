package dto

import (
	"time"

	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferFundsRequest moves money between two accounts of one company.
// A positive Fee is booked as a separate EXPENSE on the source account.
type TransferFundsRequest struct {
	FromAccountID   string          `json:"fromAccountID" binding:"required"`
	ToAccountID     string          `json:"toAccountID" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	Fee             decimal.Decimal `json:"fee"`
	TransactionDate *time.Time      `json:"transactionDate"`
	Description     string          `json:"description" binding:"max=500"`
	IdempotencyKey  *string         `json:"idempotencyKey" binding:"omitempty,max=128"`
}

// TransferResponse reports both balances after a transfer.
type TransferResponse struct {
	TransferGroupID string                `json:"transferGroupID"`
	FromAccountID   string                `json:"fromAccountID"`
	ToAccountID     string                `json:"toAccountID"`
	FromBalance     decimal.Decimal       `json:"fromBalance"`
	ToBalance       decimal.Decimal       `json:"toBalance"`
	Transactions    []TransactionResponse `json:"transactions"`
}

// ToTransferResponse converts a domain.TransferResult to its DTO.
func ToTransferResponse(r *domain.TransferResult) TransferResponse {
	return TransferResponse{
		TransferGroupID: r.TransferGroupID,
		FromAccountID:   r.FromAccountID,
		ToAccountID:     r.ToAccountID,
		FromBalance:     r.FromBalance,
		ToBalance:       r.ToBalance,
		Transactions:    ToTransactionResponses(r.Transactions),
	}
}
