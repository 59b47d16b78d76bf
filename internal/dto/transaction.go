package dto

import (
	"time"

	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostTransactionRequest records one monetary event. AccountID may be omitted
// for events that carry no cash movement, such as a sale on credit.
type PostTransactionRequest struct {
	Type            domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE DEBT_TAKEN DEBT_REPAID"`
	Amount          decimal.Decimal        `json:"amount"`
	CurrencyCode    string                 `json:"currencyCode" binding:"omitempty,iso4217"`
	TransactionDate *time.Time             `json:"transactionDate"`
	Description     string                 `json:"description" binding:"max=500"`
	AccountID       *string                `json:"accountID"`
	ProjectID       *string                `json:"projectID"`
	CustomerID      *string                `json:"customerID"`
	VendorID        *string                `json:"vendorID"`
	EmployeeID      *string                `json:"employeeID"`
	ExpenseRef      *string                `json:"expenseRef"`
	AppliesToDebt   bool                   `json:"appliesToDebt"`
	IdempotencyKey  *string                `json:"idempotencyKey" binding:"omitempty,max=128"`
}

// UpdateTransactionAmountRequest replaces the amount of a posted row.
type UpdateTransactionAmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	CompanyID       string                 `json:"companyID"`
	Type            domain.TransactionType `json:"type"`
	Amount          decimal.Decimal        `json:"amount"`
	CurrencyCode    string                 `json:"currencyCode"`
	TransactionDate time.Time              `json:"transactionDate"`
	Description     string                 `json:"description"`
	AccountID       *string                `json:"accountID,omitempty"`
	ProjectID       *string                `json:"projectID,omitempty"`
	CustomerID      *string                `json:"customerID,omitempty"`
	VendorID        *string                `json:"vendorID,omitempty"`
	EmployeeID      *string                `json:"employeeID,omitempty"`
	ExpenseRef      *string                `json:"expenseRef,omitempty"`
	AppliesToDebt   bool                   `json:"appliesToDebt"`
	TransferGroupID *string                `json:"transferGroupID,omitempty"`
	IdempotencyKey  *string                `json:"idempotencyKey,omitempty"`
	IsReversed      bool                   `json:"isReversed"`
	ReversedAt      *time.Time             `json:"reversedAt,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	CreatedBy       string                 `json:"createdBy"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		CompanyID:       txn.CompanyID,
		Type:            txn.Type,
		Amount:          txn.Amount,
		CurrencyCode:    txn.CurrencyCode,
		TransactionDate: txn.TransactionDate,
		Description:     txn.Description,
		AccountID:       txn.AccountID,
		ProjectID:       txn.ProjectID,
		CustomerID:      txn.CustomerID,
		VendorID:        txn.VendorID,
		EmployeeID:      txn.EmployeeID,
		ExpenseRef:      txn.ExpenseRef,
		AppliesToDebt:   txn.AppliesToDebt,
		TransferGroupID: txn.TransferGroupID,
		IdempotencyKey:  txn.IdempotencyKey,
		IsReversed:      txn.IsReversed,
		ReversedAt:      txn.ReversedAt,
		CreatedAt:       txn.CreatedAt,
		CreatedBy:       txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ListTransactionsParams defines query parameters for listing transactions with token-based pagination.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// DuplicateGroupsResponse lists suspected duplicate postings.
type DuplicateGroupsResponse struct {
	Groups []domain.DuplicateGroup `json:"groups"`
}
