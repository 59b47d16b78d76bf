package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is stored as text in the transactions table.
type TransactionType string

// Transaction is a row of the transactions table. Optional links are nullable columns.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	CompanyID       string          `db:"company_id"`
	Type            TransactionType `db:"type"`
	Amount          decimal.Decimal `db:"amount"`
	CurrencyCode    string          `db:"currency_code"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	AccountID       *string         `db:"account_id"`
	ProjectID       *string         `db:"project_id"`
	CustomerID      *string         `db:"customer_id"`
	VendorID        *string         `db:"vendor_id"`
	EmployeeID      *string         `db:"employee_id"`
	ExpenseRef      *string         `db:"expense_ref"`
	AppliesToDebt   bool            `db:"applies_to_debt"`
	TransferGroupID *string         `db:"transfer_group_id"`
	IdempotencyKey  *string         `db:"idempotency_key"`
	IsReversed      bool            `db:"is_reversed"`
	ReversedAt      *time.Time      `db:"reversed_at"`
	ReversedBy      *string         `db:"reversed_by"`
	AuditFields
}
