package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a monetary movement recorded in the log.
type TransactionType string

const (
	Income      TransactionType = "INCOME"
	Expense     TransactionType = "EXPENSE"
	DebtTaken   TransactionType = "DEBT_TAKEN"
	DebtRepaid  TransactionType = "DEBT_REPAID"
	TransferIn  TransactionType = "TRANSFER_IN"
	TransferOut TransactionType = "TRANSFER_OUT"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case Income, Expense, DebtTaken, DebtRepaid, TransferIn, TransferOut:
		return true
	}
	return false
}

// IsTransferLeg reports whether t only appears as half of a transfer pair.
func (t TransactionType) IsTransferLeg() bool {
	return t == TransferIn || t == TransferOut
}

// Sign returns +1 for types that increase an account balance and -1 for
// types that decrease it.
func (t TransactionType) Sign() int64 {
	switch t {
	case Income, DebtRepaid, TransferIn:
		return 1
	case Expense, DebtTaken, TransferOut:
		return -1
	default:
		return 0
	}
}

// CountsAsProjectPayment reports whether a row of this type linked to a
// project is a client payment that raises the project's advance.
func (t TransactionType) CountsAsProjectPayment() bool {
	return t == Income || t == DebtRepaid
}

// Transaction is a single row of the transaction log. Amount is always
// positive; the direction comes from Type.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	CompanyID       string          `json:"companyID"`
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	CurrencyCode    string          `json:"currencyCode"`
	TransactionDate time.Time       `json:"transactionDate"`
	Description     string          `json:"description"`

	AccountID     *string `json:"accountID,omitempty"`
	ProjectID     *string `json:"projectID,omitempty"`
	CustomerID    *string `json:"customerID,omitempty"`
	VendorID      *string `json:"vendorID,omitempty"`
	EmployeeID    *string `json:"employeeID,omitempty"`
	ExpenseRef    *string `json:"expenseRef,omitempty"`
	AppliesToDebt bool    `json:"appliesToDebt"`

	TransferGroupID *string `json:"transferGroupID,omitempty"`
	IdempotencyKey  *string `json:"idempotencyKey,omitempty"`

	IsReversed bool       `json:"isReversed"`
	ReversedAt *time.Time `json:"reversedAt,omitempty"`
	ReversedBy *string    `json:"reversedBy,omitempty"`
	AuditFields
}

// BalanceEffect is the signed change this row applies to its account.
// Rows without an account, and reversed rows, have no effect.
func (t Transaction) BalanceEffect() decimal.Decimal {
	if t.AccountID == nil || t.IsReversed {
		return decimal.Zero
	}
	return t.Amount.Mul(decimal.NewFromInt(t.Type.Sign()))
}

// ProjectAdvanceEffect is the change this row applies to its project's advance.
func (t Transaction) ProjectAdvanceEffect() decimal.Decimal {
	if t.ProjectID == nil || t.IsReversed || !t.Type.CountsAsProjectPayment() {
		return decimal.Zero
	}
	return t.Amount
}

// IsTransferLeg reports whether the row is part of a transfer group.
func (t Transaction) IsTransferLeg() bool {
	return t.TransferGroupID != nil
}

// SignedBalance replays rows and returns the balance they produce on accountID.
func SignedBalance(accountID string, txns []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		if txn.AccountID == nil || *txn.AccountID != accountID {
			continue
		}
		total = total.Add(txn.BalanceEffect())
	}
	return total
}

// TransferResult reports the balances of both accounts after a transfer.
type TransferResult struct {
	TransferGroupID string          `json:"transferGroupID"`
	FromAccountID   string          `json:"fromAccountID"`
	ToAccountID     string          `json:"toAccountID"`
	FromBalance     decimal.Decimal `json:"fromBalance"`
	ToBalance       decimal.Decimal `json:"toBalance"`
	Transactions    []Transaction   `json:"transactions"`
}

// DuplicateGroup lists rows that look like the same event recorded twice.
type DuplicateGroup struct {
	AccountID       string          `json:"accountID"`
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"`
	Description     string          `json:"description"`
	TransactionIDs  []string        `json:"transactionIDs"`
}
