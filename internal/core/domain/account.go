package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType is the kind of money holder an account represents.
type AccountType string

const (
	AccountBank        AccountType = "BANK"
	AccountCash        AccountType = "CASH"
	AccountMobileMoney AccountType = "MOBILE_MONEY"
)

// IsValid reports whether t is a supported account type.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountBank, AccountCash, AccountMobileMoney:
		return true
	}
	return false
}

// Account represents a monetary account within the core domain.
// Balance is persisted and equals the signed sum of every non-reversed
// transaction that references the account.
type Account struct {
	AccountID    string          `json:"accountID"`
	CompanyID    string          `json:"companyID"`
	Name         string          `json:"name"`
	AccountType  AccountType     `json:"accountType"`
	CurrencyCode string          `json:"currencyCode"`
	Description  string          `json:"description"`
	IsActive     bool            `json:"isActive"`
	AuditFields
	Balance decimal.Decimal `json:"balance"`
}

// AccountReconciliation compares the stored balance of an account with the
// balance derived from the transaction log.
type AccountReconciliation struct {
	AccountID      string          `json:"accountID"`
	StoredBalance  decimal.Decimal `json:"storedBalance"`
	DerivedBalance decimal.Decimal `json:"derivedBalance"`
	Drift          decimal.Decimal `json:"drift"`
	Repaired       bool            `json:"repaired"`
}

// InSync reports whether the stored balance matches the derived one.
func (r AccountReconciliation) InSync() bool {
	return r.Drift.IsZero()
}
