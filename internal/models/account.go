package models

import (
	"github.com/shopspring/decimal"
)

// AccountType is stored as text in the accounts table.
type AccountType string

// Account is a row of the accounts table.
type Account struct {
	AccountID    string      `db:"account_id"`
	CompanyID    string      `db:"company_id"`
	Name         string      `db:"name"`
	AccountType  AccountType `db:"account_type"`
	CurrencyCode string      `db:"currency_code"`
	Description  string      `db:"description"`
	IsActive     bool        `db:"is_active"`
	AuditFields
	Balance decimal.Decimal `db:"balance"` // Persisted, adjusted atomically
}
