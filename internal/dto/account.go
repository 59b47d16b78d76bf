package dto

import (
	"time"

	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string             `json:"name" binding:"required,max=120"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,oneof=BANK CASH MOBILE_MONEY"`
	CurrencyCode   string             `json:"currencyCode" binding:"required,iso4217"`
	Description    string             `json:"description"`
	OpeningBalance *decimal.Decimal   `json:"openingBalance"` // Optional, posted as INCOME
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID        string             `json:"accountID"`
	CompanyID        string             `json:"companyID"`
	Name             string             `json:"name"`
	AccountType      domain.AccountType `json:"accountType"`
	CurrencyCode     string             `json:"currencyCode"`
	Description      string             `json:"description"`
	IsActive         bool               `json:"isActive"`
	Balance          decimal.Decimal    `json:"balance"`
	FormattedBalance string             `json:"formattedBalance"`
	CreatedAt        time.Time          `json:"createdAt"`
	CreatedBy        string             `json:"createdBy"`
	LastUpdatedAt    time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy    string             `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:        acc.AccountID,
		CompanyID:        acc.CompanyID,
		Name:             acc.Name,
		AccountType:      acc.AccountType,
		CurrencyCode:     acc.CurrencyCode,
		Description:      acc.Description,
		IsActive:         acc.IsActive,
		Balance:          acc.Balance,
		FormattedBalance: utils.FormatWithCurrencyPrecision(acc.Balance, acc.CurrencyCode),
		CreatedAt:        acc.CreatedAt,
		CreatedBy:        acc.CreatedBy,
		LastUpdatedAt:    acc.LastUpdatedAt,
		LastUpdatedBy:    acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ReconcileAccountParams controls whether drift is repaired or only reported.
type ReconcileAccountParams struct {
	Repair bool `form:"repair,default=false"`
}
