package dto

import (
	"time"

	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCounterpartyRequest defines the data needed to create a customer, vendor or employee.
type CreateCounterpartyRequest struct {
	Kind  domain.CounterpartyKind `json:"kind" binding:"required,oneof=CUSTOMER VENDOR EMPLOYEE"`
	Name  string                  `json:"name" binding:"required,max=200"`
	Phone string                  `json:"phone" binding:"max=40"`
	Email string                  `json:"email" binding:"omitempty,email"`
}

// CounterpartyResponse defines the data returned for a counterparty.
type CounterpartyResponse struct {
	CounterpartyID string                  `json:"counterpartyID"`
	CompanyID      string                  `json:"companyID"`
	Kind           domain.CounterpartyKind `json:"kind"`
	Name           string                  `json:"name"`
	Phone          string                  `json:"phone"`
	Email          string                  `json:"email"`
	CreatedAt      time.Time               `json:"createdAt"`
}

// ToCounterpartyResponse converts a domain.Counterparty to its DTO.
func ToCounterpartyResponse(cp *domain.Counterparty) CounterpartyResponse {
	return CounterpartyResponse{
		CounterpartyID: cp.CounterpartyID,
		CompanyID:      cp.CompanyID,
		Kind:           cp.Kind,
		Name:           cp.Name,
		Phone:          cp.Phone,
		Email:          cp.Email,
		CreatedAt:      cp.CreatedAt,
	}
}

// ListCounterpartiesParams defines query parameters for listing counterparties.
type ListCounterpartiesParams struct {
	Kind   *domain.CounterpartyKind `form:"kind" binding:"omitempty,oneof=CUSTOMER VENDOR EMPLOYEE"`
	Limit  int                      `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int                      `form:"offset,default=0" binding:"min=0"`
}

// ListCounterpartiesResponse wraps a page of counterparties.
type ListCounterpartiesResponse struct {
	Counterparties []CounterpartyResponse `json:"counterparties"`
}

// DebtSummaryResponse is the derived outstanding balance of a customer or vendor.
type DebtSummaryResponse struct {
	CounterpartyID string          `json:"counterpartyID"`
	TotalDebt      decimal.Decimal `json:"totalDebt"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	RemainingDebt  decimal.Decimal `json:"remainingDebt"`
	IsFullyPaid    bool            `json:"isFullyPaid"`
}

// ToDebtSummaryResponse converts a domain.DebtSummary to its DTO.
func ToDebtSummaryResponse(s *domain.DebtSummary) DebtSummaryResponse {
	return DebtSummaryResponse{
		CounterpartyID: s.CounterpartyID,
		TotalDebt:      s.TotalDebt,
		TotalPaid:      s.TotalPaid,
		RemainingDebt:  s.RemainingDebt,
		IsFullyPaid:    s.IsFullyPaid,
	}
}
