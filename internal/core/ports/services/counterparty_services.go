package services

import (
	"context"

	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/dto"
)

// CounterpartyReaderSvc defines read operations for customers, vendors and employees
type CounterpartyReaderSvc interface {
	GetCounterpartyByID(ctx context.Context, companyID string, counterpartyID string, userID string) (*domain.Counterparty, error)
	ListCounterparties(ctx context.Context, companyID string, userID string, params dto.ListCounterpartiesParams) ([]domain.Counterparty, error)
}

// CounterpartyWriterSvc defines write operations for counterparties
type CounterpartyWriterSvc interface {
	CreateCounterparty(ctx context.Context, companyID string, req dto.CreateCounterpartyRequest, userID string) (*domain.Counterparty, error)
}

// DebtSummarySvc derives outstanding debt from the transaction log.
type DebtSummarySvc interface {
	// GetCustomerDebtSummary fails with a validation error when the counterparty is not a customer.
	GetCustomerDebtSummary(ctx context.Context, companyID string, customerID string, userID string) (*domain.DebtSummary, error)

	// GetVendorDebtSummary fails with a validation error when the counterparty is not a vendor.
	GetVendorDebtSummary(ctx context.Context, companyID string, vendorID string, userID string) (*domain.DebtSummary, error)

	// GetDebtSummary dispatches on the counterparty's kind.
	GetDebtSummary(ctx context.Context, companyID string, counterpartyID string, userID string) (*domain.DebtSummary, error)
}

// CounterpartySvcFacade combines all counterparty-related service interfaces
type CounterpartySvcFacade interface {
	CounterpartyReaderSvc
	CounterpartyWriterSvc
	DebtSummarySvc
}
