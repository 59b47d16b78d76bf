package mapping

import (
	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		CompanyID:       d.CompanyID,
		Type:            models.TransactionType(d.Type),
		Amount:          d.Amount,
		CurrencyCode:    d.CurrencyCode,
		TransactionDate: d.TransactionDate,
		Description:     d.Description,
		AccountID:       d.AccountID,
		ProjectID:       d.ProjectID,
		CustomerID:      d.CustomerID,
		VendorID:        d.VendorID,
		EmployeeID:      d.EmployeeID,
		ExpenseRef:      d.ExpenseRef,
		AppliesToDebt:   d.AppliesToDebt,
		TransferGroupID: d.TransferGroupID,
		IdempotencyKey:  d.IdempotencyKey,
		IsReversed:      d.IsReversed,
		ReversedAt:      d.ReversedAt,
		ReversedBy:      d.ReversedBy,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		CompanyID:       m.CompanyID,
		Type:            domain.TransactionType(m.Type),
		Amount:          m.Amount,
		CurrencyCode:    m.CurrencyCode,
		TransactionDate: m.TransactionDate,
		Description:     m.Description,
		AccountID:       m.AccountID,
		ProjectID:       m.ProjectID,
		CustomerID:      m.CustomerID,
		VendorID:        m.VendorID,
		EmployeeID:      m.EmployeeID,
		ExpenseRef:      m.ExpenseRef,
		AppliesToDebt:   m.AppliesToDebt,
		TransferGroupID: m.TransferGroupID,
		IdempotencyKey:  m.IdempotencyKey,
		IsReversed:      m.IsReversed,
		ReversedAt:      m.ReversedAt,
		ReversedBy:      m.ReversedBy,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
