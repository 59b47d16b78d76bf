package mapping

import (
	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/models"
)

// ToModelCounterparty converts a domain Counterparty to a model Counterparty
func ToModelCounterparty(d domain.Counterparty) models.Counterparty {
	return models.Counterparty{
		CounterpartyID: d.CounterpartyID,
		CompanyID:      d.CompanyID,
		Kind:           string(d.Kind),
		Name:           d.Name,
		Phone:          d.Phone,
		Email:          d.Email,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCounterparty converts a model Counterparty to a domain Counterparty
func ToDomainCounterparty(m models.Counterparty) domain.Counterparty {
	return domain.Counterparty{
		CounterpartyID: m.CounterpartyID,
		CompanyID:      m.CompanyID,
		Kind:           domain.CounterpartyKind(m.Kind),
		Name:           m.Name,
		Phone:          m.Phone,
		Email:          m.Email,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
