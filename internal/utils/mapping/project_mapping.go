package mapping

import (
	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:       d.ProjectID,
		CompanyID:       d.CompanyID,
		CustomerID:      d.CustomerID,
		Name:            d.Name,
		Description:     d.Description,
		AgreementAmount: d.AgreementAmount,
		AdvancePaid:     d.AdvancePaid,
		RemainingAmount: d.RemainingAmount,
		Status:          string(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:       m.ProjectID,
		CompanyID:       m.CompanyID,
		CustomerID:      m.CustomerID,
		Name:            m.Name,
		Description:     m.Description,
		AgreementAmount: m.AgreementAmount,
		AdvancePaid:     m.AdvancePaid,
		RemainingAmount: m.RemainingAmount,
		Status:          domain.ProjectStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProjectSlice converts a slice of model Projects to domain Projects
func ToDomainProjectSlice(ms []models.Project) []domain.Project {
	ds := make([]domain.Project, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProject(m)
	}
	return ds
}
