package models

import "github.com/shopspring/decimal"

// Project is a row of the projects table.
type Project struct {
	ProjectID       string          `db:"project_id"`
	CompanyID       string          `db:"company_id"`
	CustomerID      *string         `db:"customer_id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	AgreementAmount decimal.Decimal `db:"agreement_amount"`
	AdvancePaid     decimal.Decimal `db:"advance_paid"`
	RemainingAmount decimal.Decimal `db:"remaining_amount"`
	Status          string          `db:"status"`
	AuditFields
}
