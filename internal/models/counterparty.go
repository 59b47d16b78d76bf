package models

// Counterparty is a row of the counterparties table.
type Counterparty struct {
	CounterpartyID string `db:"counterparty_id"`
	CompanyID      string `db:"company_id"`
	Kind           string `db:"kind"`
	Name           string `db:"name"`
	Phone          string `db:"phone"`
	Email          string `db:"email"`
	AuditFields
}
