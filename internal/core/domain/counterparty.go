package domain

// CounterpartyKind distinguishes customers, vendors and employees.
type CounterpartyKind string

const (
	KindCustomer CounterpartyKind = "CUSTOMER"
	KindVendor   CounterpartyKind = "VENDOR"
	KindEmployee CounterpartyKind = "EMPLOYEE"
)

// IsValid reports whether k is a known counterparty kind.
func (k CounterpartyKind) IsValid() bool {
	switch k {
	case KindCustomer, KindVendor, KindEmployee:
		return true
	}
	return false
}

// Counterparty is a customer, vendor or employee a transaction can be linked to.
type Counterparty struct {
	CounterpartyID string           `json:"counterpartyID"`
	CompanyID      string           `json:"companyID"`
	Kind           CounterpartyKind `json:"kind"`
	Name           string           `json:"name"`
	Phone          string           `json:"phone"`
	Email          string           `json:"email"`
	AuditFields
}
