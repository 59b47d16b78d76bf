package domain

import "time"

// Company is the tenant boundary. Every account, transaction, project and
// counterparty belongs to exactly one company.
type Company struct {
	CompanyID           string  `json:"companyID"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	DefaultCurrencyCode *string `json:"defaultCurrencyCode"`
	IsActive            bool    `json:"isActive"`
	AuditFields
}

// UserCompanyRole defines the possible roles a user can have within a company.
type UserCompanyRole string

const (
	RoleAdmin    UserCompanyRole = "ADMIN"
	RoleMember   UserCompanyRole = "MEMBER"
	RoleReadOnly UserCompanyRole = "READONLY"
	RoleRemoved  UserCompanyRole = "REMOVED"
)

// rank orders roles from least to most privileged.
func (r UserCompanyRole) rank() int {
	switch r {
	case RoleReadOnly:
		return 1
	case RoleMember:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}

// Satisfies reports whether r grants at least the required role.
func (r UserCompanyRole) Satisfies(required UserCompanyRole) bool {
	return r.rank() > 0 && r.rank() >= required.rank()
}

// IsValid reports whether r is one of the assignable roles.
func (r UserCompanyRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleReadOnly, RoleRemoved:
		return true
	}
	return false
}

// UserCompany represents the membership of a user in a company.
type UserCompany struct {
	UserID    string          `json:"userID"`
	CompanyID string          `json:"companyID"`
	Role      UserCompanyRole `json:"role"`
	JoinedAt  time.Time       `json:"joinedAt"`
}
