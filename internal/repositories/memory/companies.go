package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
)

// SaveCompany persists a company and its creator's membership.
func (s *Store) SaveCompany(_ context.Context, company domain.Company, admin domain.UserCompany) error {
	return s.write(func(st *state) error {
		if _, ok := st.companies[company.CompanyID]; ok {
			return fmt.Errorf("%w: company %s", apperrors.ErrDuplicate, company.CompanyID)
		}
		st.companies[company.CompanyID] = company
		st.memberships[membershipKey(admin.UserID, admin.CompanyID)] = admin
		return nil
	})
}

// FindCompanyByID retrieves a company by id.
func (s *Store) FindCompanyByID(_ context.Context, companyID string) (*domain.Company, error) {
	return read(s, func(st *state) (*domain.Company, error) {
		c, ok := st.companies[companyID]
		if !ok {
			return nil, apperrors.NewNotFoundError("company", companyID)
		}
		return &c, nil
	})
}

// ListCompaniesByUserID retrieves every company the user is a current member of.
func (s *Store) ListCompaniesByUserID(_ context.Context, userID string) ([]domain.Company, error) {
	return read(s, func(st *state) ([]domain.Company, error) {
		companies := []domain.Company{}
		for _, m := range st.memberships {
			if m.UserID != userID || m.Role == domain.RoleRemoved {
				continue
			}
			if c, ok := st.companies[m.CompanyID]; ok {
				companies = append(companies, c)
			}
		}
		sort.Slice(companies, func(i, j int) bool {
			if companies[i].Name != companies[j].Name {
				return companies[i].Name < companies[j].Name
			}
			return companies[i].CompanyID < companies[j].CompanyID
		})
		return companies, nil
	})
}

// ListActiveCompanyIDs returns the ids of all active companies.
func (s *Store) ListActiveCompanyIDs(_ context.Context) ([]string, error) {
	return read(s, func(st *state) ([]string, error) {
		ids := []string{}
		for id, c := range st.companies {
			if c.IsActive {
				ids = append(ids, id)
			}
		}
		sort.Strings(ids)
		return ids, nil
	})
}

// AddUserToCompany adds a membership or replaces the role of an existing one.
func (s *Store) AddUserToCompany(_ context.Context, membership domain.UserCompany) error {
	return s.write(func(st *state) error {
		key := membershipKey(membership.UserID, membership.CompanyID)
		if existing, ok := st.memberships[key]; ok {
			membership.JoinedAt = existing.JoinedAt
		}
		st.memberships[key] = membership
		return nil
	})
}

// FindUserCompanyRole retrieves the membership of a user in a company.
func (s *Store) FindUserCompanyRole(_ context.Context, userID, companyID string) (*domain.UserCompany, error) {
	return read(s, func(st *state) (*domain.UserCompany, error) {
		m, ok := st.memberships[membershipKey(userID, companyID)]
		if !ok {
			return nil, apperrors.NewNotFoundError("membership", userID)
		}
		return &m, nil
	})
}
