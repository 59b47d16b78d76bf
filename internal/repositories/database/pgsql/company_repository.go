package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	portsrepo "github.com/revlo/revlo_ledger/internal/core/ports/repositories"
	"github.com/revlo/revlo_ledger/internal/models"
	"github.com/revlo/revlo_ledger/internal/utils/mapping"
)

// PgxCompanyRepository stores companies and their memberships.
type PgxCompanyRepository struct {
	BaseRepository
	pool *pgxpool.Pool
}

func newPgxCompanyRepository(pool *pgxpool.Pool) *PgxCompanyRepository {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{db: pool}, pool: pool}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const selectCompanyFields = `
	c.company_id, c.name, c.description, c.default_currency_code, c.is_active,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
`

const upsertMembershipQuery = `
	INSERT INTO user_companies (user_id, company_id, role, joined_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (user_id, company_id) DO UPDATE SET role = EXCLUDED.role;
`

// SaveCompany inserts a company and its creator's membership in one transaction.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company, admin domain.UserCompany) error {
	m := mapping.ToModelCompany(company)
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO companies (company_id, name, description, default_currency_code, is_active,
				created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
		`
		if _, err := tx.Exec(ctx, query,
			m.CompanyID, m.Name, m.Description, m.DefaultCurrencyCode, m.IsActive,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		); err != nil {
			return translateError(err, "save company %s", m.CompanyID)
		}
		if _, err := tx.Exec(ctx, upsertMembershipQuery, admin.UserID, admin.CompanyID, string(admin.Role), admin.JoinedAt); err != nil {
			return translateError(err, "add admin to company %s", m.CompanyID)
		}
		return nil
	})
}

// FindCompanyByID retrieves a company by its ID.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	rows, err := r.db.Query(ctx, `SELECT `+selectCompanyFields+` FROM companies c WHERE c.company_id = $1;`, companyID)
	if err != nil {
		return nil, translateError(err, "find company %s", companyID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Company])
	if err != nil {
		return nil, translateError(err, "find company %s", companyID)
	}
	company := mapping.ToDomainCompany(m)
	return &company, nil
}

// ListCompaniesByUserID retrieves every company the user is a current member of.
func (r *PgxCompanyRepository) ListCompaniesByUserID(ctx context.Context, userID string) ([]domain.Company, error) {
	query := `SELECT ` + selectCompanyFields + `
		FROM companies c
		JOIN user_companies uc ON uc.company_id = c.company_id
		WHERE uc.user_id = $1 AND uc.role <> $2
		ORDER BY c.name, c.company_id;`
	rows, err := r.db.Query(ctx, query, userID, string(domain.RoleRemoved))
	if err != nil {
		return nil, translateError(err, "list companies of user %s", userID)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Company])
	if err != nil {
		return nil, translateError(err, "scan companies of user %s", userID)
	}
	companies := make([]domain.Company, len(ms))
	for i, m := range ms {
		companies[i] = mapping.ToDomainCompany(m)
	}
	return companies, nil
}

// ListActiveCompanyIDs returns the ids of all active companies.
func (r *PgxCompanyRepository) ListActiveCompanyIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT company_id FROM companies WHERE is_active ORDER BY company_id;`)
	if err != nil {
		return nil, translateError(err, "list active companies")
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, translateError(err, "scan active companies")
	}
	return ids, nil
}

// AddUserToCompany adds a membership or replaces the role of an existing one.
func (r *PgxCompanyRepository) AddUserToCompany(ctx context.Context, membership domain.UserCompany) error {
	_, err := r.db.Exec(ctx, upsertMembershipQuery, membership.UserID, membership.CompanyID, string(membership.Role), membership.JoinedAt)
	return translateError(err, "add user %s to company %s", membership.UserID, membership.CompanyID)
}

// FindUserCompanyRole retrieves the membership of a user in a company.
func (r *PgxCompanyRepository) FindUserCompanyRole(ctx context.Context, userID, companyID string) (*domain.UserCompany, error) {
	query := `SELECT user_id, company_id, role, joined_at FROM user_companies WHERE user_id = $1 AND company_id = $2;`
	rows, err := r.db.Query(ctx, query, userID, companyID)
	if err != nil {
		return nil, translateError(err, "find membership of user %s", userID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.UserCompany])
	if err != nil {
		return nil, translateError(err, "find membership of user %s", userID)
	}
	uc := mapping.ToDomainUserCompany(m)
	return &uc, nil
}
