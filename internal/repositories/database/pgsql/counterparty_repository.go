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

// PgxCounterpartyRepository stores customers, vendors and employees in one table.
type PgxCounterpartyRepository struct {
	BaseRepository
}

func newPgxCounterpartyRepository(pool *pgxpool.Pool) *PgxCounterpartyRepository {
	return &PgxCounterpartyRepository{BaseRepository: BaseRepository{db: pool}}
}

var _ portsrepo.CounterpartyRepositoryFacade = (*PgxCounterpartyRepository)(nil)

const selectCounterpartyFields = `
	counterparty_id, company_id, kind, name, phone, email,
	created_at, created_by, last_updated_at, last_updated_by
`

// SaveCounterparty inserts a new counterparty.
func (r *PgxCounterpartyRepository) SaveCounterparty(ctx context.Context, cp domain.Counterparty) error {
	m := mapping.ToModelCounterparty(cp)
	query := `
		INSERT INTO counterparties (counterparty_id, company_id, kind, name, phone, email,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		m.CounterpartyID, m.CompanyID, m.Kind, m.Name, m.Phone, m.Email,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save counterparty %s", m.CounterpartyID)
}

// FindCounterpartyByID retrieves a counterparty by its ID.
func (r *PgxCounterpartyRepository) FindCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error) {
	rows, err := r.db.Query(ctx, `SELECT `+selectCounterpartyFields+` FROM counterparties WHERE counterparty_id = $1;`, counterpartyID)
	if err != nil {
		return nil, translateError(err, "find counterparty %s", counterpartyID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Counterparty])
	if err != nil {
		return nil, translateError(err, "find counterparty %s", counterpartyID)
	}
	cp := mapping.ToDomainCounterparty(m)
	return &cp, nil
}

// ListCounterparties retrieves a page of counterparties ordered by name.
func (r *PgxCounterpartyRepository) ListCounterparties(ctx context.Context, companyID string, kind *domain.CounterpartyKind, limit int, offset int) ([]domain.Counterparty, error) {
	var kindFilter *string
	if kind != nil {
		k := string(*kind)
		kindFilter = &k
	}
	query := `SELECT ` + selectCounterpartyFields + `
		FROM counterparties
		WHERE company_id = $1 AND ($2::text IS NULL OR kind = $2)
		ORDER BY name, counterparty_id
		LIMIT $3 OFFSET $4;`
	rows, err := r.db.Query(ctx, query, companyID, kindFilter, limit, offset)
	if err != nil {
		return nil, translateError(err, "list counterparties of company %s", companyID)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Counterparty])
	if err != nil {
		return nil, translateError(err, "scan counterparties of company %s", companyID)
	}
	cps := make([]domain.Counterparty, len(ms))
	for i, m := range ms {
		cps[i] = mapping.ToDomainCounterparty(m)
	}
	return cps, nil
}
