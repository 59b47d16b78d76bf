package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	portsrepo "github.com/revlo/revlo_ledger/internal/core/ports/repositories"
	"github.com/revlo/revlo_ledger/internal/models"
	"github.com/revlo/revlo_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// PgxProjectRepository stores projects and their cached payment totals.
type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(pool *pgxpool.Pool) *PgxProjectRepository {
	return &PgxProjectRepository{BaseRepository: BaseRepository{db: pool}}
}

var (
	_ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)
	_ portsrepo.ProjectTxSupport        = (*PgxProjectRepository)(nil)
)

const selectProjectFields = `
	project_id, company_id, customer_id, name, description, agreement_amount, advance_paid,
	remaining_amount, status, created_at, created_by, last_updated_at, last_updated_by
`

// SaveProject inserts a new project.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
		INSERT INTO projects (project_id, company_id, customer_id, name, description, agreement_amount, advance_paid,
			remaining_amount, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		m.ProjectID, m.CompanyID, m.CustomerID, m.Name, m.Description, m.AgreementAmount, m.AdvancePaid,
		m.RemainingAmount, m.Status, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save project %s", m.ProjectID)
}

// FindProjectByID retrieves a project by its ID.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	return r.findOne(ctx, `SELECT `+selectProjectFields+` FROM projects WHERE project_id = $1;`, projectID)
}

// FindProjectForUpdate locks a project row.
func (r *PgxProjectRepository) FindProjectForUpdate(ctx context.Context, projectID string) (*domain.Project, error) {
	return r.findOne(ctx, `SELECT `+selectProjectFields+` FROM projects WHERE project_id = $1 FOR UPDATE;`, projectID)
}

func (r *PgxProjectRepository) findOne(ctx context.Context, query, projectID string) (*domain.Project, error) {
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, translateError(err, "find project %s", projectID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Project])
	if err != nil {
		return nil, translateError(err, "find project %s", projectID)
	}
	project := mapping.ToDomainProject(m)
	return &project, nil
}

// ListProjects retrieves a page of projects, newest first.
func (r *PgxProjectRepository) ListProjects(ctx context.Context, companyID string, limit int, offset int) ([]domain.Project, error) {
	query := `SELECT ` + selectProjectFields + `
		FROM projects
		WHERE company_id = $1
		ORDER BY created_at DESC, project_id
		LIMIT $2 OFFSET $3;`
	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, translateError(err, "list projects of company %s", companyID)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Project])
	if err != nil {
		return nil, translateError(err, "scan projects of company %s", companyID)
	}
	return mapping.ToDomainProjectSlice(ms), nil
}

// ListProjectIDs returns every project id of a company.
func (r *PgxProjectRepository) ListProjectIDs(ctx context.Context, companyID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT project_id FROM projects WHERE company_id = $1 ORDER BY project_id;`, companyID)
	if err != nil {
		return nil, translateError(err, "list project ids of company %s", companyID)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, translateError(err, "scan project ids of company %s", companyID)
	}
	return ids, nil
}

// UpdateProjectStatus sets a project's status.
func (r *PgxProjectRepository) UpdateProjectStatus(ctx context.Context, projectID string, status domain.ProjectStatus, userID string, now time.Time) error {
	query := `
		UPDATE projects
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE project_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, projectID, string(status), now, userID)
	if err != nil {
		return translateError(err, "update status of project %s", projectID)
	}
	return expectOneRow(tag, "project", projectID)
}

// AdjustProjectAdvance adds delta to advance_paid in a single statement.
func (r *PgxProjectRepository) AdjustProjectAdvance(ctx context.Context, projectID string, delta decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE projects
		SET advance_paid = advance_paid + $2, last_updated_at = $3, last_updated_by = $4
		WHERE project_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, projectID, delta, now, userID)
	if err != nil {
		return translateError(err, "adjust advance of project %s", projectID)
	}
	return expectOneRow(tag, "project", projectID)
}

// SaveProjectRecalculation writes back the remaining amount and status.
func (r *PgxProjectRepository) SaveProjectRecalculation(ctx context.Context, recalc domain.ProjectRecalculation, userID string, now time.Time) error {
	query := `
		UPDATE projects
		SET remaining_amount = $2, status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE project_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, recalc.ProjectID, recalc.RemainingAmount, string(recalc.Status), now, userID)
	if err != nil {
		return translateError(err, "save recalculation of project %s", recalc.ProjectID)
	}
	return expectOneRow(tag, "project", recalc.ProjectID)
}
