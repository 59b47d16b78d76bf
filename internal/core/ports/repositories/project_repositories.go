package repositories

import (
	"context"
	"time"

	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// FindProjectByID retrieves a project by id without tenant filtering.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects retrieves a page of projects for a company.
	ListProjects(ctx context.Context, companyID string, limit int, offset int) ([]domain.Project, error)

	// ListProjectIDs returns every project id of a company.
	ListProjectIDs(ctx context.Context, companyID string) ([]string, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	// SaveProject persists a new project.
	SaveProject(ctx context.Context, project domain.Project) error

	// UpdateProjectStatus sets a project's status.
	UpdateProjectStatus(ctx context.Context, projectID string, status domain.ProjectStatus, userID string, now time.Time) error
}

// ProjectTxSupport defines project operations that only run inside a storage transaction.
type ProjectTxSupport interface {
	// FindProjectForUpdate locks a project row.
	FindProjectForUpdate(ctx context.Context, projectID string) (*domain.Project, error)

	// AdjustProjectAdvance atomically adds delta to advance_paid.
	AdjustProjectAdvance(ctx context.Context, projectID string, delta decimal.Decimal, userID string, now time.Time) error

	// SaveProjectRecalculation writes back the remaining amount and status.
	SaveProjectRecalculation(ctx context.Context, recalc domain.ProjectRecalculation, userID string, now time.Time) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
