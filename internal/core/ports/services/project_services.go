package services

import (
	"context"

	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/dto"
)

// ProjectReaderSvc defines read operations for project data
type ProjectReaderSvc interface {
	GetProjectByID(ctx context.Context, companyID string, projectID string, userID string) (*domain.Project, error)
	ListProjects(ctx context.Context, companyID string, userID string, limit int, offset int) ([]domain.Project, error)
}

// ProjectWriterSvc defines write operations for project data
type ProjectWriterSvc interface {
	CreateProject(ctx context.Context, companyID string, req dto.CreateProjectRequest, userID string) (*domain.Project, error)

	// UpdateProjectStatus applies a manual status change. COMPLETED is terminal.
	UpdateProjectStatus(ctx context.Context, companyID string, projectID string, status domain.ProjectStatus, userID string) (*domain.Project, error)
}

// ProjectRecalculatorSvc keeps the cached remaining amount in step.
type ProjectRecalculatorSvc interface {
	// RecomputeProjectRemaining derives remaining = max(0, agreement - advance),
	// writes it back and completes an ACTIVE project that is fully paid.
	RecomputeProjectRemaining(ctx context.Context, companyID string, projectID string, userID string) (*domain.ProjectRecalculation, error)
}

// ProjectMaintenanceSvc repairs drifted projects.
type ProjectMaintenanceSvc interface {
	// RepairProjectDrift recomputes every project of a company and reports what changed.
	RepairProjectDrift(ctx context.Context, companyID string, userID string) (*domain.ProjectRepairReport, error)

	// RepairAllCompanies runs the drift repair for every active company without
	// user authorization. It is meant for the background worker.
	RepairAllCompanies(ctx context.Context) ([]domain.ProjectRepairReport, error)
}

// ProjectSvcFacade combines all project-related service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
	ProjectRecalculatorSvc
	ProjectMaintenanceSvc
}
