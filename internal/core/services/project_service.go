package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	portsrepo "github.com/revlo/revlo_ledger/internal/core/ports/repositories"
	portssvc "github.com/revlo/revlo_ledger/internal/core/ports/services"
	"github.com/revlo/revlo_ledger/internal/dto"
)

// projectService implements the ProjectSvcFacade interface
type projectService struct {
	BaseService
	projectRepo      portsrepo.ProjectRepositoryFacade
	counterpartyRepo portsrepo.CounterpartyReader
	companyRepo      portsrepo.CompanyReader
	txManager        portsrepo.TransactionManager
}

// ProjectServiceOption is a functional option for configuring the project service
type ProjectServiceOption func(*projectService)

// WithProjectCompanyAuthorizer adds company authorizer dependency
func WithProjectCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) ProjectServiceOption {
	return func(s *projectService) {
		s.CompanyAuthorizer = authorizer
	}
}

// NewProjectService creates a new project service with the provided options
func NewProjectService(
	projectRepo portsrepo.ProjectRepositoryFacade,
	counterpartyRepo portsrepo.CounterpartyReader,
	companyRepo portsrepo.CompanyReader,
	txManager portsrepo.TransactionManager,
	options ...ProjectServiceOption,
) portssvc.ProjectSvcFacade {
	svc := &projectService{
		projectRepo:      projectRepo,
		counterpartyRepo: counterpartyRepo,
		companyRepo:      companyRepo,
		txManager:        txManager,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, companyID string, req dto.CreateProjectRequest, userID string) (*domain.Project, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("project name is required")
	}
	if req.AgreementAmount.IsNegative() {
		return nil, apperrors.NewValidationError("agreement amount cannot be negative")
	}
	if req.AdvancePaid.IsNegative() {
		return nil, apperrors.NewValidationError("advance paid cannot be negative")
	}

	customerID := normalizeOptional(req.CustomerID)
	if customerID != nil {
		cp, err := s.counterpartyRepo.FindCounterpartyByID(ctx, *customerID)
		if err != nil {
			return nil, wrapLookupError("customer", *customerID, err)
		}
		if err := ensureSameCompany("customer", *customerID, companyID, cp.CompanyID); err != nil {
			return nil, err
		}
		if cp.Kind != domain.KindCustomer {
			return nil, apperrors.NewValidationError("%s is a %s, not a CUSTOMER", *customerID, cp.Kind)
		}
	}

	project := domain.Project{
		ProjectID:       uuid.NewString(),
		CompanyID:       companyID,
		CustomerID:      customerID,
		Name:            name,
		Description:     req.Description,
		AgreementAmount: req.AgreementAmount,
		AdvancePaid:     req.AdvancePaid,
		Status:          domain.ProjectActive,
		AuditFields:     domain.NewAuditFields(userID, s.now()),
	}
	recalc := project.Recalculate()
	project.RemainingAmount = recalc.RemainingAmount
	project.Status = recalc.Status

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.LogInfo(ctx, "Project created", slog.String("project_id", project.ProjectID), slog.String("company_id", companyID))
	return &project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, companyID string, projectID string, userID string) (*domain.Project, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, wrapLookupError("project", projectID, err)
	}
	if err := ensureSameCompany("project", projectID, companyID, project.CompanyID); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context, companyID string, userID string, limit int, offset int) ([]domain.Project, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.ListProjects(ctx, companyID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}

func (s *projectService) UpdateProjectStatus(ctx context.Context, companyID string, projectID string, status domain.ProjectStatus, userID string) (*domain.Project, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	var updated domain.Project
	err := s.txManager.WithTx(ctx, func(ctx context.Context, uow portsrepo.LedgerUnitOfWork) error {
		project, err := s.lockProject(ctx, uow, companyID, projectID)
		if err != nil {
			return err
		}
		if err := project.CanTransitionTo(status); err != nil {
			return apperrors.NewLedgerError(apperrors.KindValidation, "update project status", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		}
		updated = *project
		if project.Status == status {
			return nil
		}

		now := s.now()
		if err := uow.UpdateProjectStatus(ctx, projectID, status, userID, now); err != nil {
			return err
		}
		// A project resumed while already fully paid completes right away.
		recalc, err := recomputeProjectInTx(ctx, uow, projectID, userID, now)
		if err != nil {
			return err
		}
		updated.Status = recalc.Status
		updated.RemainingAmount = recalc.RemainingAmount
		updated.LastUpdatedAt = now
		updated.LastUpdatedBy = userID
		return nil
	})
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindInternal {
			s.LogError(ctx, err, "Failed to update project status", slog.String("project_id", projectID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Project status updated", slog.String("project_id", projectID), slog.String("status", string(updated.Status)))
	return &updated, nil
}

func (s *projectService) RecomputeProjectRemaining(ctx context.Context, companyID string, projectID string, userID string) (*domain.ProjectRecalculation, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	var recalc *domain.ProjectRecalculation
	err := s.txManager.WithTx(ctx, func(ctx context.Context, uow portsrepo.LedgerUnitOfWork) error {
		if _, err := s.lockProject(ctx, uow, companyID, projectID); err != nil {
			return err
		}
		var err error
		recalc, err = recomputeProjectInTx(ctx, uow, projectID, userID, s.now())
		return err
	})
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindInternal {
			s.LogError(ctx, err, "Failed to recompute project", slog.String("project_id", projectID))
		}
		return nil, err
	}

	if recalc.Changed() {
		s.LogInfo(ctx, "Project recomputed",
			slog.String("project_id", projectID),
			slog.String("previous_remaining", recalc.PreviousRemaining.String()),
			slog.String("remaining", recalc.RemainingAmount.String()),
			slog.String("status", string(recalc.Status)))
	}
	return recalc, nil
}

func (s *projectService) RepairProjectDrift(ctx context.Context, companyID string, userID string) (*domain.ProjectRepairReport, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.repairCompany(ctx, companyID, userID)
}

func (s *projectService) RepairAllCompanies(ctx context.Context) ([]domain.ProjectRepairReport, error) {
	companyIDs, err := s.companyRepo.ListActiveCompanyIDs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies for project repair")
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	reports := make([]domain.ProjectRepairReport, 0, len(companyIDs))
	var errs []error
	for _, companyID := range companyIDs {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		report, err := s.repairCompany(ctx, companyID, SystemUserID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		reports = append(reports, *report)
	}
	return reports, errors.Join(errs...)
}

// repairCompany recomputes each project of a company in its own storage transaction.
func (s *projectService) repairCompany(ctx context.Context, companyID string, userID string) (*domain.ProjectRepairReport, error) {
	projectIDs, err := s.projectRepo.ListProjectIDs(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects for repair", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list projects of company %s: %w", companyID, err)
	}

	report := &domain.ProjectRepairReport{CompanyID: companyID, Repaired: []domain.ProjectRecalculation{}}
	for _, projectID := range projectIDs {
		var recalc *domain.ProjectRecalculation
		err := s.txManager.WithTx(ctx, func(ctx context.Context, uow portsrepo.LedgerUnitOfWork) error {
			var err error
			recalc, err = recomputeProjectInTx(ctx, uow, projectID, userID, s.now())
			return err
		})
		if err != nil {
			s.LogError(ctx, err, "Failed to repair project", slog.String("project_id", projectID))
			return nil, fmt.Errorf("failed to repair project %s: %w", projectID, err)
		}
		report.Scanned++
		if recalc.Changed() {
			report.Repaired = append(report.Repaired, *recalc)
		}
	}

	s.LogInfo(ctx, "Project drift repair finished",
		slog.String("company_id", companyID),
		slog.Int("scanned", report.Scanned),
		slog.Int("repaired", len(report.Repaired)))
	return report, nil
}

// lockProject locks a project and rejects projects of other companies.
func (s *projectService) lockProject(ctx context.Context, uow portsrepo.LedgerUnitOfWork, companyID, projectID string) (*domain.Project, error) {
	project, err := uow.FindProjectForUpdate(ctx, projectID)
	if err != nil {
		return nil, wrapLookupError("project", projectID, err)
	}
	if err := ensureSameCompany("project", projectID, companyID, project.CompanyID); err != nil {
		return nil, err
	}
	return project, nil
}
