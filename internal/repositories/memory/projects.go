package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

func (s *state) SaveProject(_ context.Context, project domain.Project) error {
	if _, ok := s.projects[project.ProjectID]; ok {
		return fmt.Errorf("%w: project %s", apperrors.ErrDuplicate, project.ProjectID)
	}
	s.projects[project.ProjectID] = project
	return nil
}

func (s *state) FindProjectByID(_ context.Context, projectID string) (*domain.Project, error) {
	p, ok := s.projects[projectID]
	if !ok {
		return nil, apperrors.NewNotFoundError("project", projectID)
	}
	return &p, nil
}

func (s *state) FindProjectForUpdate(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.FindProjectByID(ctx, projectID)
}

func (s *state) ListProjects(_ context.Context, companyID string, limit int, offset int) ([]domain.Project, error) {
	projects := s.companyProjects(companyID)
	sort.Slice(projects, func(i, j int) bool {
		if !projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].CreatedAt.After(projects[j].CreatedAt)
		}
		return projects[i].ProjectID < projects[j].ProjectID
	})
	return page(projects, limit, offset), nil
}

func (s *state) ListProjectIDs(_ context.Context, companyID string) ([]string, error) {
	ids := []string{}
	for _, p := range s.companyProjects(companyID) {
		ids = append(ids, p.ProjectID)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *state) companyProjects(companyID string) []domain.Project {
	var projects []domain.Project
	for _, p := range s.projects {
		if p.CompanyID == companyID {
			projects = append(projects, p)
		}
	}
	return projects
}

func (s *state) UpdateProjectStatus(_ context.Context, projectID string, status domain.ProjectStatus, userID string, now time.Time) error {
	return s.updateProject(projectID, userID, now, func(p *domain.Project) { p.Status = status })
}

func (s *state) AdjustProjectAdvance(_ context.Context, projectID string, delta decimal.Decimal, userID string, now time.Time) error {
	return s.updateProject(projectID, userID, now, func(p *domain.Project) { p.AdvancePaid = p.AdvancePaid.Add(delta) })
}

func (s *state) SaveProjectRecalculation(_ context.Context, recalc domain.ProjectRecalculation, userID string, now time.Time) error {
	return s.updateProject(recalc.ProjectID, userID, now, func(p *domain.Project) {
		p.RemainingAmount = recalc.RemainingAmount
		p.Status = recalc.Status
	})
}

func (s *state) updateProject(projectID, userID string, now time.Time, change func(*domain.Project)) error {
	p, ok := s.projects[projectID]
	if !ok {
		return apperrors.NewNotFoundError("project", projectID)
	}
	change(&p)
	p.LastUpdatedAt = now
	p.LastUpdatedBy = userID
	s.projects[projectID] = p
	return nil
}

// SaveProject persists a new project.
func (s *Store) SaveProject(ctx context.Context, project domain.Project) error {
	return s.write(func(st *state) error { return st.SaveProject(ctx, project) })
}

// UpdateProjectStatus sets a project's status.
func (s *Store) UpdateProjectStatus(ctx context.Context, projectID string, status domain.ProjectStatus, userID string, now time.Time) error {
	return s.write(func(st *state) error { return st.UpdateProjectStatus(ctx, projectID, status, userID, now) })
}

// FindProjectByID retrieves a project by id.
func (s *Store) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	return read(s, func(st *state) (*domain.Project, error) { return st.FindProjectByID(ctx, projectID) })
}

// ListProjects retrieves a page of projects, newest first.
func (s *Store) ListProjects(ctx context.Context, companyID string, limit int, offset int) ([]domain.Project, error) {
	return read(s, func(st *state) ([]domain.Project, error) { return st.ListProjects(ctx, companyID, limit, offset) })
}

// ListProjectIDs returns every project id of a company.
func (s *Store) ListProjectIDs(ctx context.Context, companyID string) ([]string, error) {
	return read(s, func(st *state) ([]string, error) { return st.ListProjectIDs(ctx, companyID) })
}
