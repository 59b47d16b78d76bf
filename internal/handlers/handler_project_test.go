package handlers_test

import (
	"errors"
	"net/http"

	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestCreateProject() {
	s.projects.On("CreateProject", mock.Anything, testCompanyID,
		mock.MatchedBy(func(req dto.CreateProjectRequest) bool {
			return req.Name == "Kitchen" && req.AgreementAmount.Equal(decimal.NewFromInt(1000))
		}), testUserID,
	).Return(&domain.Project{
		ProjectID:       "prj-1",
		CompanyID:       testCompanyID,
		Name:            "Kitchen",
		AgreementAmount: decimal.NewFromInt(1000),
		RemainingAmount: decimal.NewFromInt(1000),
		Status:          domain.ProjectActive,
	}, nil).Once()

	w := s.serve(http.MethodPost, companyURL("/projects"), `{"name":"Kitchen","agreementAmount":"1000"}`)

	s.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.ProjectResponse
	s.decode(w, &resp)
	s.Equal(domain.ProjectActive, resp.Status)
	s.True(resp.RemainingAmount.Equal(decimal.NewFromInt(1000)))
}

func (s *HandlerTestSuite) TestListProjects() {
	s.projects.On("ListProjects", mock.Anything, testCompanyID, testUserID, 5, 10).
		Return([]domain.Project{{ProjectID: "prj-1"}, {ProjectID: "prj-2"}}, nil).Once()

	w := s.serve(http.MethodGet, companyURL("/projects?limit=5&offset=10"), nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ListProjectsResponse
	s.decode(w, &resp)
	s.Len(resp.Projects, 2)
}

func (s *HandlerTestSuite) TestUpdateProjectStatus() {
	s.projects.On("UpdateProjectStatus", mock.Anything, testCompanyID, "prj-1", domain.ProjectOnHold, testUserID).
		Return(&domain.Project{ProjectID: "prj-1", Status: domain.ProjectOnHold}, nil).Once()
	s.projects.On("UpdateProjectStatus", mock.Anything, testCompanyID, "prj-1", domain.ProjectCompleted, testUserID).
		Return(nil, apperrors.NewValidationError("project prj-1 completes only when fully paid")).Once()

	w := s.serve(http.MethodPatch, companyURL("/projects/prj-1/status"), `{"status":"ON_HOLD"}`)
	s.Equal(http.StatusOK, w.Code)

	w = s.serve(http.MethodPatch, companyURL("/projects/prj-1/status"), `{"status":"COMPLETED"}`)
	s.assertError(w, http.StatusBadRequest, "VALIDATION")

	w = s.serve(http.MethodPatch, companyURL("/projects/prj-1/status"), `{"status":"CANCELLED"}`)
	s.assertError(w, http.StatusBadRequest, "VALIDATION")
}

func (s *HandlerTestSuite) TestRecomputeProject() {
	s.projects.On("RecomputeProjectRemaining", mock.Anything, testCompanyID, "prj-1", testUserID).
		Return(&domain.ProjectRecalculation{
			ProjectID:         "prj-1",
			PreviousRemaining: decimal.NewFromInt(1000),
			RemainingAmount:   decimal.Zero,
			PreviousStatus:    domain.ProjectActive,
			Status:            domain.ProjectCompleted,
		}, nil).Once()

	w := s.serve(http.MethodPost, companyURL("/projects/prj-1/recompute"), nil)

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.RecomputeProjectResponse
	s.decode(w, &resp)
	s.True(resp.Changed)
	s.Equal(domain.ProjectCompleted, resp.Status)
	s.True(resp.RemainingAmount.IsZero())
}

func (s *HandlerTestSuite) TestRecomputeProject_NotFound() {
	s.projects.On("RecomputeProjectRemaining", mock.Anything, testCompanyID, "missing", testUserID).
		Return(nil, apperrors.NewNotFoundError("project", "missing")).Once()

	w := s.serve(http.MethodPost, companyURL("/projects/missing/recompute"), nil)

	s.assertError(w, http.StatusNotFound, "NOT_FOUND")
}

func (s *HandlerTestSuite) TestRepairProjects_Inline() {
	s.projects.On("RepairProjectDrift", mock.Anything, testCompanyID, testUserID).
		Return(&domain.ProjectRepairReport{
			CompanyID: testCompanyID,
			Scanned:   3,
			Repaired:  []domain.ProjectRecalculation{{ProjectID: "prj-2"}},
		}, nil).Once()

	w := s.serve(http.MethodPost, companyURL("/maintenance/project-repair"), nil)

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp domain.ProjectRepairReport
	s.decode(w, &resp)
	s.Equal(3, resp.Scanned)
	s.Len(resp.Repaired, 1)
	s.queue.AssertNotCalled(s.T(), "EnqueueProjectRepair", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestRepairProjects_Async() {
	s.companies.On("AuthorizeUserAction", mock.Anything, testUserID, testCompanyID, domain.RoleAdmin).Return(nil).Once()
	s.queue.On("EnqueueProjectRepair", mock.Anything, testCompanyID, testUserID).Return("task-42", nil).Once()

	w := s.serve(http.MethodPost, companyURL("/maintenance/project-repair?async=true"), nil)

	s.Equal(http.StatusAccepted, w.Code, w.Body.String())
	var resp map[string]string
	s.decode(w, &resp)
	s.Equal("task-42", resp["taskID"])
}

func (s *HandlerTestSuite) TestRepairProjects_AsyncRequiresAdmin() {
	s.companies.On("AuthorizeUserAction", mock.Anything, testUserID, testCompanyID, domain.RoleAdmin).
		Return(apperrors.ErrForbidden).Once()

	w := s.serve(http.MethodPost, companyURL("/maintenance/project-repair?async=true"), nil)

	s.assertError(w, http.StatusForbidden, "FORBIDDEN")
	s.queue.AssertNotCalled(s.T(), "EnqueueProjectRepair", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestRepairProjects_EnqueueFailure() {
	s.companies.On("AuthorizeUserAction", mock.Anything, testUserID, testCompanyID, domain.RoleAdmin).Return(nil).Once()
	s.queue.On("EnqueueProjectRepair", mock.Anything, testCompanyID, testUserID).
		Return("", errors.New("redis: connection refused")).Once()

	w := s.serve(http.MethodPost, companyURL("/maintenance/project-repair?async=true"), nil)

	resp := s.assertError(w, http.StatusInternalServerError, "INTERNAL")
	s.Equal("Failed to schedule repair", resp.Error)
}
