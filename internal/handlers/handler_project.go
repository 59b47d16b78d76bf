package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	portssvc "github.com/revlo/revlo_ledger/internal/core/ports/services"
	"github.com/revlo/revlo_ledger/internal/dto"
	"github.com/revlo/revlo_ledger/internal/middleware"
)

// ProjectRepairEnqueuer schedules a drift repair on the background worker.
type ProjectRepairEnqueuer interface {
	EnqueueProjectRepair(ctx context.Context, companyID, requestedBy string) (string, error)
}

// projectHandler handles HTTP requests related to projects.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
	authorizer     portssvc.CompanyAuthorizerSvc
	repairQueue    ProjectRepairEnqueuer
}

func newProjectHandler(ps portssvc.ProjectSvcFacade, authz portssvc.CompanyAuthorizerSvc, queue ProjectRepairEnqueuer) *projectHandler {
	return &projectHandler{projectService: ps, authorizer: authz, repairQueue: queue}
}

func registerProjectRoutes(company *gin.RouterGroup, projectService portssvc.ProjectSvcFacade, authz portssvc.CompanyAuthorizerSvc, queue ProjectRepairEnqueuer) {
	h := newProjectHandler(projectService, authz, queue)

	projects := company.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:project_id", h.getProject)
		projects.PATCH("/:project_id/status", h.updateProjectStatus)
		projects.POST("/:project_id/recompute", h.recomputeProject)
	}

	company.POST("/maintenance/project-repair", h.repairProjects)
}

// createProject godoc
// @Summary Create a project
// @Description Creates a project. Remaining amount and status are derived from the agreement and advance.
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), c.Param("company_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// listProjects godoc
// @Summary List projects
// @Tags projects
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListProjectsResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var params dto.ListProjectsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "query parameters")
		return
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), c.Param("company_id"), userID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list projects")
		return
	}

	resp := dto.ListProjectsResponse{Projects: make([]dto.ProjectResponse, len(projects))}
	for i := range projects {
		resp.Projects[i] = dto.ToProjectResponse(&projects[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getProject godoc
// @Summary Get a project
// @Tags projects
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   project_id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProjectByID(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// updateProjectStatus godoc
// @Summary Put a project on hold or resume it
// @Description COMPLETED is reached only through payments and cannot be left.
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   project_id path string true "Project ID"
// @Param   status body dto.UpdateProjectStatusRequest true "New status"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/status [patch]
func (h *projectHandler) updateProjectStatus(c *gin.Context) {
	var req dto.UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	project, err := h.projectService.UpdateProjectStatus(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), req.Status, userID)
	if err != nil {
		respondError(c, err, "Failed to update project status")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// recomputeProject godoc
// @Summary Recompute a project's remaining amount
// @Description Idempotent. Completes an ACTIVE project whose remaining amount reaches zero.
// @Tags projects
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   project_id path string true "Project ID"
// @Success 200 {object} dto.RecomputeProjectResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/recompute [post]
func (h *projectHandler) recomputeProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	recalc, err := h.projectService.RecomputeProjectRemaining(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to recompute project")
		return
	}
	c.JSON(http.StatusOK, dto.RecomputeProjectResponse{
		ProjectID:       recalc.ProjectID,
		RemainingAmount: recalc.RemainingAmount,
		Status:          recalc.Status,
		Changed:         recalc.Changed(),
	})
}

// repairProjects godoc
// @Summary Repair drifted project balances
// @Description Scans every project of the company and recomputes the ones whose cached fields drifted.
// @Description With async=true the scan runs on the background worker and the task ID is returned.
// @Tags maintenance
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   async query bool false "Run on the background worker"
// @Success 200 {object} domain.ProjectRepairReport
// @Success 202 {object} map[string]string
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/maintenance/project-repair [post]
func (h *projectHandler) repairProjects(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	companyID := c.Param("company_id")
	logger := middleware.GetLoggerFromCtx(ctx)

	if c.Query("async") == "true" && h.repairQueue != nil {
		if err := h.authorizer.AuthorizeUserAction(ctx, userID, companyID, domain.RoleAdmin); err != nil {
			respondError(c, err, "Failed to authorize repair")
			return
		}
		taskID, err := h.repairQueue.EnqueueProjectRepair(ctx, companyID, userID)
		if err != nil {
			respondError(c, err, "Failed to schedule repair")
			return
		}
		logger.Info("Project repair scheduled", slog.String("company_id", companyID), slog.String("task_id", taskID))
		c.JSON(http.StatusAccepted, gin.H{"taskID": taskID})
		return
	}

	report, err := h.projectService.RepairProjectDrift(ctx, companyID, userID)
	if err != nil {
		respondError(c, err, "Failed to repair projects")
		return
	}
	if len(report.Repaired) > 0 {
		logger.Warn("Project drift repaired", slog.String("company_id", companyID), slog.Int("repaired", len(report.Repaired)))
	}
	c.JSON(http.StatusOK, report)
}
