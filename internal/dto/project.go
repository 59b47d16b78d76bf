package dto

import (
	"time"

	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest defines the data needed to create a project.
type CreateProjectRequest struct {
	Name            string          `json:"name" binding:"required,max=200"`
	Description     string          `json:"description"`
	CustomerID      *string         `json:"customerID"`
	AgreementAmount decimal.Decimal `json:"agreementAmount"`
	AdvancePaid     decimal.Decimal `json:"advancePaid"` // Advance received before the project was recorded
}

// UpdateProjectStatusRequest changes a project's status manually.
type UpdateProjectStatusRequest struct {
	Status domain.ProjectStatus `json:"status" binding:"required,oneof=ACTIVE ON_HOLD COMPLETED"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ProjectID       string               `json:"projectID"`
	CompanyID       string               `json:"companyID"`
	CustomerID      *string              `json:"customerID,omitempty"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	AgreementAmount decimal.Decimal      `json:"agreementAmount"`
	AdvancePaid     decimal.Decimal      `json:"advancePaid"`
	RemainingAmount decimal.Decimal      `json:"remainingAmount"`
	Status          domain.ProjectStatus `json:"status"`
	CreatedAt       time.Time            `json:"createdAt"`
	LastUpdatedAt   time.Time            `json:"lastUpdatedAt"`
}

// ToProjectResponse converts a domain.Project to its DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:       p.ProjectID,
		CompanyID:       p.CompanyID,
		CustomerID:      p.CustomerID,
		Name:            p.Name,
		Description:     p.Description,
		AgreementAmount: p.AgreementAmount,
		AdvancePaid:     p.AdvancePaid,
		RemainingAmount: p.RemainingAmount,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
		LastUpdatedAt:   p.LastUpdatedAt,
	}
}

// ListProjectsParams defines query parameters for listing projects.
type ListProjectsParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListProjectsResponse wraps a page of projects.
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// RecomputeProjectResponse is the result of recomputing a project's remaining amount.
type RecomputeProjectResponse struct {
	ProjectID       string               `json:"projectID"`
	RemainingAmount decimal.Decimal      `json:"remainingAmount"`
	Status          domain.ProjectStatus `json:"status"`
	Changed         bool                 `json:"changed"`
}
