package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectOnHold    ProjectStatus = "ON_HOLD"
)

// IsValid reports whether s is a known project status.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

// Project is a customer engagement with an agreed price. RemainingAmount is a
// cached field kept in step with AgreementAmount and AdvancePaid.
type Project struct {
	ProjectID       string          `json:"projectID"`
	CompanyID       string          `json:"companyID"`
	CustomerID      *string         `json:"customerID,omitempty"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	AgreementAmount decimal.Decimal `json:"agreementAmount"`
	AdvancePaid     decimal.Decimal `json:"advancePaid"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Status          ProjectStatus   `json:"status"`
	AuditFields
}

// ProjectRecalculation is the outcome of recomputing a project's cached fields.
type ProjectRecalculation struct {
	ProjectID         string          `json:"projectID"`
	PreviousRemaining decimal.Decimal `json:"previousRemaining"`
	RemainingAmount   decimal.Decimal `json:"remainingAmount"`
	PreviousStatus    ProjectStatus   `json:"previousStatus"`
	Status            ProjectStatus   `json:"status"`
}

// Changed reports whether the recalculation differs from the stored values.
func (r ProjectRecalculation) Changed() bool {
	return !r.PreviousRemaining.Equal(r.RemainingAmount) || r.PreviousStatus != r.Status
}

// Recalculate derives the remaining amount, clamped at zero, and the status
// that follows from it. Only ACTIVE projects complete automatically.
func (p Project) Recalculate() ProjectRecalculation {
	remaining := p.AgreementAmount.Sub(p.AdvancePaid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	status := p.Status
	if status == ProjectActive && !remaining.IsPositive() {
		status = ProjectCompleted
	}
	return ProjectRecalculation{
		ProjectID:         p.ProjectID,
		PreviousRemaining: p.RemainingAmount,
		RemainingAmount:   remaining,
		PreviousStatus:    p.Status,
		Status:            status,
	}
}

// CanTransitionTo reports whether a manual status change is allowed.
// COMPLETED is terminal; ACTIVE and ON_HOLD may swap.
func (p Project) CanTransitionTo(next ProjectStatus) error {
	if !next.IsValid() {
		return fmt.Errorf("unknown project status %q", next)
	}
	if p.Status == next {
		return nil
	}
	switch {
	case p.Status == ProjectCompleted:
		return fmt.Errorf("project %s is completed and cannot change status", p.ProjectID)
	case next == ProjectCompleted:
		return fmt.Errorf("project %s completes only when fully paid", p.ProjectID)
	}
	return nil
}

// ProjectRepairReport summarises a drift repair scan.
type ProjectRepairReport struct {
	CompanyID string                 `json:"companyID"`
	Scanned   int                    `json:"scanned"`
	Repaired  []ProjectRecalculation `json:"repaired"`
}
