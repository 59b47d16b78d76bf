package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	portssvc "github.com/revlo/revlo_ledger/internal/core/ports/services"
)

// ProjectRepairJob handles TaskProjectRepair.
type ProjectRepairJob struct {
	Service portssvc.ProjectMaintenanceSvc
	Logger  *slog.Logger
}

// NewProjectRepairJob initialises the project repair handler.
func NewProjectRepairJob(svc portssvc.ProjectMaintenanceSvc, logger *slog.Logger) *ProjectRepairJob {
	return &ProjectRepairJob{Service: svc, Logger: logger}
}

// Handle runs the repair. Malformed payloads are not retried.
func (j *ProjectRepairJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Service == nil {
		return errors.New("project repair: handler not configured")
	}
	var payload ProjectRepairPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		j.logger().Warn("discarding malformed project repair task", slog.String("error", err.Error()))
		return asynq.SkipRetry
	}
	if payload.CompanyID != "" && payload.RequestedBy == "" {
		j.logger().Warn("discarding project repair task without requester", slog.String("company_id", payload.CompanyID))
		return asynq.SkipRetry
	}

	start := time.Now()
	logger := j.logger().With(slog.String("company_id", payload.CompanyID))
	logger.Info("starting project repair")

	var (
		reports []domain.ProjectRepairReport
		err     error
	)
	if payload.CompanyID == "" {
		reports, err = j.Service.RepairAllCompanies(ctx)
	} else {
		var report *domain.ProjectRepairReport
		report, err = j.Service.RepairProjectDrift(ctx, payload.CompanyID, payload.RequestedBy)
		if report != nil {
			reports = append(reports, *report)
		}
	}

	scanned, repaired := 0, 0
	for _, r := range reports {
		scanned += r.Scanned
		repaired += len(r.Repaired)
		for _, fix := range r.Repaired {
			logger.Warn("project drift repaired",
				slog.String("company_id", r.CompanyID),
				slog.String("project_id", fix.ProjectID),
				slog.String("previous_remaining", fix.PreviousRemaining.String()),
				slog.String("remaining", fix.RemainingAmount.String()))
		}
	}
	if err != nil {
		logger.Error("project repair failed", slog.String("error", err.Error()), slog.Int("repaired", repaired))
		return err
	}

	logger.Info("completed project repair",
		slog.Int("companies", len(reports)),
		slog.Int("scanned", scanned),
		slog.Int("repaired", repaired),
		slog.Duration("duration", time.Since(start)))
	return nil
}

func (j *ProjectRepairJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskProjectRepair))
	}
	return slog.Default().With(slog.String("job", TaskProjectRepair))
}
