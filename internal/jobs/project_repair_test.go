package jobs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/jobs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProjectMaintenance struct {
	mock.Mock
}

func (m *MockProjectMaintenance) RepairProjectDrift(ctx context.Context, companyID string, userID string) (*domain.ProjectRepairReport, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectRepairReport), args.Error(1)
}

func (m *MockProjectMaintenance) RepairAllCompanies(ctx context.Context) ([]domain.ProjectRepairReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectRepairReport), args.Error(1)
}

func TestProjectRepairJob_AllCompanies(t *testing.T) {
	svc := new(MockProjectMaintenance)
	svc.On("RepairAllCompanies", mock.Anything).Return([]domain.ProjectRepairReport{
		{CompanyID: "c1", Scanned: 3, Repaired: []domain.ProjectRecalculation{{ProjectID: "p1", RemainingAmount: decimal.Zero}}},
		{CompanyID: "c2", Scanned: 1},
	}, nil).Once()

	task, err := jobs.NewProjectRepairTask(jobs.ProjectRepairPayload{})
	require.NoError(t, err)

	require.NoError(t, jobs.NewProjectRepairJob(svc, nil).Handle(context.Background(), task))
	svc.AssertExpectations(t)
}

func TestProjectRepairJob_SingleCompany(t *testing.T) {
	svc := new(MockProjectMaintenance)
	svc.On("RepairProjectDrift", mock.Anything, "c1", "admin-1").Return(&domain.ProjectRepairReport{CompanyID: "c1", Scanned: 2}, nil).Once()

	task, err := jobs.NewProjectRepairTask(jobs.ProjectRepairPayload{CompanyID: "c1", RequestedBy: "admin-1"})
	require.NoError(t, err)

	require.NoError(t, jobs.NewProjectRepairJob(svc, nil).Handle(context.Background(), task))
	svc.AssertExpectations(t)
}

func TestProjectRepairJob_FailureIsRetried(t *testing.T) {
	svc := new(MockProjectMaintenance)
	boom := errors.New("db down")
	svc.On("RepairAllCompanies", mock.Anything).Return(nil, boom).Once()

	task, err := jobs.NewProjectRepairTask(jobs.ProjectRepairPayload{})
	require.NoError(t, err)

	err = jobs.NewProjectRepairJob(svc, nil).Handle(context.Background(), task)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestProjectRepairJob_BadPayloadSkipsRetry(t *testing.T) {
	svc := new(MockProjectMaintenance)
	job := jobs.NewProjectRepairJob(svc, nil)

	err := job.Handle(context.Background(), asynq.NewTask(jobs.TaskProjectRepair, []byte("{not json")))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	err = job.Handle(context.Background(), asynq.NewTask(jobs.TaskProjectRepair, []byte(`{"companyID":"c1"}`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	svc.AssertNotCalled(t, "RepairAllCompanies", mock.Anything)
	svc.AssertNotCalled(t, "RepairProjectDrift", mock.Anything, mock.Anything, mock.Anything)
}

func TestProjectRepairJob_NotConfigured(t *testing.T) {
	var job *jobs.ProjectRepairJob
	assert.Error(t, job.Handle(context.Background(), asynq.NewTask(jobs.TaskProjectRepair, nil)))
}
