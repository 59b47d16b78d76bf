package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	portssvc "github.com/revlo/revlo_ledger/internal/core/ports/services"
	"github.com/revlo/revlo_ledger/internal/core/services"
	"github.com/revlo/revlo_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// CounterpartyServiceTestSuite defines the test suite for CounterpartyService
type CounterpartyServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockCounterpartyRepository
	mockTxns  *MockTransactionReader
	mockCache *MockDebtSummaryCache
	service   portssvc.CounterpartySvcFacade
	ctx       context.Context
}

func (s *CounterpartyServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockCounterpartyRepository)
	s.mockTxns = new(MockTransactionReader)
	s.mockCache = new(MockDebtSummaryCache)
	s.service = services.NewCounterpartyService(s.mockRepo, s.mockTxns, services.WithDebtSummaryCache(s.mockCache))
	s.ctx = context.Background()
}

func TestCounterpartyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CounterpartyServiceTestSuite))
}

func (s *CounterpartyServiceTestSuite) customer(id string) *domain.Counterparty {
	return &domain.Counterparty{CounterpartyID: id, CompanyID: "c1", Kind: domain.KindCustomer, Name: "Jane"}
}

func (s *CounterpartyServiceTestSuite) TestDebtSummary_CacheHitSkipsLog() {
	cached := &domain.DebtSummary{CounterpartyID: "cp1", TotalDebt: decimal.NewFromInt(50), RemainingDebt: decimal.NewFromInt(50)}
	s.mockRepo.On("FindCounterpartyByID", s.ctx, "cp1").Return(s.customer("cp1"), nil).Once()
	s.mockCache.On("Get", s.ctx, "c1", "cp1").Return(cached, int64(3), nil).Once()

	summary, err := s.service.GetCustomerDebtSummary(s.ctx, "c1", "cp1", "u1")
	s.Require().NoError(err)
	s.Equal(cached, summary)
	s.mockTxns.AssertNotCalled(s.T(), "ListTransactionsByCounterparty", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CounterpartyServiceTestSuite) TestDebtSummary_MissDerivesAndStoresUnderVersion() {
	rows := []domain.Transaction{
		{Type: domain.DebtTaken, Amount: decimal.NewFromInt(1000)},
		{Type: domain.DebtRepaid, Amount: decimal.NewFromInt(400)},
		{Type: domain.Income, Amount: decimal.NewFromInt(100), AppliesToDebt: true},
		{Type: domain.Income, Amount: decimal.NewFromInt(999)},
		{Type: domain.DebtRepaid, Amount: decimal.NewFromInt(500), IsReversed: true},
	}
	s.mockRepo.On("FindCounterpartyByID", s.ctx, "cp1").Return(s.customer("cp1"), nil).Once()
	s.mockCache.On("Get", s.ctx, "c1", "cp1").Return(nil, int64(7), nil).Once()
	s.mockTxns.On("ListTransactionsByCounterparty", mock.Anything, "c1", "cp1").Return(rows, nil).Once()
	s.mockCache.On("Set", mock.Anything, "c1", "cp1", int64(7), mock.MatchedBy(func(sum domain.DebtSummary) bool {
		return sum.RemainingDebt.Equal(decimal.NewFromInt(500))
	})).Return(nil).Once()

	summary, err := s.service.GetDebtSummary(s.ctx, "c1", "cp1", "u1")
	s.Require().NoError(err)
	s.True(summary.TotalDebt.Equal(decimal.NewFromInt(1000)))
	s.True(summary.TotalPaid.Equal(decimal.NewFromInt(500)))
	s.False(summary.IsFullyPaid)
	s.mockCache.AssertExpectations(s.T())
	s.mockTxns.AssertExpectations(s.T())
}

func (s *CounterpartyServiceTestSuite) TestDebtSummary_CacheFailureFallsBackToLog() {
	s.mockRepo.On("FindCounterpartyByID", s.ctx, "cp1").Return(s.customer("cp1"), nil).Once()
	s.mockCache.On("Get", s.ctx, "c1", "cp1").Return(nil, int64(0), errors.New("redis down")).Once()
	s.mockTxns.On("ListTransactionsByCounterparty", mock.Anything, "c1", "cp1").Return([]domain.Transaction{}, nil).Once()
	s.mockCache.On("Set", mock.Anything, "c1", "cp1", int64(0), mock.Anything).Return(errors.New("redis down")).Once()

	summary, err := s.service.GetCustomerDebtSummary(s.ctx, "c1", "cp1", "u1")
	s.Require().NoError(err)
	s.True(summary.IsFullyPaid)
}

func (s *CounterpartyServiceTestSuite) TestDebtSummary_NewerVersionDoesNotJoinStaleDerivation() {
	before := []domain.Transaction{{Type: domain.DebtTaken, Amount: decimal.NewFromInt(1000)}}
	after := append(before, domain.Transaction{Type: domain.DebtRepaid, Amount: decimal.NewFromInt(400)})
	started := make(chan struct{})
	release := make(chan struct{})

	s.mockRepo.On("FindCounterpartyByID", mock.Anything, "cp1").Return(s.customer("cp1"), nil)
	s.mockCache.On("Get", mock.Anything, "c1", "cp1").Return(nil, int64(0), nil).Once()
	s.mockCache.On("Get", mock.Anything, "c1", "cp1").Return(nil, int64(1), nil).Once()
	s.mockCache.On("Set", mock.Anything, "c1", "cp1", mock.Anything, mock.Anything).Return(nil)
	s.mockTxns.On("ListTransactionsByCounterparty", mock.Anything, "c1", "cp1").
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(before, nil).Once()
	s.mockTxns.On("ListTransactionsByCounterparty", mock.Anything, "c1", "cp1").Return(after, nil).Once()

	stale := make(chan *domain.DebtSummary, 1)
	go func() {
		summary, _ := s.service.GetCustomerDebtSummary(s.ctx, "c1", "cp1", "u1")
		stale <- summary
	}()
	<-started

	fresh, err := s.service.GetCustomerDebtSummary(s.ctx, "c1", "cp1", "u1")
	s.Require().NoError(err)
	s.True(fresh.RemainingDebt.Equal(decimal.NewFromInt(600)), "got %s", fresh.RemainingDebt)

	close(release)
	old := <-stale
	s.Require().NotNil(old)
	s.True(old.RemainingDebt.Equal(decimal.NewFromInt(1000)))
	s.mockCache.AssertCalled(s.T(), "Set", mock.Anything, "c1", "cp1", int64(1), mock.Anything)
}

func (s *CounterpartyServiceTestSuite) TestDebtSummary_CallerCancellationDoesNotFailSharedDerivation() {
	rows := []domain.Transaction{{Type: domain.DebtTaken, Amount: decimal.NewFromInt(250)}}
	started := make(chan struct{})
	release := make(chan struct{})
	flightErr := make(chan error, 1)

	s.mockRepo.On("FindCounterpartyByID", mock.Anything, "cp1").Return(s.customer("cp1"), nil)
	s.mockCache.On("Get", mock.Anything, "c1", "cp1").Return(nil, int64(2), nil)
	s.mockCache.On("Set", mock.Anything, "c1", "cp1", int64(2), mock.Anything).Return(nil)
	s.mockTxns.On("ListTransactionsByCounterparty", mock.Anything, "c1", "cp1").
		Run(func(args mock.Arguments) {
			close(started)
			<-release
			flightErr <- args.Get(0).(context.Context).Err()
		}).
		Return(rows, nil).Once()
	s.mockTxns.On("ListTransactionsByCounterparty", mock.Anything, "c1", "cp1").Return(rows, nil)

	ctx, cancel := context.WithCancel(s.ctx)
	first := make(chan error, 1)
	go func() {
		_, err := s.service.GetCustomerDebtSummary(ctx, "c1", "cp1", "u1")
		first <- err
	}()
	<-started
	cancel()
	select {
	case err := <-first:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		s.FailNow("cancelled caller did not return")
	}

	second := make(chan *domain.DebtSummary, 1)
	go func() {
		summary, _ := s.service.GetCustomerDebtSummary(s.ctx, "c1", "cp1", "u1")
		second <- summary
	}()
	close(release)

	s.NoError(<-flightErr)
	summary := <-second
	s.Require().NotNil(summary)
	s.True(summary.TotalDebt.Equal(decimal.NewFromInt(250)))
}

func (s *CounterpartyServiceTestSuite) TestDebtSummary_WithoutCacheDerivesEveryRead() {
	service := services.NewCounterpartyService(s.mockRepo, s.mockTxns)
	s.mockRepo.On("FindCounterpartyByID", s.ctx, "cp1").Return(s.customer("cp1"), nil)
	s.mockTxns.On("ListTransactionsByCounterparty", s.ctx, "c1", "cp1").Return([]domain.Transaction{}, nil).Twice()

	for range 2 {
		summary, err := service.GetCustomerDebtSummary(s.ctx, "c1", "cp1", "u1")
		s.Require().NoError(err)
		s.True(summary.IsFullyPaid)
	}
	s.mockTxns.AssertExpectations(s.T())
}

func (s *CounterpartyServiceTestSuite) TestDebtSummary_KindChecks() {
	vendor := &domain.Counterparty{CounterpartyID: "v1", CompanyID: "c1", Kind: domain.KindVendor}
	employee := &domain.Counterparty{CounterpartyID: "e1", CompanyID: "c1", Kind: domain.KindEmployee}
	s.mockRepo.On("FindCounterpartyByID", s.ctx, "v1").Return(vendor, nil)
	s.mockRepo.On("FindCounterpartyByID", s.ctx, "e1").Return(employee, nil)

	_, err := s.service.GetCustomerDebtSummary(s.ctx, "c1", "v1", "u1")
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))

	_, err = s.service.GetDebtSummary(s.ctx, "c1", "e1", "u1")
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))

	s.mockCache.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CounterpartyServiceTestSuite) TestDebtSummary_OtherCompanyIsCrossTenant() {
	s.mockRepo.On("FindCounterpartyByID", s.ctx, "cp9").Return(&domain.Counterparty{CounterpartyID: "cp9", CompanyID: "c2", Kind: domain.KindCustomer}, nil).Once()

	_, err := s.service.GetCustomerDebtSummary(s.ctx, "c1", "cp9", "u1")
	s.Equal(apperrors.KindCrossTenant, apperrors.KindOf(err))
}

func (s *CounterpartyServiceTestSuite) TestCreateCounterparty_Validation() {
	_, err := s.service.CreateCounterparty(s.ctx, "c1", dto.CreateCounterpartyRequest{Kind: "PARTNER", Name: "x"}, "u1")
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))

	_, err = s.service.CreateCounterparty(s.ctx, "c1", dto.CreateCounterpartyRequest{Kind: domain.KindVendor, Name: "  "}, "u1")
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))

	s.mockRepo.AssertNotCalled(s.T(), "SaveCounterparty", mock.Anything, mock.Anything)
}

func (s *CounterpartyServiceTestSuite) TestListCounterparties_PassesKindFilter() {
	kind := domain.KindVendor
	s.mockRepo.On("ListCounterparties", s.ctx, "c1", &kind, 20, 0).Return(nil, nil).Once()

	cps, err := s.service.ListCounterparties(s.ctx, "c1", "u1", dto.ListCounterpartiesParams{Kind: &kind, Limit: 20})
	s.Require().NoError(err)
	s.NotNil(cps)
	s.mockRepo.AssertExpectations(s.T())
}
