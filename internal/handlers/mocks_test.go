package handlers_test

import (
	"context"
	"time"

	"github.com/revlo/revlo_ledger/internal/core/domain"
	portssvc "github.com/revlo/revlo_ledger/internal/core/ports/services"
	"github.com/revlo/revlo_ledger/internal/dto"
	"github.com/revlo/revlo_ledger/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, companyID string, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, companyID string, userID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ReconcileAccount(ctx context.Context, companyID string, accountID string, userID string, repair bool) (*domain.AccountReconciliation, error) {
	args := m.Called(ctx, companyID, accountID, userID, repair)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountReconciliation), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) PostTransaction(ctx context.Context, companyID string, req dto.PostTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) TransferFunds(ctx context.Context, companyID string, req dto.TransferFundsRequest, userID string) (*domain.TransferResult, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferResult), args.Error(1)
}
func (m *MockLedgerService) DeleteTransfer(ctx context.Context, companyID string, transferGroupID string, userID string) error {
	return m.Called(ctx, companyID, transferGroupID, userID).Error(0)
}
func (m *MockLedgerService) DeleteTransaction(ctx context.Context, companyID string, transactionID string, userID string) error {
	return m.Called(ctx, companyID, transactionID, userID).Error(0)
}
func (m *MockLedgerService) ReverseTransaction(ctx context.Context, companyID string, transactionID string, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) UpdateTransactionAmount(ctx context.Context, companyID string, transactionID string, amount decimal.Decimal, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, transactionID, amount, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) GetTransactionByID(ctx context.Context, companyID string, transactionID string, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) ListTransactionsByAccount(ctx context.Context, companyID string, accountID string, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, companyID, accountID, userID, params)
	var next *string
	if v := args.Get(1); v != nil {
		next = v.(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), next, args.Error(2)
}
func (m *MockLedgerService) FindDuplicateTransactions(ctx context.Context, companyID string, userID string) ([]domain.DuplicateGroup, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DuplicateGroup), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock ProjectService ---
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) GetProjectByID(ctx context.Context, companyID string, projectID string, userID string) (*domain.Project, error) {
	args := m.Called(ctx, companyID, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) ListProjects(ctx context.Context, companyID string, userID string, limit int, offset int) ([]domain.Project, error) {
	args := m.Called(ctx, companyID, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectService) CreateProject(ctx context.Context, companyID string, req dto.CreateProjectRequest, userID string) (*domain.Project, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) UpdateProjectStatus(ctx context.Context, companyID string, projectID string, status domain.ProjectStatus, userID string) (*domain.Project, error) {
	args := m.Called(ctx, companyID, projectID, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) RecomputeProjectRemaining(ctx context.Context, companyID string, projectID string, userID string) (*domain.ProjectRecalculation, error) {
	args := m.Called(ctx, companyID, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectRecalculation), args.Error(1)
}
func (m *MockProjectService) RepairProjectDrift(ctx context.Context, companyID string, userID string) (*domain.ProjectRepairReport, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectRepairReport), args.Error(1)
}
func (m *MockProjectService) RepairAllCompanies(ctx context.Context) ([]domain.ProjectRepairReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectRepairReport), args.Error(1)
}

var _ portssvc.ProjectSvcFacade = (*MockProjectService)(nil)

// --- Mock CounterpartyService ---
type MockCounterpartyService struct {
	mock.Mock
}

func (m *MockCounterpartyService) GetCounterpartyByID(ctx context.Context, companyID string, counterpartyID string, userID string) (*domain.Counterparty, error) {
	args := m.Called(ctx, companyID, counterpartyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}
func (m *MockCounterpartyService) ListCounterparties(ctx context.Context, companyID string, userID string, params dto.ListCounterpartiesParams) ([]domain.Counterparty, error) {
	args := m.Called(ctx, companyID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Counterparty), args.Error(1)
}
func (m *MockCounterpartyService) CreateCounterparty(ctx context.Context, companyID string, req dto.CreateCounterpartyRequest, userID string) (*domain.Counterparty, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}
func (m *MockCounterpartyService) GetCustomerDebtSummary(ctx context.Context, companyID string, customerID string, userID string) (*domain.DebtSummary, error) {
	args := m.Called(ctx, companyID, customerID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebtSummary), args.Error(1)
}
func (m *MockCounterpartyService) GetVendorDebtSummary(ctx context.Context, companyID string, vendorID string, userID string) (*domain.DebtSummary, error) {
	args := m.Called(ctx, companyID, vendorID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebtSummary), args.Error(1)
}
func (m *MockCounterpartyService) GetDebtSummary(ctx context.Context, companyID string, counterpartyID string, userID string) (*domain.DebtSummary, error) {
	args := m.Called(ctx, companyID, counterpartyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebtSummary), args.Error(1)
}

var _ portssvc.CounterpartySvcFacade = (*MockCounterpartyService)(nil)

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) GetCompanyByID(ctx context.Context, companyID string, userID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockCompanyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) AddUserToCompany(ctx context.Context, addingUserID, companyID string, req dto.AddUserToCompanyRequest) error {
	return m.Called(ctx, addingUserID, companyID, req).Error(0)
}
func (m *MockCompanyService) AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.UserCompanyRole) error {
	return m.Called(ctx, userID, companyID, requiredRole).Error(0)
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

// --- Mock APITokenService ---
type MockAPITokenService struct {
	mock.Mock
}

func (m *MockAPITokenService) CreateToken(ctx context.Context, userID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error) {
	args := m.Called(ctx, userID, name, expiresIn)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.APIToken), args.Error(2)
}
func (m *MockAPITokenService) ListTokens(ctx context.Context, userID string) ([]domain.APIToken, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.APIToken), args.Error(1)
}
func (m *MockAPITokenService) RevokeToken(ctx context.Context, userID, tokenID string) error {
	return m.Called(ctx, userID, tokenID).Error(0)
}
func (m *MockAPITokenService) RevokeAllTokens(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *MockAPITokenService) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	args := m.Called(ctx, tokenString)
	return args.String(0), args.Error(1)
}

var _ portssvc.APITokenSvc = (*MockAPITokenService)(nil)

// --- Mock repair queue ---
type MockRepairQueue struct {
	mock.Mock
}

func (m *MockRepairQueue) EnqueueProjectRepair(ctx context.Context, companyID, requestedBy string) (string, error) {
	args := m.Called(ctx, companyID, requestedBy)
	return args.String(0), args.Error(1)
}

var _ handlers.ProjectRepairEnqueuer = (*MockRepairQueue)(nil)
