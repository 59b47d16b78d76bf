package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	portsrepo "github.com/revlo/revlo_ledger/internal/core/ports/repositories"
	portssvc "github.com/revlo/revlo_ledger/internal/core/ports/services"
	"github.com/revlo/revlo_ledger/internal/dto"
	"github.com/revlo/revlo_ledger/internal/utils"
)

// openingBalanceDescription labels the INCOME row that seeds a new account.
const openingBalanceDescription = "Opening balance"

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	txManager   portsrepo.TransactionManager
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountCompanyAuthorizer adds company authorizer dependency
func WithAccountCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) AccountServiceOption {
	return func(s *accountService) {
		s.CompanyAuthorizer = authorizer
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, txManager portsrepo.TransactionManager, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
		txManager:   txManager,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("account name is required")
	}
	if !req.AccountType.IsValid() {
		return nil, apperrors.NewValidationError("unknown account type %q", req.AccountType)
	}
	currencyCode := strings.ToUpper(req.CurrencyCode)
	if !utils.IsValidCurrencyCode(currencyCode) {
		return nil, apperrors.NewValidationError("unknown currency code %q", req.CurrencyCode)
	}
	if req.OpeningBalance != nil {
		if req.OpeningBalance.IsNegative() {
			return nil, apperrors.NewValidationError("opening balance cannot be negative")
		}
		if !utils.HasValidScale(*req.OpeningBalance, currencyCode) {
			return nil, apperrors.NewValidationError("opening balance has more decimals than %s allows", currencyCode)
		}
	}

	now := s.now()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		CompanyID:    companyID,
		Name:         name,
		AccountType:  req.AccountType,
		CurrencyCode: currencyCode,
		Description:  req.Description,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(userID, now),
	}

	err := s.txManager.WithTx(ctx, func(ctx context.Context, uow portsrepo.LedgerUnitOfWork) error {
		if err := uow.SaveAccount(ctx, account); err != nil {
			return err
		}
		if req.OpeningBalance == nil || !req.OpeningBalance.IsPositive() {
			return nil
		}
		accountID := account.AccountID
		opening := domain.Transaction{
			TransactionID:   uuid.NewString(),
			CompanyID:       companyID,
			Type:            domain.Income,
			Amount:          *req.OpeningBalance,
			CurrencyCode:    currencyCode,
			TransactionDate: now,
			Description:     openingBalanceDescription,
			AccountID:       &accountID,
			AuditFields:     domain.NewAuditFields(userID, now),
		}
		if err := uow.InsertTransactions(ctx, []domain.Transaction{opening}); err != nil {
			return err
		}
		balance, err := uow.AdjustAccountBalance(ctx, accountID, opening.Amount, userID, now)
		if err != nil {
			return err
		}
		account.Balance = balance
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("company_id", companyID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, companyID string, accountID string, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.loadAccount(ctx, companyID, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, companyID string, userID string, limit int, offset int) ([]domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, companyID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) ReconcileAccount(ctx context.Context, companyID string, accountID string, userID string, repair bool) (*domain.AccountReconciliation, error) {
	required := domain.RoleReadOnly
	if repair {
		required = domain.RoleAdmin
	}
	if err := s.AuthorizeUser(ctx, userID, companyID, required); err != nil {
		return nil, err
	}
	if _, err := s.loadAccount(ctx, companyID, accountID); err != nil {
		return nil, err
	}

	var result domain.AccountReconciliation
	err := s.txManager.WithTx(ctx, func(ctx context.Context, uow portsrepo.LedgerUnitOfWork) error {
		locked, err := uow.FindAccountsByIDsForUpdate(ctx, []string{accountID})
		if err != nil {
			return wrapLookupError("account", accountID, err)
		}
		stored := locked[accountID].Balance
		derived, err := uow.SumAccountEffects(ctx, accountID)
		if err != nil {
			return err
		}
		result = domain.AccountReconciliation{
			AccountID:      accountID,
			StoredBalance:  stored,
			DerivedBalance: derived,
			Drift:          stored.Sub(derived),
		}
		if repair && !result.InSync() {
			if err := uow.SetAccountBalance(ctx, accountID, derived, userID, s.now()); err != nil {
				return err
			}
			result.Repaired = true
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to reconcile account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to reconcile account %s: %w", accountID, err)
	}

	if !result.InSync() {
		s.GetLogger(ctx).Warn("Account balance drift detected",
			slog.String("account_id", accountID),
			slog.String("drift", result.Drift.String()),
			slog.Bool("repaired", result.Repaired))
	}
	return &result, nil
}

// loadAccount fetches an account and rejects accounts of other companies.
func (s *accountService) loadAccount(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, wrapLookupError("account", accountID, err)
	}
	if err := ensureSameCompany("account", accountID, companyID, account.CompanyID); err != nil {
		return nil, err
	}
	return account, nil
}
