package services

import (
	"context"
	"errors"
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
	"github.com/shopspring/decimal"
)

const transferFeeDescription = "Transfer fee"

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	effects     ledgerEffects
	txManager   portsrepo.TransactionManager
	accountRepo portsrepo.AccountReader
	txnRepo     portsrepo.TransactionReader
	debtCache   portsrepo.DebtSummaryCache
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerCompanyAuthorizer adds company authorizer dependency
func WithLedgerCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) LedgerServiceOption {
	return func(s *ledgerService) {
		s.CompanyAuthorizer = authorizer
	}
}

// WithOverdraftPolicy sets how debits below zero are treated. The default is allow.
func WithOverdraftPolicy(policy OverdraftPolicy) LedgerServiceOption {
	return func(s *ledgerService) {
		s.effects.overdraft = policy
	}
}

// WithLedgerDebtCache makes committed mutations invalidate cached debt summaries.
func WithLedgerDebtCache(cache portsrepo.DebtSummaryCache) LedgerServiceOption {
	return func(s *ledgerService) {
		s.debtCache = cache
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(txManager portsrepo.TransactionManager, accountRepo portsrepo.AccountReader, txnRepo portsrepo.TransactionReader, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		effects:     ledgerEffects{overdraft: OverdraftAllow},
		txManager:   txManager,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) PostTransaction(ctx context.Context, companyID string, req dto.PostTransactionRequest, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	txn, err := s.newTransaction(companyID, req, userID)
	if err != nil {
		return nil, err
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context, uow portsrepo.LedgerUnitOfWork) error {
		accounts, err := lockAccounts(ctx, uow, companyID, txn)
		if err != nil {
			return err
		}
		if txn.AccountID != nil {
			account := accounts[*txn.AccountID]
			if !account.IsActive {
				return apperrors.NewValidationError("account %s is inactive", account.AccountID)
			}
			if txn.CurrencyCode == "" {
				txn.CurrencyCode = account.CurrencyCode
			} else if txn.CurrencyCode != account.CurrencyCode {
				return apperrors.NewValidationError("currency %s does not match account currency %s", txn.CurrencyCode, account.CurrencyCode)
			}
		} else if txn.CurrencyCode == "" {
			return apperrors.NewValidationError("currency is required when no account is given")
		}
		if !utils.HasValidScale(txn.Amount, txn.CurrencyCode) {
			return apperrors.NewValidationError("amount has more decimals than %s allows", txn.CurrencyCode)
		}

		if err := s.validateLinks(ctx, uow, companyID, txn); err != nil {
			return err
		}
		if err := uow.InsertTransactions(ctx, []domain.Transaction{txn}); err != nil {
			return s.insertError("post transaction", txn.IdempotencyKey, err)
		}
		return s.effects.apply(ctx, uow, txn, applyEffect, userID, txn.CreatedAt)
	})
	if err != nil {
		s.logMutationError(ctx, err, "Failed to post transaction", slog.String("company_id", companyID), slog.String("type", string(req.Type)))
		return nil, err
	}

	s.invalidateDebt(ctx, txn)
	s.LogInfo(ctx, "Transaction posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("company_id", companyID))
	return &txn, nil
}

func (s *ledgerService) TransferFunds(ctx context.Context, companyID string, req dto.TransferFundsRequest, userID string) (*domain.TransferResult, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}
	if req.FromAccountID == "" || req.ToAccountID == "" {
		return nil, apperrors.NewValidationError("both accounts are required")
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, apperrors.NewValidationError("cannot transfer to the same account")
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("transfer amount must be positive")
	}
	if req.Fee.IsNegative() {
		return nil, apperrors.NewValidationError("transfer fee cannot be negative")
	}

	now := s.now()
	date := now
	if req.TransactionDate != nil {
		date = req.TransactionDate.UTC()
	}
	groupID := uuid.NewString()
	fromID, toID := req.FromAccountID, req.ToAccountID
	audit := domain.NewAuditFields(userID, now)

	rows := []domain.Transaction{
		{
			TransactionID: uuid.NewString(), CompanyID: companyID, Type: domain.TransferOut, Amount: req.Amount,
			TransactionDate: date, Description: req.Description, AccountID: &fromID,
			TransferGroupID: &groupID, IdempotencyKey: normalizeOptional(req.IdempotencyKey), AuditFields: audit,
		},
		{
			TransactionID: uuid.NewString(), CompanyID: companyID, Type: domain.TransferIn, Amount: req.Amount,
			TransactionDate: date, Description: req.Description, AccountID: &toID,
			TransferGroupID: &groupID, AuditFields: audit,
		},
	}
	if req.Fee.IsPositive() {
		rows = append(rows, domain.Transaction{
			TransactionID: uuid.NewString(), CompanyID: companyID, Type: domain.Expense, Amount: req.Fee,
			TransactionDate: date, Description: transferFeeDescription, AccountID: &fromID,
			TransferGroupID: &groupID, AuditFields: audit,
		})
	}

	result := &domain.TransferResult{TransferGroupID: groupID, FromAccountID: fromID, ToAccountID: toID}
	err := s.txManager.WithTx(ctx, func(ctx context.Context, uow portsrepo.LedgerUnitOfWork) error {
		accounts, err := lockAccounts(ctx, uow, companyID, rows...)
		if err != nil {
			return err
		}
		from, to := accounts[fromID], accounts[toID]
		if !from.IsActive || !to.IsActive {
			return apperrors.NewValidationError("transfers require active accounts")
		}
		if from.CurrencyCode != to.CurrencyCode {
			return apperrors.NewValidationError("cannot transfer between %s and %s accounts", from.CurrencyCode, to.CurrencyCode)
		}
		for i := range rows {
			rows[i].CurrencyCode = from.CurrencyCode
			if !utils.HasValidScale(rows[i].Amount, from.CurrencyCode) {
				return apperrors.NewValidationError("amount has more decimals than %s allows", from.CurrencyCode)
			}
		}

		if err := uow.InsertTransactions(ctx, rows); err != nil {
			return s.insertError("transfer funds", rows[0].IdempotencyKey, err)
		}

		debit := req.Amount.Add(req.Fee).Neg()
		if result.FromBalance, err = s.effects.adjustBalance(ctx, uow, fromID, debit, userID, now); err != nil {
			return err
		}
		if result.ToBalance, err = s.effects.adjustBalance(ctx, uow, toID, req.Amount, userID, now); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		s.logMutationError(ctx, err, "Failed to transfer funds", slog.String("from_account_id", fromID), slog.String("to_account_id", toID))
		return nil, err
	}

	result.Transactions = rows
	s.LogInfo(ctx, "Funds transferred",
		slog.String("transfer_group_id", groupID),
		slog.String("from_account_id", fromID),
		slog.String("to_account_id", toID))
	return result, nil
}

func (s *ledgerService) DeleteTransfer(ctx context.Context, companyID string, transferGroupID string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return err
	}

	err := s.txManager.WithTx(ctx, func(ctx context.Context, uow portsrepo.LedgerUnitOfWork) error {
		legs, err := uow.FindTransferLegsForUpdate(ctx, companyID, transferGroupID)
		if err != nil {
			return err
		}
		if len(legs) == 0 {
			return apperrors.NewNotFoundError("transfer", transferGroupID)
		}
		if _, err := lockAccounts(ctx, uow, companyID, legs...); err != nil {
			return err
		}
		now := s.now()
		ids := make([]string, 0, len(legs))
		for _, leg := range legs {
			ids = append(ids, leg.TransactionID)
			if leg.IsReversed {
				continue
			}
			if err := s.effects.apply(ctx, uow, leg, reverseEffect, userID, now); err != nil {
				return err
			}
		}
		return uow.DeleteTransactions(ctx, ids)
	})
	if err != nil {
		s.logMutationError(ctx, err, "Failed to delete transfer", slog.String("transfer_group_id", transferGroupID))
		return err
	}

	s.LogInfo(ctx, "Transfer deleted", slog.String("transfer_group_id", transferGroupID))
	return nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, companyID string, transactionID string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return err
	}

	var deleted domain.Transaction
	err := s.txManager.WithTx(ctx, func(ctx context.Context, uow portsrepo.LedgerUnitOfWork) error {
		txn, err := s.lockTransaction(ctx, uow, companyID, transactionID)
		if err != nil {
			return err
		}
		if txn.IsTransferLeg() {
			return transferLegError("delete transaction", txn)
		}
		if !txn.IsReversed {
			if _, err := lockAccounts(ctx, uow, companyID, *txn); err != nil {
				return err
			}
			if err := s.effects.apply(ctx, uow, *txn, reverseEffect, userID, s.now()); err != nil {
				return err
			}
		}
		deleted = *txn
		return uow.DeleteTransactions(ctx, []string{transactionID})
	})
	if err != nil {
		s.logMutationError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}

	s.invalidateDebt(ctx, deleted)
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *ledgerService) ReverseTransaction(ctx context.Context, companyID string, transactionID string, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	var reversed domain.Transaction
	err := s.txManager.WithTx(ctx, func(ctx context.Context, uow portsrepo.LedgerUnitOfWork) error {
		txn, err := s.lockTransaction(ctx, uow, companyID, transactionID)
		if err != nil {
			return err
		}
		if txn.IsTransferLeg() {
			return transferLegError("reverse transaction", txn)
		}
		if txn.IsReversed {
			return apperrors.NewLedgerError(apperrors.KindConflict, "reverse transaction",
				fmt.Errorf("%w: transaction %s is already reversed", apperrors.ErrConflict, transactionID))
		}
		if _, err := lockAccounts(ctx, uow, companyID, *txn); err != nil {
			return err
		}
		now := s.now()
		if err := s.effects.apply(ctx, uow, *txn, reverseEffect, userID, now); err != nil {
			return err
		}
		if err := uow.MarkTransactionReversed(ctx, transactionID, userID, now); err != nil {
			return err
		}
		reversed = *txn
		reversed.IsReversed = true
		reversed.ReversedAt = &now
		reversed.ReversedBy = &userID
		reversed.LastUpdatedAt = now
		reversed.LastUpdatedBy = userID
		return nil
	})
	if err != nil {
		s.logMutationError(ctx, err, "Failed to reverse transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.invalidateDebt(ctx, reversed)
	s.LogInfo(ctx, "Transaction reversed", slog.String("transaction_id", transactionID))
	return &reversed, nil
}

func (s *ledgerService) UpdateTransactionAmount(ctx context.Context, companyID string, transactionID string, amount decimal.Decimal, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be positive")
	}

	var updated domain.Transaction
	err := s.txManager.WithTx(ctx, func(ctx context.Context, uow portsrepo.LedgerUnitOfWork) error {
		txn, err := s.lockTransaction(ctx, uow, companyID, transactionID)
		if err != nil {
			return err
		}
		if txn.IsTransferLeg() {
			return transferLegError("update transaction amount", txn)
		}
		if txn.IsReversed {
			return apperrors.NewLedgerError(apperrors.KindConflict, "update transaction amount",
				fmt.Errorf("%w: transaction %s is reversed", apperrors.ErrConflict, transactionID))
		}
		if !utils.HasValidScale(amount, txn.CurrencyCode) {
			return apperrors.NewValidationError("amount has more decimals than %s allows", txn.CurrencyCode)
		}
		if _, err := lockAccounts(ctx, uow, companyID, *txn); err != nil {
			return err
		}

		now := s.now()
		if err := uow.UpdateTransactionAmount(ctx, transactionID, amount, userID, now); err != nil {
			return err
		}
		updated = *txn
		updated.Amount = amount
		updated.LastUpdatedAt = now
		updated.LastUpdatedBy = userID
		return s.effects.applyAmountChange(ctx, uow, *txn, updated, userID, now)
	})
	if err != nil {
		s.logMutationError(ctx, err, "Failed to update transaction amount", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.invalidateDebt(ctx, updated)
	s.LogInfo(ctx, "Transaction amount updated", slog.String("transaction_id", transactionID))
	return &updated, nil
}

func (s *ledgerService) GetTransactionByID(ctx context.Context, companyID string, transactionID string, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, wrapLookupError("transaction", transactionID, err)
	}
	if err := ensureSameCompany("transaction", transactionID, companyID, txn.CompanyID); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *ledgerService) ListTransactionsByAccount(ctx context.Context, companyID string, accountID string, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, nil, wrapLookupError("account", accountID, err)
	}
	if err := ensureSameCompany("account", accountID, companyID, account.CompanyID); err != nil {
		return nil, nil, err
	}

	txns, next, err := s.txnRepo.ListTransactionsByAccount(ctx, companyID, accountID, params.Limit, params.NextToken)
	if err != nil {
		if apperrors.KindOf(err) != apperrors.KindValidation {
			s.LogError(ctx, err, "Failed to list transactions", slog.String("account_id", accountID))
		}
		return nil, nil, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, next, nil
}

func (s *ledgerService) FindDuplicateTransactions(ctx context.Context, companyID string, userID string) ([]domain.DuplicateGroup, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	groups, err := s.txnRepo.FindDuplicateGroups(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find duplicate transactions", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to find duplicate transactions: %w", err)
	}
	if groups == nil {
		return []domain.DuplicateGroup{}, nil
	}
	return groups, nil
}

// newTransaction validates a post request and builds the row to insert.
func (s *ledgerService) newTransaction(companyID string, req dto.PostTransactionRequest, userID string) (domain.Transaction, error) {
	if !req.Type.IsValid() {
		return domain.Transaction{}, apperrors.NewValidationError("unknown transaction type %q", req.Type)
	}
	if req.Type.IsTransferLeg() {
		return domain.Transaction{}, apperrors.NewValidationError("%s rows are created by transfers only", req.Type)
	}
	if !req.Amount.IsPositive() {
		return domain.Transaction{}, apperrors.NewValidationError("amount must be positive")
	}
	if req.AppliesToDebt && req.Type != domain.Income {
		return domain.Transaction{}, apperrors.NewValidationError("only INCOME rows can be applied to debt")
	}
	currencyCode := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if currencyCode != "" && !utils.IsValidCurrencyCode(currencyCode) {
		return domain.Transaction{}, apperrors.NewValidationError("unknown currency code %q", req.CurrencyCode)
	}

	now := s.now()
	date := now
	if req.TransactionDate != nil {
		date = req.TransactionDate.UTC()
	}
	return domain.Transaction{
		TransactionID:   uuid.NewString(),
		CompanyID:       companyID,
		Type:            req.Type,
		Amount:          req.Amount,
		CurrencyCode:    currencyCode,
		TransactionDate: date,
		Description:     req.Description,
		AccountID:       normalizeOptional(req.AccountID),
		ProjectID:       normalizeOptional(req.ProjectID),
		CustomerID:      normalizeOptional(req.CustomerID),
		VendorID:        normalizeOptional(req.VendorID),
		EmployeeID:      normalizeOptional(req.EmployeeID),
		ExpenseRef:      normalizeOptional(req.ExpenseRef),
		AppliesToDebt:   req.AppliesToDebt,
		IdempotencyKey:  normalizeOptional(req.IdempotencyKey),
		AuditFields:     domain.NewAuditFields(userID, now),
	}, nil
}

// validateLinks checks that every linked entity exists in the same company and,
// for counterparties, has the kind the link expects.
func (s *ledgerService) validateLinks(ctx context.Context, uow portsrepo.LedgerUnitOfWork, companyID string, txn domain.Transaction) error {
	if txn.ProjectID != nil {
		project, err := uow.FindProjectForUpdate(ctx, *txn.ProjectID)
		if err != nil {
			return wrapLookupError("project", *txn.ProjectID, err)
		}
		if err := ensureSameCompany("project", project.ProjectID, companyID, project.CompanyID); err != nil {
			return err
		}
	}

	links := []struct {
		id   *string
		kind domain.CounterpartyKind
	}{
		{txn.CustomerID, domain.KindCustomer},
		{txn.VendorID, domain.KindVendor},
		{txn.EmployeeID, domain.KindEmployee},
	}
	for _, link := range links {
		if link.id == nil {
			continue
		}
		entity := strings.ToLower(string(link.kind))
		cp, err := uow.FindCounterpartyByID(ctx, *link.id)
		if err != nil {
			return wrapLookupError(entity, *link.id, err)
		}
		if err := ensureSameCompany(entity, *link.id, companyID, cp.CompanyID); err != nil {
			return err
		}
		if cp.Kind != link.kind {
			return apperrors.NewValidationError("%s is a %s, not a %s", *link.id, cp.Kind, link.kind)
		}
	}
	return nil
}

// lockTransaction locks a row and rejects rows of other companies.
func (s *ledgerService) lockTransaction(ctx context.Context, uow portsrepo.LedgerUnitOfWork, companyID, transactionID string) (*domain.Transaction, error) {
	txn, err := uow.FindTransactionForUpdate(ctx, transactionID)
	if err != nil {
		return nil, wrapLookupError("transaction", transactionID, err)
	}
	if err := ensureSameCompany("transaction", transactionID, companyID, txn.CompanyID); err != nil {
		return nil, err
	}
	return txn, nil
}

// insertError explains a duplicate idempotency key.
func (s *ledgerService) insertError(op string, key *string, err error) error {
	if key != nil && errors.Is(err, apperrors.ErrDuplicate) {
		return apperrors.NewLedgerError(apperrors.KindConflict, op,
			fmt.Errorf("%w: idempotency key %q was already used", apperrors.ErrDuplicate, *key))
	}
	return err
}

// invalidateDebt bumps the cached debt summaries of the row's customer and vendor.
// Cache failures are logged, never returned: the mutation has already committed.
func (s *ledgerService) invalidateDebt(ctx context.Context, txn domain.Transaction) {
	if s.debtCache == nil {
		return
	}
	for _, id := range []*string{txn.CustomerID, txn.VendorID} {
		if id == nil {
			continue
		}
		if err := s.debtCache.Invalidate(ctx, txn.CompanyID, *id); err != nil {
			s.LogError(ctx, err, "Failed to invalidate debt summary", slog.String("counterparty_id", *id))
		}
	}
}

// logMutationError logs unexpected failures; expected client errors are logged at debug.
func (s *ledgerService) logMutationError(ctx context.Context, err error, msg string, keyvals ...any) {
	if apperrors.KindOf(err) == apperrors.KindInternal {
		s.LogError(ctx, err, msg, keyvals...)
		return
	}
	s.LogDebug(ctx, msg, append(keyvals, slog.String("error", err.Error()))...)
}

// transferLegError rejects single-row operations on a transfer leg.
func transferLegError(op string, txn *domain.Transaction) error {
	return apperrors.NewLedgerError(apperrors.KindValidation, op,
		fmt.Errorf("%w: transaction %s belongs to transfer %s; operate on the transfer instead",
			apperrors.ErrValidation, txn.TransactionID, *txn.TransferGroupID))
}

// normalizeOptional treats blank optional strings as absent.
func normalizeOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
