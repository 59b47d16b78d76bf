package services

import (
	"context"
	"fmt"
	"time"

	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	portsrepo "github.com/revlo/revlo_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// OverdraftPolicy decides whether a debit may take an account below zero.
type OverdraftPolicy string

const (
	OverdraftAllow OverdraftPolicy = "allow"
	OverdraftBlock OverdraftPolicy = "block"
)

// ParseOverdraftPolicy accepts "allow" or "block"; empty means allow.
func ParseOverdraftPolicy(s string) (OverdraftPolicy, error) {
	switch OverdraftPolicy(s) {
	case "", OverdraftAllow:
		return OverdraftAllow, nil
	case OverdraftBlock:
		return OverdraftBlock, nil
	}
	return "", fmt.Errorf("unknown overdraft policy %q", s)
}

// effectDirection selects whether a row's effects are applied or undone.
type effectDirection int64

const (
	applyEffect   effectDirection = 1
	reverseEffect effectDirection = -1
)

// ledgerEffects applies the account and project consequences of log rows
// inside an open storage transaction.
type ledgerEffects struct {
	overdraft OverdraftPolicy
}

// adjustBalance increments a locked account atomically. Under the block policy
// a debit that leaves the balance negative fails, rolling the transaction back.
func (e ledgerEffects) adjustBalance(ctx context.Context, uow portsrepo.LedgerUnitOfWork, accountID string, delta decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error) {
	balance, err := uow.AdjustAccountBalance(ctx, accountID, delta, userID, now)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to adjust balance of account %s: %w", accountID, err)
	}
	if e.overdraft == OverdraftBlock && delta.IsNegative() && balance.IsNegative() {
		return decimal.Zero, apperrors.NewLedgerError(apperrors.KindInsufficientFunds, "adjust balance",
			fmt.Errorf("%w: account %s would fall to %s", apperrors.ErrInsufficientFunds, accountID, balance))
	}
	return balance, nil
}

// apply adds (or, with reverseEffect, removes) one row's effect on its account
// and its project. The row must not already be marked reversed.
func (e ledgerEffects) apply(ctx context.Context, uow portsrepo.LedgerUnitOfWork, txn domain.Transaction, dir effectDirection, userID string, now time.Time) error {
	sign := decimal.NewFromInt(int64(dir))
	if txn.AccountID != nil {
		delta := txn.Amount.Mul(decimal.NewFromInt(txn.Type.Sign())).Mul(sign)
		if _, err := e.adjustBalance(ctx, uow, *txn.AccountID, delta, userID, now); err != nil {
			return err
		}
	}
	return e.applyProject(ctx, uow, txn, dir, userID, now)
}

// applyAmountChange moves a row from prev.Amount to next.Amount. The account
// takes the net difference in one increment, so the overdraft check only sees
// the final balance. The project payment is undone and re-applied.
func (e ledgerEffects) applyAmountChange(ctx context.Context, uow portsrepo.LedgerUnitOfWork, prev, next domain.Transaction, userID string, now time.Time) error {
	if prev.AccountID != nil {
		delta := next.Amount.Sub(prev.Amount).Mul(decimal.NewFromInt(prev.Type.Sign()))
		if !delta.IsZero() {
			if _, err := e.adjustBalance(ctx, uow, *prev.AccountID, delta, userID, now); err != nil {
				return err
			}
		}
	}
	if err := e.applyProject(ctx, uow, prev, reverseEffect, userID, now); err != nil {
		return err
	}
	return e.applyProject(ctx, uow, next, applyEffect, userID, now)
}

// applyProject adds or removes a client payment on the row's project and
// recomputes it. Rows that are not project payments are ignored.
func (e ledgerEffects) applyProject(ctx context.Context, uow portsrepo.LedgerUnitOfWork, txn domain.Transaction, dir effectDirection, userID string, now time.Time) error {
	if txn.ProjectID == nil || !txn.Type.CountsAsProjectPayment() {
		return nil
	}
	sign := decimal.NewFromInt(int64(dir))
	if err := uow.AdjustProjectAdvance(ctx, *txn.ProjectID, txn.Amount.Mul(sign), userID, now); err != nil {
		return fmt.Errorf("failed to adjust advance of project %s: %w", *txn.ProjectID, err)
	}
	if _, err := recomputeProjectInTx(ctx, uow, *txn.ProjectID, userID, now); err != nil {
		return err
	}
	return nil
}

// recomputeProjectInTx locks a project, derives its remaining amount and status
// and writes them back when they changed.
func recomputeProjectInTx(ctx context.Context, uow portsrepo.LedgerUnitOfWork, projectID string, userID string, now time.Time) (*domain.ProjectRecalculation, error) {
	project, err := uow.FindProjectForUpdate(ctx, projectID)
	if err != nil {
		return nil, wrapLookupError("project", projectID, err)
	}
	recalc := project.Recalculate()
	if recalc.Changed() {
		if err := uow.SaveProjectRecalculation(ctx, recalc, userID, now); err != nil {
			return nil, fmt.Errorf("failed to save recalculation of project %s: %w", projectID, err)
		}
	}
	return &recalc, nil
}

// lockAccounts locks every distinct account referenced by txns, checks that
// they belong to companyID and returns them by id.
func lockAccounts(ctx context.Context, uow portsrepo.LedgerUnitOfWork, companyID string, txns ...domain.Transaction) (map[string]domain.Account, error) {
	seen := make(map[string]struct{})
	ids := make([]string, 0, len(txns))
	for _, txn := range txns {
		if txn.AccountID == nil {
			continue
		}
		if _, ok := seen[*txn.AccountID]; ok {
			continue
		}
		seen[*txn.AccountID] = struct{}{}
		ids = append(ids, *txn.AccountID)
	}
	if len(ids) == 0 {
		return map[string]domain.Account{}, nil
	}
	accounts, err := uow.FindAccountsByIDsForUpdate(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	for _, id := range ids {
		account, ok := accounts[id]
		if !ok {
			return nil, apperrors.NewNotFoundError("account", id)
		}
		if err := ensureSameCompany("account", id, companyID, account.CompanyID); err != nil {
			return nil, err
		}
	}
	return accounts, nil
}
