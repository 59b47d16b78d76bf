package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

func (s *state) SaveAccount(_ context.Context, account domain.Account) error {
	if _, ok := s.accounts[account.AccountID]; ok {
		return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, account.AccountID)
	}
	s.accounts[account.AccountID] = account
	return nil
}

func (s *state) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, apperrors.NewNotFoundError("account", accountID)
	}
	return &acc, nil
}

func (s *state) ListAccounts(_ context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	var accounts []domain.Account
	for _, acc := range s.accounts {
		if acc.CompanyID == companyID {
			accounts = append(accounts, acc)
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].Name != accounts[j].Name {
			return accounts[i].Name < accounts[j].Name
		}
		return accounts[i].AccountID < accounts[j].AccountID
	})
	return page(accounts, limit, offset), nil
}

func (s *state) FindAccountsByIDsForUpdate(_ context.Context, accountIDs []string) (map[string]domain.Account, error) {
	ids := slices.Clone(accountIDs)
	slices.Sort(ids)
	accounts := make(map[string]domain.Account, len(ids))
	for _, id := range slices.Compact(ids) {
		acc, ok := s.accounts[id]
		if !ok {
			return nil, apperrors.NewNotFoundError("account", id)
		}
		accounts[id] = acc
	}
	return accounts, nil
}

func (s *state) AdjustAccountBalance(_ context.Context, accountID string, delta decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error) {
	acc, ok := s.accounts[accountID]
	if !ok {
		return decimal.Zero, apperrors.NewNotFoundError("account", accountID)
	}
	acc.Balance = acc.Balance.Add(delta)
	acc.LastUpdatedAt = now
	acc.LastUpdatedBy = userID
	s.accounts[accountID] = acc
	return acc.Balance, nil
}

func (s *state) SetAccountBalance(_ context.Context, accountID string, balance decimal.Decimal, userID string, now time.Time) error {
	acc, ok := s.accounts[accountID]
	if !ok {
		return apperrors.NewNotFoundError("account", accountID)
	}
	acc.Balance = balance
	acc.LastUpdatedAt = now
	acc.LastUpdatedBy = userID
	s.accounts[accountID] = acc
	return nil
}

// page applies limit and offset to an ordered slice.
func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// SaveAccount persists a new account.
func (s *Store) SaveAccount(ctx context.Context, account domain.Account) error {
	return s.write(func(st *state) error { return st.SaveAccount(ctx, account) })
}

// FindAccountByID retrieves an account by id.
func (s *Store) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return read(s, func(st *state) (*domain.Account, error) { return st.FindAccountByID(ctx, accountID) })
}

// ListAccounts retrieves a page of accounts ordered by name.
func (s *Store) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	return read(s, func(st *state) ([]domain.Account, error) { return st.ListAccounts(ctx, companyID, limit, offset) })
}
