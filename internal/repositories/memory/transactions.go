package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

func (s *state) InsertTransactions(_ context.Context, txns []domain.Transaction) error {
	for _, txn := range txns {
		if _, ok := s.transactions[txn.TransactionID]; ok {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, txn.TransactionID)
		}
		if txn.IdempotencyKey != nil {
			key := idempotencyKey(txn.CompanyID, *txn.IdempotencyKey)
			if _, ok := s.idempotency[key]; ok {
				return fmt.Errorf("%w: idempotency key %s", apperrors.ErrDuplicate, *txn.IdempotencyKey)
			}
			s.idempotency[key] = txn.TransactionID
		}
		s.transactions[txn.TransactionID] = txn
	}
	return nil
}

func (s *state) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	txn, ok := s.transactions[transactionID]
	if !ok {
		return nil, apperrors.NewNotFoundError("transaction", transactionID)
	}
	return &txn, nil
}

func (s *state) FindTransactionForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.FindTransactionByID(ctx, transactionID)
}

func (s *state) FindTransferLegsForUpdate(_ context.Context, companyID, transferGroupID string) ([]domain.Transaction, error) {
	legs := s.filter(func(t domain.Transaction) bool {
		return t.CompanyID == companyID && t.TransferGroupID != nil && *t.TransferGroupID == transferGroupID
	})
	sort.Slice(legs, func(i, j int) bool { return legs[i].TransactionID < legs[j].TransactionID })
	return legs, nil
}

func (s *state) ListTransactionsByCounterparty(_ context.Context, companyID, counterpartyID string) ([]domain.Transaction, error) {
	is := func(link *string) bool { return link != nil && *link == counterpartyID }
	txns := s.filter(func(t domain.Transaction) bool {
		return t.CompanyID == companyID && (is(t.CustomerID) || is(t.VendorID) || is(t.EmployeeID))
	})
	sort.Slice(txns, func(i, j int) bool { return newerFirst(txns[j], txns[i]) })
	return txns, nil
}

func (s *state) ListTransactionsByAccount(_ context.Context, companyID, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		cursor = &c
	}

	txns := s.filter(func(t domain.Transaction) bool {
		if t.CompanyID != companyID || t.AccountID == nil || *t.AccountID != accountID {
			return false
		}
		return cursor == nil || cursor.Before(t.TransactionDate, t.CreatedAt, t.TransactionID)
	})
	sort.Slice(txns, func(i, j int) bool { return newerFirst(txns[i], txns[j]) })

	var next *string
	if len(txns) > limit {
		last := txns[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{
			TransactionDate: last.TransactionDate,
			CreatedAt:       last.CreatedAt,
			ID:              last.TransactionID,
		})
		next = &token
		txns = txns[:limit]
	}
	return txns, next, nil
}

func (s *state) FindDuplicateGroups(_ context.Context, companyID string) ([]domain.DuplicateGroup, error) {
	txns := s.filter(func(t domain.Transaction) bool {
		return t.CompanyID == companyID && t.AccountID != nil && !t.IsReversed
	})
	sort.Slice(txns, func(i, j int) bool { return newerFirst(txns[j], txns[i]) })

	groups := make(map[string]*domain.DuplicateGroup)
	var order []string
	for _, t := range txns {
		key := strings.Join([]string{*t.AccountID, string(t.Type), t.Amount.String(), t.TransactionDate.UTC().Format(time.RFC3339Nano), t.Description}, "\x00")
		g, ok := groups[key]
		if !ok {
			g = &domain.DuplicateGroup{
				AccountID:       *t.AccountID,
				Type:            t.Type,
				Amount:          t.Amount,
				TransactionDate: t.TransactionDate,
				Description:     t.Description,
			}
			groups[key] = g
			order = append(order, key)
		}
		g.TransactionIDs = append(g.TransactionIDs, t.TransactionID)
	}

	result := []domain.DuplicateGroup{}
	for _, key := range order {
		if g := groups[key]; len(g.TransactionIDs) > 1 {
			result = append(result, *g)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].TransactionDate.Equal(result[j].TransactionDate) {
			return result[i].TransactionDate.After(result[j].TransactionDate)
		}
		return result[i].AccountID < result[j].AccountID
	})
	return result, nil
}

func (s *state) MarkTransactionReversed(_ context.Context, transactionID string, userID string, now time.Time) error {
	txn, ok := s.transactions[transactionID]
	if !ok {
		return apperrors.NewNotFoundError("transaction", transactionID)
	}
	txn.IsReversed = true
	txn.ReversedAt = &now
	txn.ReversedBy = &userID
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = userID
	s.transactions[transactionID] = txn
	return nil
}

func (s *state) UpdateTransactionAmount(_ context.Context, transactionID string, amount decimal.Decimal, userID string, now time.Time) error {
	txn, ok := s.transactions[transactionID]
	if !ok {
		return apperrors.NewNotFoundError("transaction", transactionID)
	}
	txn.Amount = amount
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = userID
	s.transactions[transactionID] = txn
	return nil
}

func (s *state) DeleteTransactions(_ context.Context, transactionIDs []string) error {
	for _, id := range transactionIDs {
		txn, ok := s.transactions[id]
		if !ok {
			return apperrors.NewNotFoundError("transaction", id)
		}
		if txn.IdempotencyKey != nil {
			delete(s.idempotency, idempotencyKey(txn.CompanyID, *txn.IdempotencyKey))
		}
		delete(s.transactions, id)
	}
	return nil
}

func (s *state) SumAccountEffects(_ context.Context, accountID string) (decimal.Decimal, error) {
	txns := s.filter(func(t domain.Transaction) bool { return t.AccountID != nil && *t.AccountID == accountID })
	return domain.SignedBalance(accountID, txns), nil
}

func (s *state) filter(keep func(domain.Transaction) bool) []domain.Transaction {
	var out []domain.Transaction
	for _, t := range s.transactions {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// newerFirst orders rows by date, creation time and id, all descending.
func newerFirst(a, b domain.Transaction) bool {
	c := pagination.Cursor{TransactionDate: a.TransactionDate, CreatedAt: a.CreatedAt, ID: a.TransactionID}
	return c.Before(b.TransactionDate, b.CreatedAt, b.TransactionID)
}

// FindTransactionByID retrieves a row by id.
func (s *Store) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return read(s, func(st *state) (*domain.Transaction, error) { return st.FindTransactionByID(ctx, transactionID) })
}

// ListTransactionsByAccount retrieves a keyset page of rows for an account, newest first.
func (s *Store) ListTransactionsByAccount(ctx context.Context, companyID, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.ListTransactionsByAccount(ctx, companyID, accountID, limit, nextToken)
}

// ListTransactionsByCounterparty returns every row linked to the counterparty, oldest first.
func (s *Store) ListTransactionsByCounterparty(ctx context.Context, companyID, counterpartyID string) ([]domain.Transaction, error) {
	return read(s, func(st *state) ([]domain.Transaction, error) {
		return st.ListTransactionsByCounterparty(ctx, companyID, counterpartyID)
	})
}

// FindDuplicateGroups reports rows that look like the same event recorded twice.
func (s *Store) FindDuplicateGroups(ctx context.Context, companyID string) ([]domain.DuplicateGroup, error) {
	return read(s, func(st *state) ([]domain.DuplicateGroup, error) { return st.FindDuplicateGroups(ctx, companyID) })
}
