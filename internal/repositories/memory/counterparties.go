package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
)

func (s *state) FindCounterpartyByID(_ context.Context, counterpartyID string) (*domain.Counterparty, error) {
	cp, ok := s.counterparties[counterpartyID]
	if !ok {
		return nil, apperrors.NewNotFoundError("counterparty", counterpartyID)
	}
	return &cp, nil
}

// SaveCounterparty persists a new counterparty.
func (s *Store) SaveCounterparty(_ context.Context, cp domain.Counterparty) error {
	return s.write(func(st *state) error {
		if _, ok := st.counterparties[cp.CounterpartyID]; ok {
			return fmt.Errorf("%w: counterparty %s", apperrors.ErrDuplicate, cp.CounterpartyID)
		}
		st.counterparties[cp.CounterpartyID] = cp
		return nil
	})
}

// FindCounterpartyByID retrieves a counterparty by id.
func (s *Store) FindCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error) {
	return read(s, func(st *state) (*domain.Counterparty, error) { return st.FindCounterpartyByID(ctx, counterpartyID) })
}

// ListCounterparties returns a page of counterparties ordered by name.
func (s *Store) ListCounterparties(_ context.Context, companyID string, kind *domain.CounterpartyKind, limit int, offset int) ([]domain.Counterparty, error) {
	return read(s, func(st *state) ([]domain.Counterparty, error) {
		var cps []domain.Counterparty
		for _, cp := range st.counterparties {
			if cp.CompanyID == companyID && (kind == nil || cp.Kind == *kind) {
				cps = append(cps, cp)
			}
		}
		sort.Slice(cps, func(i, j int) bool {
			if cps[i].Name != cps[j].Name {
				return cps[i].Name < cps[j].Name
			}
			return cps[i].CounterpartyID < cps[j].CounterpartyID
		})
		return page(cps, limit, offset), nil
	})
}
