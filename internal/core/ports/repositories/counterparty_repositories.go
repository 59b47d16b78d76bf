package repositories

import (
	"context"

	"github.com/revlo/revlo_ledger/internal/core/domain"
)

// CounterpartyReader defines read operations for customers, vendors and employees
type CounterpartyReader interface {
	// FindCounterpartyByID retrieves a counterparty by id without tenant filtering.
	FindCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error)
}

// CounterpartyWriter defines write operations for counterparties
type CounterpartyWriter interface {
	SaveCounterparty(ctx context.Context, cp domain.Counterparty) error
}

// CounterpartyRepositoryFacade combines all counterparty-related repository interfaces
type CounterpartyRepositoryFacade interface {
	CounterpartyReader
	CounterpartyWriter

	// ListCounterparties returns a page of counterparties, optionally filtered by kind.
	ListCounterparties(ctx context.Context, companyID string, kind *domain.CounterpartyKind, limit int, offset int) ([]domain.Counterparty, error)
}
