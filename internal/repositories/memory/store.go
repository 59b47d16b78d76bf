// Package memory is a process-local storage driver. It implements every
// repository port over maps guarded by one RWMutex and is used for tests and
// local runs with STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/revlo/revlo_ledger/internal/core/domain"
	portsrepo "github.com/revlo/revlo_ledger/internal/core/ports/repositories"
)

// state holds every table. Its methods assume the caller holds the store lock.
type state struct {
	accounts       map[string]domain.Account
	transactions   map[string]domain.Transaction
	idempotency    map[string]string // companyID|key -> transaction id
	projects       map[string]domain.Project
	counterparties map[string]domain.Counterparty
	companies      map[string]domain.Company
	memberships    map[string]domain.UserCompany // userID|companyID
	apiTokens      map[string]domain.APIToken
}

func newState() *state {
	return &state{
		accounts:       make(map[string]domain.Account),
		transactions:   make(map[string]domain.Transaction),
		idempotency:    make(map[string]string),
		projects:       make(map[string]domain.Project),
		counterparties: make(map[string]domain.Counterparty),
		companies:      make(map[string]domain.Company),
		memberships:    make(map[string]domain.UserCompany),
		apiTokens:      make(map[string]domain.APIToken),
	}
}

// clone copies every table. Entities are values, so a shallow map copy is a snapshot.
func (s *state) clone() *state {
	return &state{
		accounts:       maps.Clone(s.accounts),
		transactions:   maps.Clone(s.transactions),
		idempotency:    maps.Clone(s.idempotency),
		projects:       maps.Clone(s.projects),
		counterparties: maps.Clone(s.counterparties),
		companies:      maps.Clone(s.companies),
		memberships:    maps.Clone(s.memberships),
		apiTokens:      maps.Clone(s.apiTokens),
	}
}

// Store is the in-memory driver.
type Store struct {
	mu sync.RWMutex
	st *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{st: newState()}
}

var (
	_ portsrepo.TransactionManager           = (*Store)(nil)
	_ portsrepo.AccountRepositoryFacade      = (*Store)(nil)
	_ portsrepo.TransactionRepositoryFacade  = (*Store)(nil)
	_ portsrepo.ProjectRepositoryFacade      = (*Store)(nil)
	_ portsrepo.CounterpartyRepositoryFacade = (*Store)(nil)
	_ portsrepo.CompanyRepositoryFacade      = (*Store)(nil)
	_ portsrepo.APITokenRepository           = (*Store)(nil)
	_ portsrepo.LedgerUnitOfWork             = (*state)(nil)
)

// NewRepositoryProvider exposes the store through every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      store,
		TransactionRepo:  store,
		ProjectRepo:      store,
		CounterpartyRepo: store,
		CompanyRepo:      store,
		APITokenRepo:     store,
		TxManager:        store,
	}
}

// WithTx runs fn with exclusive access to the store. If fn fails or panics
// the tables are restored to their state before the call.
func (s *Store) WithTx(ctx context.Context, fn portsrepo.LedgerTxFunc) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	committed := false
	defer func() {
		if !committed {
			s.st = snapshot
		}
	}()

	if err := fn(ctx, s.st); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	committed = true
	return nil
}

// read runs fn under the read lock.
func read[T any](s *Store, fn func(st *state) (T, error)) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.st)
}

// write runs fn under the write lock.
func (s *Store) write(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.st)
}

func membershipKey(userID, companyID string) string {
	return userID + "|" + companyID
}

func idempotencyKey(companyID, key string) string {
	return companyID + "|" + key
}
