package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/revlo/revlo_ledger/internal/core/ports/repositories"
	"github.com/revlo/revlo_ledger/internal/middleware"
)

// PgxTxManager runs ledger mutations inside a single Postgres transaction.
type PgxTxManager struct {
	pool *pgxpool.Pool
}

func newPgxTxManager(pool *pgxpool.Pool) *PgxTxManager {
	return &PgxTxManager{pool: pool}
}

var _ portsrepo.TransactionManager = (*PgxTxManager)(nil)

// pgxUnitOfWork binds every repository to the same pgx.Tx.
type pgxUnitOfWork struct {
	*PgxAccountRepository
	*PgxTransactionRepository
	*PgxProjectRepository
	*PgxCounterpartyRepository
}

var _ portsrepo.LedgerUnitOfWork = (*pgxUnitOfWork)(nil)

// WithTx begins a transaction, runs fn and commits. Any error or panic in fn
// rolls the transaction back.
func (m *PgxTxManager) WithTx(ctx context.Context, fn portsrepo.LedgerTxFunc) error {
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// Rollback after a successful commit is a no-op returning ErrTxClosed.
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to roll back transaction", "error", rbErr.Error())
		}
	}()

	base := BaseRepository{db: tx}
	uow := &pgxUnitOfWork{
		PgxAccountRepository:      &PgxAccountRepository{BaseRepository: base},
		PgxTransactionRepository:  &PgxTransactionRepository{BaseRepository: base},
		PgxProjectRepository:      &PgxProjectRepository{BaseRepository: base},
		PgxCounterpartyRepository: &PgxCounterpartyRepository{BaseRepository: base},
	}
	if err := fn(ctx, uow); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
