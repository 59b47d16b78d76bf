package repositories

import "context"

// LedgerTxFunc is the body of a storage transaction. Returning an error rolls
// every write back.
type LedgerTxFunc func(ctx context.Context, uow LedgerUnitOfWork) error

// TransactionManager runs a function inside one storage transaction with
// guaranteed rollback on error or panic.
type TransactionManager interface {
	WithTx(ctx context.Context, fn LedgerTxFunc) error
}

// LedgerUnitOfWork is the set of writes and locking reads available inside a
// storage transaction.
type LedgerUnitOfWork interface {
	AccountWriter
	AccountTxSupport
	TransactionTxSupport
	ProjectWriter
	ProjectTxSupport
	CounterpartyReader
}
