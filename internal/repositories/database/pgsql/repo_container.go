package pgsql

import (
	portsrepo "github.com/revlo/revlo_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newPgxAccountRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		ProjectRepo:      newPgxProjectRepository(dbPool),
		CounterpartyRepo: newPgxCounterpartyRepository(dbPool),
		CompanyRepo:      newPgxCompanyRepository(dbPool),
		APITokenRepo:     newPgxAPITokenRepository(dbPool),
		TxManager:        newPgxTxManager(dbPool),
	}
}
