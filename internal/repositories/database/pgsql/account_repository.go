package pgsql

import (
	"context"
	"slices"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	portsrepo "github.com/revlo/revlo_ledger/internal/core/ports/repositories"
	"github.com/revlo/revlo_ledger/internal/models"
	"github.com/revlo/revlo_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{db: pool}}
}

// Ensure PgxAccountRepository implements the account ports
var (
	_ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)
	_ portsrepo.AccountTxSupport        = (*PgxAccountRepository)(nil)
)

const selectAccountFields = `
	account_id, company_id, name, account_type, currency_code, description, is_active,
	created_at, created_by, last_updated_at, last_updated_by, balance
`

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, company_id, name, account_type, currency_code, description, is_active,
			created_at, created_by, last_updated_at, last_updated_by, balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db.Exec(ctx, query,
		m.AccountID, m.CompanyID, m.Name, m.AccountType, m.CurrencyCode, m.Description, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Balance,
	)
	return translateError(err, "save account %s", m.AccountID)
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	rows, err := r.db.Query(ctx, `SELECT `+selectAccountFields+` FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return nil, translateError(err, "find account %s", accountID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, translateError(err, "find account %s", accountID)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// ListAccounts retrieves a page of accounts for a company ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	query := `SELECT ` + selectAccountFields + `
		FROM accounts
		WHERE company_id = $1
		ORDER BY name, account_id
		LIMIT $2 OFFSET $3;`
	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, translateError(err, "list accounts of company %s", companyID)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, translateError(err, "scan accounts of company %s", companyID)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// FindAccountsByIDsForUpdate locks the accounts in ascending id order so that
// concurrent transfers between the same pair cannot deadlock.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	ids := slices.Clone(accountIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	query := `SELECT ` + selectAccountFields + `
		FROM accounts
		WHERE account_id = ANY($1)
		ORDER BY account_id
		FOR UPDATE;`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, translateError(err, "lock accounts")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, translateError(err, "scan locked accounts")
	}

	accounts := make(map[string]domain.Account, len(ms))
	for _, m := range ms {
		accounts[m.AccountID] = mapping.ToDomainAccount(m)
	}
	for _, id := range ids {
		if _, ok := accounts[id]; !ok {
			return nil, apperrors.NewNotFoundError("account", id)
		}
	}
	return accounts, nil
}

// AdjustAccountBalance adds delta to the stored balance in a single statement.
func (r *PgxAccountRepository) AdjustAccountBalance(ctx context.Context, accountID string, delta decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1
		RETURNING balance;
	`
	var balance decimal.Decimal
	if err := r.db.QueryRow(ctx, query, accountID, delta, now, userID).Scan(&balance); err != nil {
		return decimal.Zero, translateError(err, "adjust balance of account %s", accountID)
	}
	return balance, nil
}

// SetAccountBalance overwrites the stored balance.
func (r *PgxAccountRepository) SetAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, accountID, balance, now, userID)
	if err != nil {
		return translateError(err, "set balance of account %s", accountID)
	}
	return expectOneRow(tag, "account", accountID)
}
