package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	portsrepo "github.com/revlo/revlo_ledger/internal/core/ports/repositories"
	"github.com/revlo/revlo_ledger/internal/models"
	"github.com/revlo/revlo_ledger/internal/utils/mapping"
	"github.com/revlo/revlo_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// PgxTransactionRepository stores the transaction log.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{db: pool}}
}

var (
	_ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)
	_ portsrepo.TransactionTxSupport        = (*PgxTransactionRepository)(nil)
)

const selectTransactionFields = `
	transaction_id, company_id, type, amount, currency_code, transaction_date, description,
	account_id, project_id, customer_id, vendor_id, employee_id, expense_ref, applies_to_debt,
	transfer_group_id, idempotency_key, is_reversed, reversed_at, reversed_by,
	created_at, created_by, last_updated_at, last_updated_by
`

const insertTransactionQuery = `
	INSERT INTO transactions (
		transaction_id, company_id, type, amount, currency_code, transaction_date, description,
		account_id, project_id, customer_id, vendor_id, employee_id, expense_ref, applies_to_debt,
		transfer_group_id, idempotency_key, is_reversed, reversed_at, reversed_by,
		created_at, created_by, last_updated_at, last_updated_by
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
`

// InsertTransactions appends rows in one batch.
func (r *PgxTransactionRepository) InsertTransactions(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, txn := range txns {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(insertTransactionQuery,
			m.TransactionID, m.CompanyID, m.Type, m.Amount, m.CurrencyCode, m.TransactionDate, m.Description,
			m.AccountID, m.ProjectID, m.CustomerID, m.VendorID, m.EmployeeID, m.ExpenseRef, m.AppliesToDebt,
			m.TransferGroupID, m.IdempotencyKey, m.IsReversed, m.ReversedAt, m.ReversedBy,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	for _, txn := range txns {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return translateError(err, "insert transaction %s", txn.TransactionID)
		}
	}
	if err := br.Close(); err != nil {
		return translateError(err, "close transaction insert batch")
	}
	return nil
}

// FindTransactionByID retrieves a row by id.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return r.findOne(ctx, `SELECT `+selectTransactionFields+` FROM transactions WHERE transaction_id = $1;`, transactionID)
}

// FindTransactionForUpdate locks a row.
func (r *PgxTransactionRepository) FindTransactionForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return r.findOne(ctx, `SELECT `+selectTransactionFields+` FROM transactions WHERE transaction_id = $1 FOR UPDATE;`, transactionID)
}

func (r *PgxTransactionRepository) findOne(ctx context.Context, query, transactionID string) (*domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, transactionID)
	if err != nil {
		return nil, translateError(err, "find transaction %s", transactionID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, translateError(err, "find transaction %s", transactionID)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// FindTransferLegsForUpdate locks every row of a transfer group.
func (r *PgxTransactionRepository) FindTransferLegsForUpdate(ctx context.Context, companyID, transferGroupID string) ([]domain.Transaction, error) {
	query := `SELECT ` + selectTransactionFields + `
		FROM transactions
		WHERE company_id = $1 AND transfer_group_id = $2
		ORDER BY transaction_id
		FOR UPDATE;`
	return r.collect(ctx, query, "lock transfer "+transferGroupID, companyID, transferGroupID)
}

// ListTransactionsByCounterparty returns every row linked to the counterparty, oldest first.
func (r *PgxTransactionRepository) ListTransactionsByCounterparty(ctx context.Context, companyID, counterpartyID string) ([]domain.Transaction, error) {
	query := `SELECT ` + selectTransactionFields + `
		FROM transactions
		WHERE company_id = $1 AND (customer_id = $2 OR vendor_id = $2 OR employee_id = $2)
		ORDER BY transaction_date, created_at, transaction_id;`
	return r.collect(ctx, query, "list transactions of counterparty "+counterpartyID, companyID, counterpartyID)
}

func (r *PgxTransactionRepository) collect(ctx context.Context, query, op string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "%s", op)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, translateError(err, "%s", op)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// ListTransactionsByAccount retrieves a page of rows for an account using keyset pagination.
// It returns the rows, newest first, and a token for the next page.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, companyID, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + selectTransactionFields + `
		FROM transactions
		WHERE company_id = $1 AND account_id = $2`
	args := []any{companyID, accountID}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		query += ` AND (transaction_date, created_at, transaction_id) < ($3, $4, $5)`
		args = append(args, cursor.TransactionDate, cursor.CreatedAt, cursor.ID)
	}
	query += ` ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	txns, err := r.collect(ctx, query, "list transactions of account "+accountID, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(txns) > limit {
		last := txns[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{
			TransactionDate: last.TransactionDate,
			CreatedAt:       last.CreatedAt,
			ID:              last.TransactionID,
		})
		nextTokenVal = &token
		txns = txns[:limit]
	}
	return txns, nextTokenVal, nil
}

// FindDuplicateGroups reports non-reversed rows that share account, type,
// amount, date and description.
func (r *PgxTransactionRepository) FindDuplicateGroups(ctx context.Context, companyID string) ([]domain.DuplicateGroup, error) {
	query := `
		SELECT account_id, type, amount, transaction_date, description,
		       array_agg(transaction_id ORDER BY created_at, transaction_id) AS transaction_ids
		FROM transactions
		WHERE company_id = $1 AND account_id IS NOT NULL AND NOT is_reversed
		GROUP BY account_id, type, amount, transaction_date, description
		HAVING COUNT(*) > 1
		ORDER BY transaction_date DESC, account_id;
	`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, translateError(err, "find duplicate transactions of company %s", companyID)
	}
	groups, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DuplicateGroup, error) {
		var g domain.DuplicateGroup
		err := row.Scan(&g.AccountID, &g.Type, &g.Amount, &g.TransactionDate, &g.Description, &g.TransactionIDs)
		return g, err
	})
	if err != nil {
		return nil, translateError(err, "scan duplicate transactions of company %s", companyID)
	}
	return groups, nil
}

// MarkTransactionReversed flags a row as reversed.
func (r *PgxTransactionRepository) MarkTransactionReversed(ctx context.Context, transactionID string, userID string, now time.Time) error {
	query := `
		UPDATE transactions
		SET is_reversed = TRUE, reversed_at = $2, reversed_by = $3, last_updated_at = $2, last_updated_by = $3
		WHERE transaction_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, transactionID, now, userID)
	if err != nil {
		return translateError(err, "reverse transaction %s", transactionID)
	}
	return expectOneRow(tag, "transaction", transactionID)
}

// UpdateTransactionAmount replaces the amount of a row.
func (r *PgxTransactionRepository) UpdateTransactionAmount(ctx context.Context, transactionID string, amount decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE transactions
		SET amount = $2, last_updated_at = $3, last_updated_by = $4
		WHERE transaction_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, transactionID, amount, now, userID)
	if err != nil {
		return translateError(err, "update amount of transaction %s", transactionID)
	}
	return expectOneRow(tag, "transaction", transactionID)
}

// DeleteTransactions removes rows by id.
func (r *PgxTransactionRepository) DeleteTransactions(ctx context.Context, transactionIDs []string) error {
	if len(transactionIDs) == 0 {
		return nil
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = ANY($1);`, transactionIDs)
	if err != nil {
		return translateError(err, "delete transactions")
	}
	if int(tag.RowsAffected()) != len(transactionIDs) {
		return fmt.Errorf("%w: deleted %d of %d transactions", apperrors.ErrNotFound, tag.RowsAffected(), len(transactionIDs))
	}
	return nil
}

// SumAccountEffects replays the log for an account in SQL.
func (r *PgxTransactionRepository) SumAccountEffects(ctx context.Context, accountID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type IN ('INCOME', 'DEBT_REPAID', 'TRANSFER_IN') THEN amount ELSE -amount END), 0)
		FROM transactions
		WHERE account_id = $1 AND NOT is_reversed;
	`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, accountID).Scan(&total); err != nil {
		return decimal.Zero, translateError(err, "sum transactions of account %s", accountID)
	}
	return total, nil
}
