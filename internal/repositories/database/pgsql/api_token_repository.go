package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	portsrepo "github.com/revlo/revlo_ledger/internal/core/ports/repositories"
	"github.com/revlo/revlo_ledger/internal/models"
	"github.com/revlo/revlo_ledger/internal/utils/mapping"
)

type PgxAPITokenRepository struct {
	BaseRepository
}

// newPgxAPITokenRepository creates a new instance of PgxAPITokenRepository
func newPgxAPITokenRepository(pool *pgxpool.Pool) *PgxAPITokenRepository {
	return &PgxAPITokenRepository{BaseRepository: BaseRepository{db: pool}}
}

var _ portsrepo.APITokenRepository = (*PgxAPITokenRepository)(nil)

const (
	apiTokensTable = "api_tokens"

	selectAPITokenFields = `
		id, user_id, name, token_hash,
		last_used_at, expires_at, created_at, updated_at, deleted_at
	`

	insertAPITokenQuery = `
		INSERT INTO ` + apiTokensTable + ` (
			id, user_id, name, token_hash, expires_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	findAPITokenByIDQuery = `
		SELECT ` + selectAPITokenFields + `
		FROM ` + apiTokensTable + `
		WHERE id = $1 AND deleted_at IS NULL
	`

	findAPITokenByUserIDQuery = `
		SELECT ` + selectAPITokenFields + `
		FROM ` + apiTokensTable + `
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`

	touchAPITokenQuery = `
		UPDATE ` + apiTokensTable + `
		SET last_used_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	deleteAPITokenQuery = `
		UPDATE ` + apiTokensTable + `
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	deleteAPITokensByUserIDQuery = `
		UPDATE ` + apiTokensTable + `
		SET deleted_at = NOW()
		WHERE user_id = $1 AND deleted_at IS NULL
	`
)

// Create persists a new API token
func (r *PgxAPITokenRepository) Create(ctx context.Context, token *domain.APIToken) error {
	if token == nil {
		return errors.New("token cannot be nil")
	}
	m := mapping.ToModelAPIToken(*token)
	_, err := r.db.Exec(ctx, insertAPITokenQuery, m.ID, m.UserID, m.Name, m.TokenHash, m.ExpiresAt, m.CreatedAt, m.UpdatedAt)
	return translateError(err, "create api token %s", m.ID)
}

// FindByID retrieves an API token by its ID
func (r *PgxAPITokenRepository) FindByID(ctx context.Context, id string) (*domain.APIToken, error) {
	rows, err := r.db.Query(ctx, findAPITokenByIDQuery, id)
	if err != nil {
		return nil, translateError(err, "find api token %s", id)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.APIToken])
	if err != nil {
		return nil, translateError(err, "find api token %s", id)
	}
	token := mapping.ToDomainAPIToken(m)
	return &token, nil
}

// FindByUserID retrieves all API tokens for a specific user
func (r *PgxAPITokenRepository) FindByUserID(ctx context.Context, userID string) ([]domain.APIToken, error) {
	rows, err := r.db.Query(ctx, findAPITokenByUserIDQuery, userID)
	if err != nil {
		return nil, translateError(err, "list api tokens of user %s", userID)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.APIToken])
	if err != nil {
		return nil, translateError(err, "scan api tokens of user %s", userID)
	}
	return mapping.ToDomainAPITokenSlice(ms), nil
}

// TouchLastUsed records that a token was just used
func (r *PgxAPITokenRepository) TouchLastUsed(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, touchAPITokenQuery, id)
	if err != nil {
		return translateError(err, "touch api token %s", id)
	}
	return expectOneRow(tag, "api token", id)
}

// Delete removes an API token by ID (soft delete)
func (r *PgxAPITokenRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, deleteAPITokenQuery, id)
	if err != nil {
		return translateError(err, "delete api token %s", id)
	}
	return expectOneRow(tag, "api token", id)
}

// DeleteByUserID removes all API tokens for a specific user (soft delete)
func (r *PgxAPITokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, deleteAPITokensByUserIDQuery, userID)
	return translateError(err, "delete api tokens of user %s", userID)
}
