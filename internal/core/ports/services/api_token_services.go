package services

import (
	"context"
	"time"

	"github.com/revlo/revlo_ledger/internal/core/domain"
)

// APITokenSvc manages the API tokens accepted in the X-API-Key header.
// A token reads rvl_<id>.<secret>; only a bcrypt hash of the secret is stored.
type APITokenSvc interface {
	// CreateToken issues a token for userID. The plaintext rvl_<id>.<secret>
	// string is returned once and cannot be recovered later. A nil expiresIn
	// means the token never expires.
	CreateToken(ctx context.Context, userID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error)

	ListTokens(ctx context.Context, userID string) ([]domain.APIToken, error)

	// RevokeToken deletes one token. Tokens owned by another user are NOT_FOUND.
	RevokeToken(ctx context.Context, userID, tokenID string) error

	RevokeAllTokens(ctx context.Context, userID string) error

	// ValidateToken parses an rvl_<id>.<secret> string, checks expiry and the
	// secret hash, and returns the owning user's ID. Any mismatch is UNAUTHORIZED.
	// A successful check touches last_used_at on a best-effort basis.
	ValidateToken(ctx context.Context, tokenString string) (string, error)
}
