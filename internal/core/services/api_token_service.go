package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/core/ports/repositories"
	portssvc "github.com/revlo/revlo_ledger/internal/core/ports/services"
	"github.com/revlo/revlo_ledger/internal/utils"
)

// apiTokenSecretBytes is the entropy of a token secret.
const apiTokenSecretBytes = 32

// apiTokenService implements the APITokenSvc interface
type apiTokenService struct {
	BaseService
	tokenRepo repositories.APITokenRepository
}

// NewAPITokenService creates a new instance of apiTokenService
func NewAPITokenService(tokenRepo repositories.APITokenRepository) portssvc.APITokenSvc {
	return &apiTokenService{
		tokenRepo: tokenRepo,
	}
}

var _ portssvc.APITokenSvc = (*apiTokenService)(nil)

// CreateToken generates a new API token for the user
func (s *apiTokenService) CreateToken(ctx context.Context, userID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error) {
	if userID == "" {
		return "", nil, apperrors.NewLedgerError(apperrors.KindUnauthorized, "create token", nil)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, apperrors.NewValidationError("token name is required")
	}
	if expiresIn != nil && *expiresIn <= 0 {
		return "", nil, apperrors.NewValidationError("token expiry must be positive")
	}

	secret, err := utils.GenerateSecureRandomString(apiTokenSecretBytes)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash, err := utils.HashSecret(secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash token: %w", err)
	}

	now := s.now()
	var expiresAt *time.Time
	if expiresIn != nil {
		expiry := now.Add(*expiresIn)
		expiresAt = &expiry
	}

	apiToken := &domain.APIToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.tokenRepo.Create(ctx, apiToken); err != nil {
		s.LogError(ctx, err, "Failed to save API token", slog.String("user_id", userID))
		return "", nil, fmt.Errorf("failed to save token: %w", err)
	}

	s.LogInfo(ctx, "API token created", slog.String("token_id", apiToken.ID), slog.String("user_id", userID))
	// The plaintext is only available here; storage keeps the hash.
	return utils.FormatAPIToken(apiToken.ID, secret), apiToken, nil
}

// ListTokens returns all API tokens for a user
func (s *apiTokenService) ListTokens(ctx context.Context, userID string) ([]domain.APIToken, error) {
	if userID == "" {
		return nil, apperrors.NewLedgerError(apperrors.KindUnauthorized, "list tokens", nil)
	}
	tokens, err := s.tokenRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	if tokens == nil {
		return []domain.APIToken{}, nil
	}
	return tokens, nil
}

// RevokeToken deletes a specific API token for a user
func (s *apiTokenService) RevokeToken(ctx context.Context, userID, tokenID string) error {
	if userID == "" {
		return apperrors.NewLedgerError(apperrors.KindUnauthorized, "revoke token", nil)
	}
	token, err := s.tokenRepo.FindByID(ctx, tokenID)
	if err != nil {
		return wrapLookupError("api token", tokenID, err)
	}
	// Tokens of other users are reported as missing.
	if token.UserID != userID {
		return apperrors.NewNotFoundError("api token", tokenID)
	}
	if err := s.tokenRepo.Delete(ctx, tokenID); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	s.LogInfo(ctx, "API token revoked", slog.String("token_id", tokenID))
	return nil
}

// RevokeAllTokens deletes all API tokens for a user
func (s *apiTokenService) RevokeAllTokens(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.NewLedgerError(apperrors.KindUnauthorized, "revoke tokens", nil)
	}
	if err := s.tokenRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke all tokens: %w", err)
	}
	return nil
}

// ValidateToken checks a plaintext token and returns the id of its owner.
func (s *apiTokenService) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	invalid := func(reason string) error {
		return apperrors.NewLedgerError(apperrors.KindUnauthorized, "validate token", fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, reason))
	}

	tokenID, secret, err := utils.ParseAPIToken(tokenString)
	if err != nil {
		return "", invalid(err.Error())
	}
	token, err := s.tokenRepo.FindByID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", invalid("unknown token")
		}
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	if token.IsExpired() {
		return "", invalid("token has expired")
	}
	if !utils.CheckSecretHash(secret, token.TokenHash) {
		return "", invalid("token secret mismatch")
	}

	if err := s.tokenRepo.TouchLastUsed(ctx, token.ID); err != nil {
		s.LogError(ctx, err, "Failed to update token last used time", slog.String("token_id", token.ID))
	}
	return token.UserID, nil
}
