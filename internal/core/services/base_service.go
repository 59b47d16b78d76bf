package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	portssvc "github.com/revlo/revlo_ledger/internal/core/ports/services"
	"github.com/revlo/revlo_ledger/internal/middleware"
)

// SystemUserID is recorded as the actor of changes made by background jobs.
const SystemUserID = "system"

// BaseService provides common functionality for all services
type BaseService struct {
	CompanyAuthorizer portssvc.CompanyAuthorizerSvc
	Clock             func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks if a user has the required role for a company
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, companyID string, requiredRole domain.UserCompanyRole) error {
	if userID == "" {
		return apperrors.NewLedgerError(apperrors.KindUnauthorized, "authorize", nil)
	}
	if s.CompanyAuthorizer != nil {
		return s.CompanyAuthorizer.AuthorizeUserAction(ctx, userID, companyID, requiredRole)
	}
	s.LogDebug(ctx, "No company authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("company_id", companyID),
		slog.String("required_role", string(requiredRole)))
	return nil
}

// now returns the current time in UTC, or the injected clock's time.
func (s *BaseService) now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// ensureSameCompany reports a cross-tenant reference.
func ensureSameCompany(entity, id, companyID, ownerCompanyID string) error {
	if companyID != ownerCompanyID {
		return apperrors.NewCrossTenantError(entity, id)
	}
	return nil
}

// wrapLookupError turns a repository miss into a NotFound naming the entity.
func wrapLookupError(entity, id string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError(entity, id)
	}
	return fmt.Errorf("failed to load %s %s: %w", entity, id, err)
}
