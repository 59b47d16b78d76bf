package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/dto"
	"github.com/revlo/revlo_ledger/internal/middleware"
)

// IdempotencyKeyHeader lets clients retry a mutation safely. It takes
// precedence over an idempotencyKey field in the body.
const IdempotencyKeyHeader = "Idempotency-Key"

// respondError maps err onto the API error shape. Internal failures answer
// with fallback instead of the raw error text; cross-tenant lookups answer as
// plain not-found.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := apperrors.KindOf(err)

	switch kind {
	case apperrors.KindInternal:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback, Code: string(kind)})
	case apperrors.KindCrossTenant:
		logger.Warn("Cross-tenant reference rejected", slog.String("error", err.Error()))
		c.JSON(kind.HTTPStatus(), dto.ErrorResponse{Error: apperrors.ErrNotFound.Error(), Code: string(apperrors.KindNotFound)})
	default:
		logger.Warn(fallback, slog.String("error", err.Error()), slog.String("code", string(kind)))
		c.JSON(kind.HTTPStatus(), dto.ErrorResponse{Error: err.Error(), Code: string(kind)})
	}
}

// respondBindError reports a request that failed binding or validation.
func respondBindError(c *gin.Context, err error, what string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + what + ": " + err.Error(), Code: string(apperrors.KindValidation)})
}

// currentUser returns the authenticated user, answering 401 when there is none.
func currentUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized", Code: string(apperrors.KindUnauthorized)})
		return "", false
	}
	return userID, true
}

// idempotencyKey prefers the header over the body field.
func idempotencyKey(c *gin.Context, body *string) *string {
	if key := c.GetHeader(IdempotencyKeyHeader); key != "" {
		return &key
	}
	return body
}
