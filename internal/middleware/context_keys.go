package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// contextKey is a private type for values stored in request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	// loggerCtxKey holds the request-scoped *slog.Logger.
	loggerCtxKey = contextKey("logger")
	// userIDKey holds the authenticated user's ID.
	userIDKey = contextKey("userID")
	// authMethodKey records which middleware authenticated the request.
	authMethodKey = contextKey("authMethod")
)

const (
	AuthMethodJWT      = "jwt"
	AuthMethodAPIToken = "api_token"
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok && userID != ""
	}
	return UserIDFromCtx(c.Request.Context())
}

// UserIDFromCtx retrieves the authenticated user ID from a standard context.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetLoggerFromCtx returns the request-scoped logger, or slog.Default when none is set.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithLogger returns a copy of ctx carrying logger. Background jobs use it to
// give services the same logging shape as HTTP requests.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// setAuthenticatedUser stores the user in both the Gin and request contexts and
// enriches the request logger.
func setAuthenticatedUser(c *gin.Context, userID, method string) {
	ctx := c.Request.Context()
	logger := GetLoggerFromCtx(ctx).With(slog.String("user_id", userID), slog.String("auth_method", method))
	ctx = context.WithValue(ctx, userIDKey, userID)
	ctx = context.WithValue(ctx, authMethodKey, method)
	ctx = WithLogger(ctx, logger)
	c.Request = c.Request.WithContext(ctx)
	c.Set(string(userIDKey), userID)
	c.Set(string(authMethodKey), method)
}

// isAuthenticated reports whether an earlier middleware already authenticated the request.
func isAuthenticated(c *gin.Context) bool {
	_, exists := c.Get(string(authMethodKey))
	return exists
}
