package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/revlo/revlo_ledger/internal/core/ports/services"
)

// APITokenHeader carries machine-client credentials.
const APITokenHeader = "X-API-Key"

// APITokenAuth authenticates requests carrying an API token. Requests without
// the header, or with an invalid token, fall through to JWT authentication.
func APITokenAuth(tokenSvc services.APITokenSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(APITokenHeader)
		if token == "" {
			c.Next()
			return
		}

		userID, err := tokenSvc.ValidateToken(c.Request.Context(), token)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Warn("API token rejected", slog.String("error", err.Error()))
			c.Next()
			return
		}

		setAuthenticatedUser(c, userID, AuthMethodAPIToken)
		c.Next()
	}
}
