package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/revlo/revlo_ledger/internal/utils"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":        true,
	"/api/v1/health": true,
}

// PosthogMiddleware tracks successful mutating API calls. Request bodies are
// never forwarded, so amounts and descriptions stay out of analytics.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if c.Request.Method == http.MethodGet || len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/companies/:company_id/transfers" -> "post_api_v1_companies_company_id_transfers"
		route := strings.NewReplacer("/", "_", ":", "").Replace(strings.TrimPrefix(c.FullPath(), "/"))
		if route == "" {
			return
		}
		eventName := strings.ToLower(c.Request.Method) + "_" + route

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
			"auth_method": c.GetString(string(authMethodKey)),
		}
		if companyID := c.Param("company_id"); companyID != "" {
			props["company_id"] = companyID
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}
