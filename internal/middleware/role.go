package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/franciscosanchezn/fbb-mcp/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireScope checks that the token verified by BearerAuth carries every
// required scope.
func RequireScope(required ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextScopes)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.NewOAuth2Error(models.ErrInvalidToken, "Request is not authenticated"))
			return
		}

		granted, ok := value.([]string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden,
				models.NewOAuth2Error(models.ErrInsufficientScope, "Invalid scope format"))
			return
		}

		have := make(map[string]struct{}, len(granted))
		for _, s := range granted {
			have[s] = struct{}{}
		}
		for _, s := range required {
			if _, ok := have[s]; !ok {
				description := "Insufficient scope, requires: " + strings.Join(required, " ")
				c.Header("WWW-Authenticate", fmt.Sprintf(`Bearer error="%s", error_description="%s", scope="%s"`,
					models.ErrInsufficientScope, description, strings.Join(required, " ")))
				c.AbortWithStatusJSON(http.StatusForbidden,
					models.NewOAuth2Error(models.ErrInsufficientScope, description))
				return
			}
		}

		c.Next()
	}
}
