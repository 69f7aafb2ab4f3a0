package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/franciscosanchezn/fbb-mcp/internal/auth"
	"github.com/franciscosanchezn/fbb-mcp/internal/models"
	"github.com/gin-gonic/gin"
)

// Keys set on the gin context by BearerAuth.
const (
	ContextClientID = "clientID"
	ContextScopes   = "scopes"
	ContextAuthInfo = "authInfo"
)

type authInfoKey struct{}

// AuthInfoFromContext returns the AuthInfo stored by BearerAuth on the
// request context.
func AuthInfoFromContext(ctx context.Context) (*auth.AuthInfo, bool) {
	info, ok := ctx.Value(authInfoKey{}).(*auth.AuthInfo)
	return info, ok
}

// BearerAuth validates "Authorization: Bearer <token>" against verifier
// (RFC 6750). Requests without a valid token are rejected with 401 and the
// next handler is never called. resourceMetadataURL, when set, is advertised
// in the WWW-Authenticate header (RFC 9728).
func BearerAuth(verifier auth.TokenVerifier, resourceMetadataURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondUnauthorized(c, resourceMetadataURL, models.ErrInvalidToken,
				"Missing Authorization header")
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			respondUnauthorized(c, resourceMetadataURL, models.ErrInvalidToken,
				"Invalid Authorization header format, expected 'Bearer TOKEN'")
			return
		}
		token = strings.TrimSpace(token)
		if token == "" {
			respondUnauthorized(c, resourceMetadataURL, models.ErrInvalidToken, "Bearer token is empty")
			return
		}

		info, err := verifier.VerifyAccessToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrTokenExpired) {
				respondUnauthorized(c, resourceMetadataURL, models.ErrInvalidToken, err.Error())
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				models.NewOAuth2Error(models.ErrServerError, "Failed to verify access token"))
			return
		}

		c.Set(ContextClientID, info.ClientID)
		c.Set(ContextScopes, info.Scopes)
		c.Set(ContextAuthInfo, info)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), authInfoKey{}, info))

		c.Next()
	}
}

// respondUnauthorized writes an RFC 6750 error response and aborts.
func respondUnauthorized(c *gin.Context, resourceMetadataURL, errorCode, description string) {
	c.Header("WWW-Authenticate", wwwAuthenticate(errorCode, description, resourceMetadataURL))
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewOAuth2Error(errorCode, description))
}

func wwwAuthenticate(errorCode, description, resourceMetadataURL string) string {
	value := fmt.Sprintf(`Bearer error="%s", error_description="%s"`, errorCode, strings.ReplaceAll(description, `"`, `'`))
	if resourceMetadataURL != "" {
		value += fmt.Sprintf(`, resource_metadata="%s"`, resourceMetadataURL)
	}
	return value
}
