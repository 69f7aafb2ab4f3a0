package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Token endpoint authentication methods supported by the registration endpoint.
const (
	AuthMethodClientSecretPost = "client_secret_post"
	AuthMethodNone             = "none"
)

// RegisteredClient is an OAuth client created through dynamic client
// registration (RFC 7591). SecretHash is a bcrypt hash; the plain secret is
// only returned once, in the registration response.
type RegisteredClient struct {
	ClientID                string    `json:"client_id"`
	SecretHash              string    `json:"-"`
	ClientName              string    `json:"client_name,omitempty"`
	RedirectURIs            []string  `json:"redirect_uris"`
	GrantTypes              []string  `json:"grant_types,omitempty"`
	ResponseTypes           []string  `json:"response_types,omitempty"`
	TokenEndpointAuthMethod string    `json:"token_endpoint_auth_method"`
	Scope                   string    `json:"scope,omitempty"`
	ClientURI               string    `json:"client_uri,omitempty"`
	LogoURI                 string    `json:"logo_uri,omitempty"`
	IssuedAt                time.Time `json:"-"`
}

// GetID implements oauth2.ClientInfo
func (c *RegisteredClient) GetID() string {
	return c.ClientID
}

// GetSecret implements oauth2.ClientInfo. Only the hash is kept.
func (c *RegisteredClient) GetSecret() string {
	return c.SecretHash
}

// GetDomain implements oauth2.ClientInfo
func (c *RegisteredClient) GetDomain() string {
	if len(c.RedirectURIs) == 0 {
		return ""
	}
	return c.RedirectURIs[0]
}

// IsPublic implements oauth2.ClientInfo
func (c *RegisteredClient) IsPublic() bool {
	return c.TokenEndpointAuthMethod == AuthMethodNone
}

// GetUserID implements oauth2.ClientInfo. The server has a single operator,
// so clients are not bound to users.
func (c *RegisteredClient) GetUserID() string {
	return ""
}

// VerifyPassword implements oauth2.ClientPasswordVerifier by comparing the
// presented secret with the stored bcrypt hash.
func (c *RegisteredClient) VerifyPassword(secret string) bool {
	if c.IsPublic() {
		return true
	}
	if c.SecretHash == "" || secret == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.SecretHash), []byte(secret)) == nil
}

// HasRedirectURI reports whether uri is one of the registered redirect URIs.
func (c *RegisteredClient) HasRedirectURI(uri string) bool {
	for _, registered := range c.RedirectURIs {
		if registered == uri {
			return true
		}
	}
	return false
}
