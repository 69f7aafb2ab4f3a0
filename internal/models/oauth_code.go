package models

import (
	"time"
)

// PendingAuthorization is an authorization request waiting for the
// resource owner to enter the password. It is keyed by the state token.
type PendingAuthorization struct {
	ClientID      string    `json:"client_id"`
	CodeChallenge string    `json:"code_challenge"`
	RedirectURI   string    `json:"redirect_uri"`
	Scopes        []string  `json:"scopes"`
	Resource      string    `json:"resource,omitempty"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func (p PendingAuthorization) Expiry() time.Time {
	return p.ExpiresAt
}

// AuthorizationCode is a single-use code issued after a successful login.
type AuthorizationCode struct {
	ClientID      string    `json:"client_id"`
	CodeChallenge string    `json:"code_challenge"`
	RedirectURI   string    `json:"redirect_uri"`
	Scopes        []string  `json:"scopes"`
	Resource      string    `json:"resource,omitempty"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func (c AuthorizationCode) Expiry() time.Time {
	return c.ExpiresAt
}
