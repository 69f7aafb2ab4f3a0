package auth

import "errors"

// Errors returned by the provider. Messages are shown to the resource owner
// on the login error page and used as OAuth error descriptions.
var (
	ErrInvalidState        = errors.New("Invalid state")
	ErrWrongPassword       = errors.New("Wrong password")
	ErrInvalidCode         = errors.New("Invalid authorization code")
	ErrCodeExpired         = errors.New("Authorization code expired")
	ErrInvalidToken        = errors.New("Invalid token")
	ErrTokenExpired        = errors.New("Token expired")
	ErrRefreshNotSupported = errors.New("Refresh tokens not supported")
	ErrUnknownClient       = errors.New("Unknown client")
)
