package models

// Error codes not covered by the go-oauth2 errors package (RFC 6750, RFC 7591).
const (
	ErrInvalidToken               = "invalid_token"
	ErrInsufficientScope          = "insufficient_scope"
	ErrInvalidClientMetadata      = "invalid_client_metadata"
	ErrInvalidRedirectURIMetadata = "invalid_redirect_uri"
	ErrServerError                = "server_error"
)

// OAuth2Error represents an OAuth2 error response (RFC 6749)
type OAuth2Error struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorURI         string `json:"error_uri,omitempty"`
}

// NewOAuth2Error creates a new OAuth2 error response
func NewOAuth2Error(error, description string) OAuth2Error {
	return OAuth2Error{
		Error:            error,
		ErrorDescription: description,
	}
}
