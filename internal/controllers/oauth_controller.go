package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/franciscosanchezn/fbb-mcp/internal/auth"
	"github.com/franciscosanchezn/fbb-mcp/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	oauth2errors "github.com/go-oauth2/oauth2/v4/errors"
	"github.com/go-oauth2/oauth2/v4/server"
	"github.com/sirupsen/logrus"
)

// OAuthController exposes the authorization server endpoints backed by the
// password-gated provider.
type OAuthController struct {
	provider *auth.Provider
	scopes   []string
}

// NewOAuthController creates the controller. scopes are the scopes the
// server advertises and grants when a client asks for none.
func NewOAuthController(provider *auth.Provider, scopes ...string) *OAuthController {
	return &OAuthController{provider: provider, scopes: scopes}
}

// oauthError builds an RFC 6749 error body, falling back to the standard
// description for code.
func oauthError(code error, description string) models.OAuth2Error {
	if description == "" {
		description = oauth2errors.Descriptions[code]
	}
	return models.NewOAuth2Error(code.Error(), description)
}

// Authorize godoc
// @Summary Authorization endpoint
// @Description Validates the authorization request and redirects the resource owner to the password page
// @Tags OAuth2
// @Produce json
// @Param client_id query string true "Client ID"
// @Param response_type query string true "Must be code"
// @Param redirect_uri query string false "Registered redirect URI"
// @Param code_challenge query string true "PKCE challenge"
// @Param code_challenge_method query string true "Must be S256"
// @Param scope query string false "Space separated scopes"
// @Param state query string false "Opaque client state"
// @Param resource query string false "Target resource (RFC 8707)"
// @Success 302 "Redirect to /login"
// @Failure 400 {object} models.OAuth2Error
// @Router /authorize [get]
func (oc *OAuthController) Authorize(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, oauthError(oauth2errors.ErrInvalidRequest, "Malformed request"))
		return
	}
	form := c.Request.Form

	clientID := form.Get("client_id")
	if clientID == "" {
		c.JSON(http.StatusBadRequest, oauthError(oauth2errors.ErrInvalidRequest, "client_id is required"))
		return
	}
	client, err := oc.provider.Clients().GetClient(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, oauthError(oauth2errors.ErrInvalidClient, "Unknown client_id"))
		return
	}

	redirectURI := form.Get("redirect_uri")
	if redirectURI == "" && len(client.RedirectURIs) == 1 {
		redirectURI = client.RedirectURIs[0]
	}
	if redirectURI == "" || !client.HasRedirectURI(redirectURI) {
		c.JSON(http.StatusBadRequest, oauthError(oauth2errors.ErrInvalidRequest, "Unregistered redirect_uri"))
		return
	}

	// The redirect URI is trusted from here on; errors go back to the client.
	state := form.Get("state")
	if form.Get("response_type") != oauth2.Code.String() {
		redirectError(c, redirectURI, state, oauthError(oauth2errors.ErrUnsupportedResponseType, ""))
		return
	}
	challenge := form.Get("code_challenge")
	if challenge == "" {
		redirectError(c, redirectURI, state, oauthError(oauth2errors.ErrInvalidRequest, "code_challenge is required"))
		return
	}
	if form.Get("code_challenge_method") != oauth2.CodeChallengeS256.String() {
		redirectError(c, redirectURI, state, oauthError(oauth2errors.ErrInvalidRequest, "code_challenge_method must be S256"))
		return
	}

	scopes := strings.Fields(form.Get("scope"))
	if len(scopes) == 0 {
		scopes = slices.Clone(oc.scopes)
	}
	for _, scope := range scopes {
		if !slices.Contains(oc.scopes, scope) {
			redirectError(c, redirectURI, state, oauthError(oauth2errors.ErrInvalidScope, "Unsupported scope: "+scope))
			return
		}
	}

	params := auth.AuthorizationParams{
		CodeChallenge: challenge,
		RedirectURI:   redirectURI,
		Scopes:        scopes,
		State:         state,
		Resource:      form.Get("resource"),
	}
	if err := oc.provider.Authorize(c.Request.Context(), client, params, c); err != nil {
		log.WithError(err).WithField("client_id", clientID).Error("Authorization failed")
		redirectError(c, redirectURI, state, oauthError(oauth2errors.ErrServerError, ""))
	}
}

// redirectError reports an authorization error to the client's redirect URI.
func redirectError(c *gin.Context, redirectURI, state string, body models.OAuth2Error) {
	target, err := url.Parse(redirectURI)
	if err != nil {
		c.JSON(http.StatusBadRequest, body)
		return
	}
	query := target.Query()
	query.Set("error", body.Error)
	if body.ErrorDescription != "" {
		query.Set("error_description", body.ErrorDescription)
	}
	if state != "" {
		query.Set("state", state)
	}
	target.RawQuery = query.Encode()
	c.Redirect(http.StatusFound, target.String())
}

// authenticateClient resolves the calling client from client_secret_post or
// HTTP Basic credentials. Public clients only send client_id.
func (oc *OAuthController) authenticateClient(c *gin.Context) (oauth2.ClientInfo, bool) {
	var clients oauth2.ClientStore = oc.provider.Clients()

	handler := server.ClientFormHandler
	if _, _, ok := c.Request.BasicAuth(); ok {
		handler = server.ClientBasicHandler
	}

	clientID, secret, err := handler(c.Request)
	if err != nil {
		c.JSON(http.StatusUnauthorized, oauthError(oauth2errors.ErrInvalidClient, "Client credentials are required"))
		return nil, false
	}
	client, err := clients.GetByID(c.Request.Context(), clientID)
	if err != nil || !verifySecret(client, secret) {
		log.WithField("client_id", clientID).Warn("Client authentication failed")
		c.JSON(http.StatusUnauthorized, oauthError(oauth2errors.ErrInvalidClient, "Invalid client credentials"))
		return nil, false
	}
	return client, true
}

func verifySecret(client oauth2.ClientInfo, secret string) bool {
	if verifier, ok := client.(oauth2.ClientPasswordVerifier); ok {
		return verifier.VerifyPassword(secret)
	}
	return auth.VerifyPassword(secret, client.GetSecret())
}

// Token godoc
// @Summary Token endpoint
// @Description Exchanges an authorization code and PKCE verifier for an access token
// @Tags OAuth2
// @Accept x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "authorization_code"
// @Param code formData string true "Authorization code"
// @Param code_verifier formData string true "PKCE verifier"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string false "Client secret (confidential clients)"
// @Success 200 {object} auth.TokenResponse
// @Failure 400 {object} models.OAuth2Error
// @Failure 401 {object} models.OAuth2Error
// @Router /token [post]
func (oc *OAuthController) Token(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")

	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, oauthError(oauth2errors.ErrInvalidRequest, "Malformed request"))
		return
	}
	client, ok := oc.authenticateClient(c)
	if !ok {
		return
	}

	switch grantType := c.Request.PostForm.Get("grant_type"); grantType {
	case oauth2.AuthorizationCode.String():
		oc.exchangeCode(c, client)
	case oauth2.Refreshing.String():
		_, err := oc.provider.ExchangeRefreshToken(c.Request.Context(), client, c.Request.PostForm.Get("refresh_token"))
		c.JSON(http.StatusBadRequest, oauthError(oauth2errors.ErrUnsupportedGrantType, err.Error()))
	case "":
		c.JSON(http.StatusBadRequest, oauthError(oauth2errors.ErrInvalidRequest, "grant_type is required"))
	default:
		c.JSON(http.StatusBadRequest, oauthError(oauth2errors.ErrUnsupportedGrantType, ""))
	}
}

func (oc *OAuthController) exchangeCode(c *gin.Context, client oauth2.ClientInfo) {
	ctx := c.Request.Context()
	code := c.Request.PostForm.Get("code")
	verifier := c.Request.PostForm.Get("code_verifier")
	if code == "" || verifier == "" {
		c.JSON(http.StatusBadRequest, oauthError(oauth2errors.ErrInvalidRequest, "code and code_verifier are required"))
		return
	}

	challenge, err := oc.provider.ChallengeForAuthorizationCode(ctx, client, code)
	if err != nil {
		oc.tokenError(c, err)
		return
	}
	if !oauth2.CodeChallengeS256.Validate(challenge, verifier) {
		c.JSON(http.StatusBadRequest, oauthError(oauth2errors.ErrInvalidGrant, "code_verifier does not match the challenge"))
		return
	}

	token, err := oc.provider.ExchangeAuthorizationCode(ctx, client, code)
	if err != nil {
		oc.tokenError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

func (oc *OAuthController) tokenError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidCode), errors.Is(err, auth.ErrCodeExpired):
		c.JSON(http.StatusBadRequest, oauthError(oauth2errors.ErrInvalidGrant, err.Error()))
	default:
		log.WithError(err).Error("Token exchange failed")
		c.JSON(http.StatusInternalServerError, oauthError(oauth2errors.ErrServerError, ""))
	}
}

// Revoke godoc
// @Summary Revocation endpoint
// @Description Revokes an access token issued to the calling client (RFC 7009)
// @Tags OAuth2
// @Accept x-www-form-urlencoded
// @Produce json
// @Param token formData string true "Token to revoke"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string false "Client secret (confidential clients)"
// @Success 200 "Token revoked or unknown"
// @Failure 400 {object} models.OAuth2Error
// @Failure 401 {object} models.OAuth2Error
// @Router /revoke [post]
func (oc *OAuthController) Revoke(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, oauthError(oauth2errors.ErrInvalidRequest, "Malformed request"))
		return
	}
	client, ok := oc.authenticateClient(c)
	if !ok {
		return
	}

	token := c.Request.PostForm.Get("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, oauthError(oauth2errors.ErrInvalidRequest, "token is required"))
		return
	}
	if err := oc.provider.RevokeToken(c.Request.Context(), client, token); err != nil {
		log.WithError(err).WithField("client_id", client.GetID()).Error("Token revocation failed")
		c.JSON(http.StatusInternalServerError, oauthError(oauth2errors.ErrServerError, ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// AuthorizationServerMetadata godoc
// @Summary Authorization server metadata
// @Description RFC 8414 discovery document
// @Tags OAuth2
// @Produce json
// @Success 200 {object} models.AuthorizationServerMetadata
// @Router /.well-known/oauth-authorization-server [get]
func (oc *OAuthController) AuthorizationServerMetadata(c *gin.Context) {
	base := oc.provider.ServerURL()
	authMethods := []string{models.AuthMethodClientSecretPost, models.AuthMethodNone}
	c.JSON(http.StatusOK, models.AuthorizationServerMetadata{
		Issuer:                                 base + "/",
		AuthorizationEndpoint:                  base + "/authorize",
		TokenEndpoint:                          base + "/token",
		RegistrationEndpoint:                   base + "/register",
		RevocationEndpoint:                     base + "/revoke",
		ScopesSupported:                        oc.scopes,
		ResponseTypesSupported:                 []string{oauth2.Code.String()},
		GrantTypesSupported:                    []string{oauth2.AuthorizationCode.String()},
		TokenEndpointAuthMethodsSupported:      authMethods,
		RevocationEndpointAuthMethodsSupported: authMethods,
		CodeChallengeMethodsSupported:          []string{oauth2.CodeChallengeS256.String()},
	})
}

// ProtectedResourceMetadata godoc
// @Summary Protected resource metadata
// @Description RFC 9728 document describing the MCP endpoint
// @Tags OAuth2
// @Produce json
// @Success 200 {object} models.ProtectedResourceMetadata
// @Router /.well-known/oauth-protected-resource/mcp [get]
func (oc *OAuthController) ProtectedResourceMetadata(c *gin.Context) {
	base := oc.provider.ServerURL()
	c.JSON(http.StatusOK, models.ProtectedResourceMetadata{
		Resource:               oc.ResourceURL(),
		AuthorizationServers:   []string{base + "/"},
		ScopesSupported:        oc.scopes,
		BearerMethodsSupported: []string{"header"},
		ResourceName:           "Fantasy Baseball MCP",
	})
}

// ResourceURL is the protected MCP endpoint.
func (oc *OAuthController) ResourceURL() string {
	return oc.provider.ServerURL() + "/mcp"
}

// ResourceMetadataURL is advertised in WWW-Authenticate challenges.
func (oc *OAuthController) ResourceMetadataURL() string {
	return oc.provider.ServerURL() + "/.well-known/oauth-protected-resource/mcp"
}

func clientFields(client *models.RegisteredClient) logrus.Fields {
	return logrus.Fields{
		"client_id":   client.ClientID,
		"client_name": client.ClientName,
		"auth_method": client.TokenEndpointAuthMethod,
	}
}
