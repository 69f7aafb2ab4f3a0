package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/franciscosanchezn/fbb-mcp/internal/metrics"
	"github.com/franciscosanchezn/fbb-mcp/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/sirupsen/logrus"
)

// Default lifetimes.
const (
	DefaultCodeTTL    = 300 * time.Second
	DefaultTokenTTL   = 86400 * time.Second
	DefaultPendingTTL = 600 * time.Second
)

// AuthorizationParams are the validated parameters of an authorization request.
type AuthorizationParams struct {
	CodeChallenge string
	RedirectURI   string
	Scopes        []string
	State         string
	Resource      string
}

// TokenResponse is the successful token endpoint body (RFC 6749 section 5.1).
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
}

// AuthInfo describes a verified bearer token.
type AuthInfo struct {
	Token     string    `json:"-"`
	ClientID  string    `json:"client_id"`
	Scopes    []string  `json:"scopes"`
	ExpiresAt time.Time `json:"expires_at"`
	Resource  string    `json:"resource,omitempty"`
}

// Redirector is the part of an HTTP response the provider needs to send the
// resource owner to the login page. *gin.Context satisfies it.
type Redirector interface {
	Redirect(code int, location string)
}

// TokenVerifier is what bearer authentication needs from the provider.
type TokenVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (*AuthInfo, error)
}

// Stores groups the three record stores used by the provider.
type Stores struct {
	Pending Store[models.PendingAuthorization]
	Codes   Store[models.AuthorizationCode]
	Tokens  Store[models.AccessToken]
}

// MemoryStores returns in-process stores for all three record kinds.
func MemoryStores() Stores {
	return Stores{
		Pending: NewMemoryStore[models.PendingAuthorization](),
		Codes:   NewMemoryStore[models.AuthorizationCode](),
		Tokens:  NewMemoryStore[models.AccessToken](),
	}
}

// Option configures a Provider.
type Option func(*Provider)

func WithStores(stores Stores) Option {
	return func(p *Provider) { p.stores = stores }
}

func WithClock(clock Clock) Option {
	return func(p *Provider) { p.clock = clock }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Provider) { p.metrics = m }
}

func WithClientStore(clients *ClientStore) Option {
	return func(p *Provider) { p.clients = clients }
}

// WithTTLs overrides the code, token and pending authorization lifetimes.
// Zero values keep the defaults.
func WithTTLs(code, token, pending time.Duration) Option {
	return func(p *Provider) {
		if code > 0 {
			p.codeTTL = code
		}
		if token > 0 {
			p.tokenTTL = token
		}
		if pending > 0 {
			p.pendingTTL = pending
		}
	}
}

// Provider is the password-gated OAuth authorization server. It moves an
// authorization attempt from pending, to code, to access token.
type Provider struct {
	serverURL  string
	password   string
	stores     Stores
	clients    *ClientStore
	clock      Clock
	metrics    *metrics.Metrics
	codeTTL    time.Duration
	tokenTTL   time.Duration
	pendingTTL time.Duration
}

// NewProvider creates a Provider. serverURL is the public base URL used to
// build the login redirect; password is the operator secret.
func NewProvider(serverURL, password string, opts ...Option) *Provider {
	p := &Provider{
		serverURL:  strings.TrimRight(serverURL, "/"),
		password:   password,
		stores:     MemoryStores(),
		clients:    NewClientStore(),
		clock:      RealClock(),
		codeTTL:    DefaultCodeTTL,
		tokenTTL:   DefaultTokenTTL,
		pendingTTL: DefaultPendingTTL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Clients returns the client registry.
func (p *Provider) Clients() *ClientStore {
	return p.clients
}

// ServerURL returns the base URL with trailing slashes removed.
func (p *Provider) ServerURL() string {
	return p.serverURL
}

// BeginAuthorization records a pending authorization and returns its state.
// A caller supplied state is used as is; otherwise a random one is generated.
func (p *Provider) BeginAuthorization(ctx context.Context, client oauth2.ClientInfo, params AuthorizationParams) (string, error) {
	state := params.State
	if state == "" {
		generated, err := generateState()
		if err != nil {
			return "", err
		}
		state = generated
	}

	scopes := params.Scopes
	if scopes == nil {
		scopes = []string{}
	}
	pending := models.PendingAuthorization{
		ClientID:      client.GetID(),
		CodeChallenge: params.CodeChallenge,
		RedirectURI:   params.RedirectURI,
		Scopes:        scopes,
		Resource:      params.Resource,
		ExpiresAt:     p.clock.Now().Add(p.pendingTTL),
	}
	if err := p.stores.Pending.Put(ctx, state, pending); err != nil {
		return "", fmt.Errorf("failed to store pending authorization: %w", err)
	}

	log.WithFields(logrus.Fields{
		"client_id": pending.ClientID,
		"scopes":    strings.Join(scopes, " "),
	}).Debug("Authorization started")
	return state, nil
}

// LoginURL returns the login page address for state.
func (p *Provider) LoginURL(state string) string {
	return p.serverURL + "/login?state=" + url.QueryEscape(state)
}

// Authorize begins an authorization and redirects the resource owner to the
// login page.
func (p *Provider) Authorize(ctx context.Context, client oauth2.ClientInfo, params AuthorizationParams, res Redirector) error {
	state, err := p.BeginAuthorization(ctx, client, params)
	p.metrics.OAuthEvent(metrics.EventAuthorize, err)
	if err != nil {
		return err
	}
	res.Redirect(http.StatusFound, p.LoginURL(state))
	return nil
}

// CompleteLogin checks the password for a pending authorization and, on
// success, exchanges it for an authorization code. The returned URL is the
// client's redirect URI with code and state appended. A wrong password
// leaves the pending authorization in place.
func (p *Provider) CompleteLogin(ctx context.Context, state, password string) (redirect string, err error) {
	defer func() { p.metrics.OAuthEvent(metrics.EventLogin, err) }()

	pending, err := p.stores.Pending.Get(ctx, state)
	if err != nil {
		return "", notFoundAs(err, ErrInvalidState)
	}
	now := p.clock.Now()
	if expired(now, pending.ExpiresAt) {
		_ = p.stores.Pending.Delete(ctx, state)
		return "", ErrInvalidState
	}

	if !VerifyPassword(password, p.password) {
		log.WithField("client_id", pending.ClientID).Warn("Login rejected: wrong password")
		return "", ErrWrongPassword
	}

	target, err := url.Parse(pending.RedirectURI)
	if err != nil {
		return "", fmt.Errorf("invalid redirect uri: %w", err)
	}
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	// Take consumes the pending record; a concurrent login may have won.
	pending, err = p.stores.Pending.Take(ctx, state)
	if err != nil {
		return "", notFoundAs(err, ErrInvalidState)
	}
	record := models.AuthorizationCode{
		ClientID:      pending.ClientID,
		CodeChallenge: pending.CodeChallenge,
		RedirectURI:   pending.RedirectURI,
		Scopes:        pending.Scopes,
		Resource:      pending.Resource,
		ExpiresAt:     now.Add(p.codeTTL),
	}
	if err := p.stores.Codes.Put(ctx, code, record); err != nil {
		return "", fmt.Errorf("failed to store authorization code: %w", err)
	}

	query := target.Query()
	query.Set("code", code)
	query.Set("state", state)
	target.RawQuery = query.Encode()

	log.WithFields(logrus.Fields{
		"client_id": record.ClientID,
		"code":      tokenPrefix(code),
	}).Info("Authorization code issued")
	return target.String(), nil
}

// ChallengeForAuthorizationCode returns the PKCE challenge bound to code
// without consuming it.
func (p *Provider) ChallengeForAuthorizationCode(ctx context.Context, client oauth2.ClientInfo, code string) (string, error) {
	record, err := p.stores.Codes.Get(ctx, code)
	if err != nil {
		return "", notFoundAs(err, ErrInvalidCode)
	}
	return record.CodeChallenge, nil
}

// ExchangeAuthorizationCode consumes code and issues an access token. Codes
// are single use: expired codes and codes presented by another client are
// purged as well.
func (p *Provider) ExchangeAuthorizationCode(ctx context.Context, client oauth2.ClientInfo, code string) (resp *TokenResponse, err error) {
	defer func() { p.metrics.OAuthEvent(metrics.EventExchange, err) }()

	record, err := p.stores.Codes.Take(ctx, code)
	if err != nil {
		return nil, notFoundAs(err, ErrInvalidCode)
	}
	now := p.clock.Now()
	if expired(now, record.ExpiresAt) {
		return nil, ErrCodeExpired
	}
	if record.ClientID != client.GetID() {
		log.WithFields(logrus.Fields{
			"client_id":       client.GetID(),
			"owner_client_id": record.ClientID,
		}).Warn("Authorization code presented by another client")
		return nil, ErrInvalidCode
	}

	token, err := generateAccessToken()
	if err != nil {
		return nil, err
	}
	issued := models.AccessToken{
		ClientID:  record.ClientID,
		Scopes:    record.Scopes,
		Resource:  record.Resource,
		ExpiresAt: now.Add(p.tokenTTL),
	}
	if err := p.stores.Tokens.Put(ctx, token, issued); err != nil {
		return nil, fmt.Errorf("failed to store access token: %w", err)
	}

	log.WithFields(logrus.Fields{
		"client_id": issued.ClientID,
		"token":     tokenPrefix(token),
	}).Info("Access token issued")

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(p.tokenTTL / time.Second),
		Scope:       strings.Join(record.Scopes, " "),
	}, nil
}

// ExchangeRefreshToken always fails: refresh tokens are never issued.
func (p *Provider) ExchangeRefreshToken(context.Context, oauth2.ClientInfo, string) (*TokenResponse, error) {
	return nil, ErrRefreshNotSupported
}

// VerifyAccessToken resolves a bearer token. Expired tokens are deleted.
func (p *Provider) VerifyAccessToken(ctx context.Context, token string) (info *AuthInfo, err error) {
	defer func() { p.metrics.OAuthEvent(metrics.EventVerify, err) }()

	record, err := p.stores.Tokens.Get(ctx, token)
	if err != nil {
		return nil, notFoundAs(err, ErrInvalidToken)
	}
	if expired(p.clock.Now(), record.ExpiresAt) {
		if delErr := p.stores.Tokens.Delete(ctx, token); delErr != nil {
			log.WithError(delErr).Warn("Failed to delete expired token")
		}
		return nil, ErrTokenExpired
	}
	return &AuthInfo{
		Token:     token,
		ClientID:  record.ClientID,
		Scopes:    record.Scopes,
		ExpiresAt: record.ExpiresAt,
		Resource:  record.Resource,
	}, nil
}

// RevokeToken deletes token if it belongs to client. Unknown tokens and
// tokens owned by another client are ignored.
func (p *Provider) RevokeToken(ctx context.Context, client oauth2.ClientInfo, token string) (err error) {
	defer func() { p.metrics.OAuthEvent(metrics.EventRevoke, err) }()

	record, err := p.stores.Tokens.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if record.ClientID != client.GetID() {
		log.WithFields(logrus.Fields{
			"client_id":       client.GetID(),
			"owner_client_id": record.ClientID,
		}).Warn("Ignoring revocation of a token owned by another client")
		return nil
	}
	if err := p.stores.Tokens.Delete(ctx, token); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"client_id": record.ClientID,
		"token":     tokenPrefix(token),
	}).Info("Access token revoked")
	return nil
}

// Sweep purges expired records from all stores and returns the total removed.
func (p *Provider) Sweep(ctx context.Context) (int, error) {
	now := p.clock.Now()
	total := 0

	sweeps := []struct {
		kind  string
		sweep func(context.Context, time.Time) (int, error)
	}{
		{KindPending, p.stores.Pending.Sweep},
		{KindCode, p.stores.Codes.Sweep},
		{KindToken, p.stores.Tokens.Sweep},
	}
	for _, s := range sweeps {
		n, err := s.sweep(ctx, now)
		if err != nil {
			return total, fmt.Errorf("failed to sweep %s records: %w", s.kind, err)
		}
		p.metrics.Swept(s.kind, n)
		total += n
	}
	return total, nil
}

func notFoundAs(err, sentinel error) error {
	if errors.Is(err, ErrNotFound) {
		return sentinel
	}
	return err
}
