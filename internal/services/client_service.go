package services

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/franciscosanchezn/fbb-mcp/internal/auth"
	"github.com/franciscosanchezn/fbb-mcp/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidRedirectURI    = errors.New("redirect_uris must contain at least one absolute URL")
	ErrUnsupportedAuthMethod = errors.New("token_endpoint_auth_method must be client_secret_post or none")
	ErrUnsupportedGrantType  = errors.New("only the authorization_code grant is supported")
)

// ClientRegistration is the RFC 7591 client metadata accepted by /register.
type ClientRegistration struct {
	RedirectURIs            []string `json:"redirect_uris"`
	ClientName              string   `json:"client_name,omitempty"`
	GrantTypes              []string `json:"grant_types,omitempty"`
	ResponseTypes           []string `json:"response_types,omitempty"`
	TokenEndpointAuthMethod string   `json:"token_endpoint_auth_method,omitempty"`
	Scope                   string   `json:"scope,omitempty"`
	ClientURI               string   `json:"client_uri,omitempty"`
	LogoURI                 string   `json:"logo_uri,omitempty"`
}

type ClientService interface {
	// CreateClient validates the metadata and registers a new client. The
	// plain secret is returned once and is empty for public clients.
	CreateClient(ctx context.Context, req ClientRegistration) (*models.RegisteredClient, string, error)
	GetClientByID(ctx context.Context, id string) (*models.RegisteredClient, error)
}

type clientService struct {
	store *auth.ClientStore
	now   func() time.Time
}

func NewClientService(store *auth.ClientStore) ClientService {
	return &clientService{store: store, now: time.Now}
}

func (s *clientService) CreateClient(ctx context.Context, req ClientRegistration) (*models.RegisteredClient, string, error) {
	if err := validateRedirectURIs(req.RedirectURIs); err != nil {
		return nil, "", err
	}

	method := req.TokenEndpointAuthMethod
	if method == "" {
		method = models.AuthMethodClientSecretPost
	}
	if method != models.AuthMethodClientSecretPost && method != models.AuthMethodNone {
		return nil, "", ErrUnsupportedAuthMethod
	}

	grantTypes := req.GrantTypes
	if len(grantTypes) == 0 {
		grantTypes = []string{oauth2.AuthorizationCode.String()}
	}
	for _, gt := range grantTypes {
		if gt != oauth2.AuthorizationCode.String() && gt != oauth2.Refreshing.String() {
			return nil, "", ErrUnsupportedGrantType
		}
	}
	responseTypes := req.ResponseTypes
	if len(responseTypes) == 0 {
		responseTypes = []string{oauth2.Code.String()}
	}

	client := &models.RegisteredClient{
		ClientID:                uuid.New().String(),
		ClientName:              req.ClientName,
		RedirectURIs:            req.RedirectURIs,
		GrantTypes:              grantTypes,
		ResponseTypes:           responseTypes,
		TokenEndpointAuthMethod: method,
		Scope:                   req.Scope,
		ClientURI:               req.ClientURI,
		LogoURI:                 req.LogoURI,
		IssuedAt:                s.now().UTC(),
	}

	var secret string
	if method != models.AuthMethodNone {
		secret = uuid.New().String()
		hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
		if err != nil {
			return nil, "", err
		}
		client.SecretHash = string(hashedSecret)
	}

	if _, err := s.store.RegisterClient(ctx, client); err != nil {
		return nil, "", err
	}
	return client, secret, nil
}

func (s *clientService) GetClientByID(ctx context.Context, id string) (*models.RegisteredClient, error) {
	return s.store.GetClient(ctx, id)
}

func validateRedirectURIs(uris []string) error {
	if len(uris) == 0 {
		return ErrInvalidRedirectURI
	}
	for _, raw := range uris {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Fragment != "" {
			return ErrInvalidRedirectURI
		}
	}
	return nil
}
