package auth

import (
	"context"
	"sync"

	"github.com/franciscosanchezn/fbb-mcp/internal/models"
	"github.com/go-oauth2/oauth2/v4"
)

// ClientStore is the registry of dynamically registered OAuth clients.
// Registrations live for the lifetime of the process.
type ClientStore struct {
	mu      sync.RWMutex
	clients map[string]*models.RegisteredClient
}

func NewClientStore() *ClientStore {
	return &ClientStore{clients: make(map[string]*models.RegisteredClient)}
}

// RegisterClient stores client under its ClientID, replacing any previous entry.
func (s *ClientStore) RegisterClient(_ context.Context, client *models.RegisteredClient) (*models.RegisteredClient, error) {
	s.mu.Lock()
	s.clients[client.ClientID] = client
	s.mu.Unlock()
	log.WithField("client_id", client.ClientID).Info("OAuth client registered")
	return client, nil
}

// GetClient returns the registered client or ErrUnknownClient.
func (s *ClientStore) GetClient(_ context.Context, clientID string) (*models.RegisteredClient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	client, ok := s.clients[clientID]
	if !ok {
		return nil, ErrUnknownClient
	}
	return client, nil
}

// GetByID implements the go-oauth2 ClientStore interface.
func (s *ClientStore) GetByID(ctx context.Context, id string) (oauth2.ClientInfo, error) {
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	return client, nil
}
