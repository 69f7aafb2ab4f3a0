package auth

import (
	"context"
	"testing"
	"time"

	"github.com/franciscosanchezn/fbb-mcp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeperPurgesAndStops(t *testing.T) {
	tokens := NewMemoryStore[models.AccessToken]()
	stores := MemoryStores()
	stores.Tokens = tokens
	p := NewProvider("http://localhost:4951", testPassword, WithStores(stores))

	require.NoError(t, tokens.Put(context.Background(), "stale", models.AccessToken{ExpiresAt: time.Now().Add(-time.Minute)}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewSweeper(p, 10*time.Millisecond).Run(ctx) }()

	assert.Eventually(t, func() bool { return tokens.Len() == 0 }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestNewSweeperDefaultInterval(t *testing.T) {
	s := NewSweeper(nil, 0)
	assert.Equal(t, 5*time.Minute, s.interval)
}
