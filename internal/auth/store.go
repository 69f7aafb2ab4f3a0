package auth

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by a Store when no record exists for a key.
var ErrNotFound = errors.New("record not found")

// Expirable is implemented by every record kept in a Store.
type Expirable interface {
	Expiry() time.Time
}

// Store is a keyed record store used for pending authorizations,
// authorization codes and access tokens.
//
// Take atomically removes and returns a record, so two callers racing on the
// same key never both receive it. Sweep purges records whose expiry is
// before now and returns how many were removed.
type Store[T Expirable] interface {
	Put(ctx context.Context, key string, value T) error
	Get(ctx context.Context, key string) (T, error)
	Take(ctx context.Context, key string) (T, error)
	Delete(ctx context.Context, key string) error
	Sweep(ctx context.Context, now time.Time) (int, error)
}

func expired(now, expiresAt time.Time) bool {
	return now.After(expiresAt)
}
