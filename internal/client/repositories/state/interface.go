// Package state persists the handful of durable key-value entries the
// client owns (the serialized user record and the bearer token). Values
// are opaque bytes; interpretation belongs to the caller.
package state

import "context"

type Repository interface {
	// Get returns the stored value, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
