// Package kv is the durable key-value store backing per-session client state:
// the cart line collection and the checkout recency lists. Values are opaque
// JSON blobs, one logical collection per key.
package kv

import (
	"context"
	"errors"
)

// ErrNoKey indicates the key has never been written (first run) or was
// deleted. Callers treat it the same as empty state.
var ErrNoKey = errors.New("kv: key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
