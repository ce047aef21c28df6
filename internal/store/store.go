// Package store defines the key-value contract labpool persists account
// records through. The engine behind it is deliberately opaque: anything that
// can get, set and delete byte values under string keys qualifies.
package store

import "context"

// Store is a byte-oriented key-value store.
//
// Get returns common.ErrNotFound (possibly wrapped) when the key has never
// been written or has been deleted; any other error is a backend failure and
// is propagated unmodified. Set fully overwrites the value under key; there
// is no partial update and no compare-and-swap.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}
