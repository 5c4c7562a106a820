// Package cache stores non-sensitive values (the cached profile blob) in
// the local database. Cached data is an optimistic hint for cold starts,
// never an authorization source.
package cache

import "context"

// Repository is a small keyed blob store. Get returns (nil, nil) when the
// key is absent; Delete of an absent key is a no-op.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
