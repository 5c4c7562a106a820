// Package secrets stores sensitive values (the bearer token) in the local
// database, sealed at rest. Only the session manager writes here.
package secrets

import "context"

// Repository is a small keyed store for sealed values. Get returns
// (nil, nil) when the key is absent; Delete of an absent key is a no-op.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
