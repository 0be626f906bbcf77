// Package session persists the authenticated session (bearer token and the
// serialized user blob) across process restarts in a local sqlite database.
package session

import "context"

// Storage keys. The user blob is stored as the verbatim JSON received from
// the backend.
const (
	KeyToken = "userToken"
	KeyUser  = "userData"
)

// Repository is a small key-value store. Get returns (nil, nil) when the
// key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
