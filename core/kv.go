package core

import "context"

// Durable keys
const (
	KeyToken       = "token"
	KeyLegacyToken = "authToken"
	KeyRole        = "role"
	KeyLanguage    = "appLanguage"
)

// KVStore is a durable string key-value storage.
type KVStore interface {
	// Get returns ErrKeyNotFound if key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete ignores absent keys.
	Delete(ctx context.Context, keys ...string) error
}
