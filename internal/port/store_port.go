package port

import "context"

// KeyValueStore is a string-keyed durable store holding raw payloads.
// Get reports false when the key is absent. Remove of an absent key is not
// an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
