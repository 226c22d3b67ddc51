package cache

import (
	"context"
	"time"
)

// Store is a string key-value cache with per-key expiration
type Store interface {
	// Set stores a key-value pair with expiration
	Set(ctx context.Context, key, value string, expiration time.Duration) error

	// Get retrieves a value by key; the bool reports whether the key was
	// present and not expired
	Get(ctx context.Context, key string) (string, bool, error)

	// Delete removes a key
	Delete(ctx context.Context, key string) error
}
