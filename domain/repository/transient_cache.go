package repository

import (
	"context"
	"time"
)

// ITransientCache is a key/value store with per entry expiry
type ITransientCache interface {
	// Get decodes the entry into dest. It reports false, nil on a miss or expired entry.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
