package cache

import (
	"context"
	"time"
)

// Store is a key-value store with per-key expiration. The assessment pipeline
// uses it to reuse finished transcripts across retried requests instead of
// re-polling the voice provider.
type Store interface {
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}
