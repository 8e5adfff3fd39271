package storage

import (
	"context"
)

// Pair is one key/value entry of a batched write.
type Pair struct {
	Key   string
	Value string
}

type Repository interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	// MultiGet reads all keys in one query. Absent keys are missing from
	// the result map.
	MultiGet(ctx context.Context, keys ...string) (map[string]string, error)
	MultiSet(ctx context.Context, pairs []Pair) error
	// MultiRemove deletes all keys atomically. Absent keys are ignored.
	MultiRemove(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
