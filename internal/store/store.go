package store

import "context"

// Store is durable key-value storage for guest session records. Values are
// opaque JSON blobs; a missing key reads back as (nil, nil), and removing a
// missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
