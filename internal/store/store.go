package store

import "context"

// Store is the key-value contract all game state lives behind. Get returns
// an empty string and a nil error when the key has no value; callers decide
// what a missing key means.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Expire(ctx context.Context, key string, seconds int) error
}
