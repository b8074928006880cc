package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key or hash field does not exist.
var ErrNotFound = errors.New("store: key not found")

// Store is the key-value backend the data layer runs on. It mirrors the
// small subset of Redis commands the application actually uses: atomic
// counters, plain strings, hashes, lists and sets. Everything the domain
// model needs (ids, profiles, sessions, the follow graph, feeds) is built
// from these primitives.
type Store interface {
	// Incr atomically increments the counter at key and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)

	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error

	HSet(ctx context.Context, key string, fields map[string]string) error
	HGet(ctx context.Context, key, field string) (string, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// LPush prepends, RPush appends. LRange uses Redis semantics: both
	// bounds inclusive, negative indices count from the tail, out-of-range
	// bounds clip to the list.
	LPush(ctx context.Context, key, value string) error
	RPush(ctx context.Context, key, value string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)

	SAdd(ctx context.Context, key, member string) error
	SRem(ctx context.Context, key, member string) error
	SIsMember(ctx context.Context, key, member string) (bool, error)
	SMembers(ctx context.Context, key string) ([]string, error)
	SInter(ctx context.Context, keys ...string) ([]string, error)

	Exists(ctx context.Context, key string) (bool, error)
	Del(ctx context.Context, keys ...string) error
}
