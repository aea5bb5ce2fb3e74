package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
// Consumers depend on the narrow sub-interfaces, not the facade.
type Store interface {
	Pinger
	HashStore
	SortedSetStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashSetItem holds a single key+fields pair for pipelined HSET.
type HashSetItem struct {
	Key    string
	Fields map[string]string
}

// HashStore provides hash-based key-value operations.
type HashStore interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// SortedSetMember is a member+score pair returned from sorted set reads.
type SortedSetMember struct {
	Member string
	Score  float64
}

// SortedSetStore provides sorted-set operations used by the popularity ranking.
type SortedSetStore interface {
	ZIncrBy(ctx context.Context, key, member string, increment float64) error
	ZRevRange(ctx context.Context, key string, start, stop int) ([]SortedSetMember, error)
	ZCard(ctx context.Context, key string) (int, error)
}
