package store

import (
	"context"
	"errors"
)

// Sentinel errors shared across all backend implementations.
var (
	ErrKeyNotFound = errors.New("key not found")
)

// Store defines the contract that every key-value backend (SQLite, memory,
// ...) must satisfy. Values are opaque JSON strings; callers own the shape.
//
// Failure semantics: backends never retry. A read of an absent key returns
// ErrKeyNotFound; any other error is a storage I/O failure the caller must
// handle. Remove and RemoveMany are idempotent.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error

	// SetMany writes all entries or none. The SQLite backend runs them in a
	// single transaction; this is what keeps the profile and session blobs
	// consistent when both are written during login.
	SetMany(ctx context.Context, entries map[string]string) error

	Remove(ctx context.Context, key string) error
	RemoveMany(ctx context.Context, keys []string) error

	Close()
}
