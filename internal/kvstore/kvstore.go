// Package kvstore is the small namespaced key-value abstraction the portal
// uses for per-user state such as recent searches.
package kvstore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("kvstore: key not found")

// Entry is one stored value.
type Entry struct {
	Namespace string
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

// Store is implemented by Memory, Encrypted and repository.KVRepository.
type Store interface {
	Get(ctx context.Context, namespace, key string) ([]byte, error)
	Set(ctx context.Context, namespace, key string, value []byte) error
	Delete(ctx context.Context, namespace, key string) error
	// Prune removes every entry of namespace last updated before cutoff and
	// returns how many were removed.
	Prune(ctx context.Context, namespace string, cutoff time.Time) (int64, error)
}
