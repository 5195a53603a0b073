// Package store keeps opaque payloads under string keys.
package store

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

type BlobStore interface {
	// Get returns ErrKeyNotFound for a missing key.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, payload []byte) error
	// Delete of a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
