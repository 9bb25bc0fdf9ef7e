package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key holds no value
var ErrNotFound = errors.New("key not found")

// Provider is a key-value slot holding whole serialized values.
// Put always overwrites; there are no partial updates.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Slot
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error

	// Utils
	GetConfigPath() string
}
