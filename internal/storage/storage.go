// Package storage provides the key-value slot the app data is persisted in.
package storage

import (
	"errors"
	"fmt"

	"github.com/julianstephens/duogoals/internal/constants"
)

// ErrAlreadyInitialized is returned by Init when the slot already exists
var ErrAlreadyInitialized = errors.New("storage already initialized")

// Options selects and locates a slot backend
type Options struct {
	Backend  string
	Path     string
	DSN      string
	RedisURL string
}

// New returns the provider for opts.Backend. The provider is not opened.
func New(opts Options) (Provider, error) {
	switch opts.Backend {
	case "", constants.BackendFile:
		if opts.Path == "" {
			return nil, fmt.Errorf("file backend requires a path")
		}
		return NewFileStore(opts.Path), nil
	case constants.BackendSQLite:
		if opts.Path == "" {
			return nil, fmt.Errorf("sqlite backend requires a path")
		}
		return NewSQLiteStore(opts.Path), nil
	case constants.BackendPostgres:
		if _, err := ValidateConnString(opts.DSN); err != nil {
			return nil, err
		}
		return NewPostgresStore(opts.DSN), nil
	case constants.BackendRedis:
		if opts.RedisURL == "" {
			return nil, fmt.Errorf("redis backend requires a URL")
		}
		return NewRedisStore(opts.RedisURL), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
}
