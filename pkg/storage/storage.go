// Package storage is the persistent key/value space a tab keeps its
// client-side state in, the gateway's stand-in for browser storage.
package storage

import (
	"context"
	"fmt"

	"artliving/pkg/database"
	"artliving/pkg/utils"

	"go.uber.org/zap"
)

// KeyValueStore persists opaque values under string keys.
type KeyValueStore interface {
	// Get returns found=false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Open builds the store selected by config.Storage.Driver.
func Open(ctx context.Context, config *utils.Config, log *zap.Logger) (KeyValueStore, error) {
	switch config.Storage.Driver {
	case "", DriverMemory:
		return NewMemoryStore(), nil

	case DriverPostgres:
		db, err := database.InitDB(config.Database)
		if err != nil {
			return nil, fmt.Errorf("open postgres storage: %w", err)
		}
		store, err := NewPostgresStore(ctx, db, log)
		if err != nil {
			db.Close()
			return nil, err
		}
		return store, nil

	case DriverRedis:
		return NewRedisStore(ctx, config.Redis, log)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}
}
