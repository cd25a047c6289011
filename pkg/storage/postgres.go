package storage

import (
	"context"
	"errors"
	"fmt"

	"artliving/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const createKVTable = `
	CREATE TABLE IF NOT EXISTS client_storage (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type postgresStore struct {
	db  database.PgxIface
	log *zap.Logger
}

// NewPostgresStore keeps values in the client_storage table, creating it if needed.
func NewPostgresStore(ctx context.Context, db database.PgxIface, log *zap.Logger) (KeyValueStore, error) {
	if _, err := db.Exec(ctx, createKVTable); err != nil {
		return nil, fmt.Errorf("create client_storage table: %w", err)
	}

	return &postgresStore{
		db:  db,
		log: log.With(zap.String("storage", "postgres")),
	}, nil
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT value FROM client_storage WHERE key = $1`

	var value []byte
	err := s.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		s.log.Error("Failed to read key", zap.Error(err), zap.String("key", key))
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}

	return value, true, nil
}

func (s *postgresStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO client_storage (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := s.db.Exec(ctx, query, key, value); err != nil {
		s.log.Error("Failed to write key", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM client_storage WHERE key = $1`

	if _, err := s.db.Exec(ctx, query, key); err != nil {
		s.log.Error("Failed to delete key", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *postgresStore) Close() error {
	s.db.Close()
	return nil
}
