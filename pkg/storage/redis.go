package storage

import (
	"context"
	"errors"
	"fmt"

	"artliving/pkg/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type redisStore struct {
	client *redis.Client
	log    *zap.Logger
}

// NewRedisStore connects and pings before returning.
func NewRedisStore(ctx context.Context, config utils.RedisConfig, log *zap.Logger) (KeyValueStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", config.Addr, err)
	}

	log.Info("Redis storage connected", zap.String("addr", config.Addr))
	return newRedisStore(rdb, log), nil
}

func newRedisStore(client *redis.Client, log *zap.Logger) *redisStore {
	return &redisStore{
		client: client,
		log:    log.With(zap.String("storage", "redis")),
	}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		s.log.Error("Failed to read key", zap.Error(err), zap.String("key", key))
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores without expiry; browser storage does not expire either.
func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		s.log.Error("Failed to write key", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.log.Error("Failed to delete key", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
