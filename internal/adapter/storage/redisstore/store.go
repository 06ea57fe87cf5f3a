// Package redisstore persists snapshots in Redis, for deployments where
// the dashboard state should survive the host process.
package redisstore

import (
	"context"
	"fmt"

	"novapay/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewClient creates a Redis client and verifies connectivity.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Msg("Redis connection established")

	return client, nil
}

// Store implements ports.SnapshotStore using Redis.
type Store struct {
	client *goredis.Client
	prefix string
}

// NewStore creates a Redis-backed snapshot store.
func NewStore(client *goredis.Client) *Store {
	return &Store{
		client: client,
		prefix: "novapay:",
	}
}

// Get returns the stored blob for key, or nil, nil when absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis snapshot get: %w", err)
	}
	return val, nil
}

// Set stores the blob without expiry; snapshots live until overwritten.
func (s *Store) Set(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis snapshot set: %w", err)
	}
	return nil
}

// Ping verifies connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Name returns the dependency name.
func (s *Store) Name() string { return "redis" }
