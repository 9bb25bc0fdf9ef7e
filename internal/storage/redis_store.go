package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/julianstephens/duogoals/internal/constants"
)

// RedisStore keeps each slot as a plain string key, namespaced by the app name.
type RedisStore struct {
	url    string
	client *redis.Client
}

func NewRedisStore(redisURL string) *RedisStore {
	return &RedisStore{
		url: redisURL,
	}
}

func (s *RedisStore) Init() error {
	return s.Load()
}

func (s *RedisStore) Load() error {
	if s.client != nil {
		return nil
	}

	opts, err := redis.ParseURL(s.url)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), constants.SlotTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	s.client = client
	return nil
}

func (s *RedisStore) Close() error {
	if s.client != nil {
		err := s.client.Close()
		s.client = nil
		return err
	}
	return nil
}

func (s *RedisStore) key(key string) string {
	return constants.AppName + ":" + key
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("storage not loaded")
	}

	value, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, nil
}

func (s *RedisStore) Put(ctx context.Context, key, value string) error {
	if s.client == nil {
		return fmt.Errorf("storage not loaded")
	}

	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// GetConfigPath returns the server address and database, never the credentials.
func (s *RedisStore) GetConfigPath() string {
	opts, err := redis.ParseURL(s.url)
	if err != nil {
		return s.url
	}
	return fmt.Sprintf("redis://%s/%d", opts.Addr, opts.DB)
}
