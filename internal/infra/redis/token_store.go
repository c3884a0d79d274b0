package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	fieldAccessToken  = "access_token"
	fieldRefreshToken = "refresh_token"
)

// TokenStore keeps a session in a Redis hash so several operator hosts share it.
type TokenStore struct {
	rdb     *redis.Client
	profile string
	ttl     time.Duration
}

// NewTokenStore creates a Redis-backed token store for a profile.
func NewTokenStore(client *Client, profile string, ttl time.Duration) *TokenStore {
	if profile == "" {
		profile = "default"
	}
	return &TokenStore{
		rdb:     client.rdb,
		profile: profile,
		ttl:     ttl,
	}
}

func (s *TokenStore) AccessToken(ctx context.Context) (string, error) {
	return s.get(ctx, fieldAccessToken)
}

func (s *TokenStore) RefreshToken(ctx context.Context) (string, error) {
	return s.get(ctx, fieldRefreshToken)
}

func (s *TokenStore) SetAccessToken(ctx context.Context, token string) error {
	return s.set(ctx, fieldAccessToken, token)
}

func (s *TokenStore) SetRefreshToken(ctx context.Context, token string) error {
	return s.set(ctx, fieldRefreshToken, token)
}

// Clear deletes the whole session hash.
func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, sessionKey(s.profile)).Err(); err != nil {
		return fmt.Errorf("del failed: %w", err)
	}
	return nil
}

func (s *TokenStore) get(ctx context.Context, field string) (string, error) {
	val, err := s.rdb.HGet(ctx, sessionKey(s.profile), field).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("hget failed: %w", err)
	}
	return val, nil
}

func (s *TokenStore) set(ctx context.Context, field, value string) error {
	key := sessionKey(s.profile)

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, field, value)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("hset failed: %w", err)
	}
	return nil
}
