package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps pending sign-in tokens until their link is followed.
// Consume removes the token, so each link works exactly once.
type TokenStore interface {
	Save(ctx context.Context, token, email string, ttl time.Duration) error
	Consume(ctx context.Context, token string) (string, error)
}

type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func (s *redisTokenStore) Save(ctx context.Context, token, email string, ttl time.Duration) error {
	if err := s.client.Set(ctx, signInKey(token), email, ttl).Err(); err != nil {
		return fmt.Errorf("save sign-in token: %w", err)
	}
	return nil
}

func (s *redisTokenStore) Consume(ctx context.Context, token string) (string, error) {
	email, err := s.client.GetDel(ctx, signInKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrInvalidToken
	}
	if err != nil {
		return "", fmt.Errorf("consume sign-in token: %w", err)
	}
	return email, nil
}

func signInKey(token string) string {
	return "signin:" + token
}
