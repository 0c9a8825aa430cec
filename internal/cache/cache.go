package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ndychko/gowallet/internal/domain"
)

// Redis is a short-lived read-through cache for account balances. It only
// serves the query side; every balance mutation goes through the versioned
// store and invalidates the cached entry.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(addr string, ttl time.Duration) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func accountKey(userID uuid.UUID) string {
	return "account:" + userID.String()
}

func (c *Redis) Get(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	data, err := c.client.Get(ctx, accountKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var account domain.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &account, nil
}

func (c *Redis) Set(ctx context.Context, account *domain.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, accountKey(account.UserID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *Redis) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, accountKey(userID)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// Noop stands in when no Redis address is configured.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) Get(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	return nil, nil
}

func (*Noop) Set(ctx context.Context, account *domain.Account) error {
	return nil
}

func (*Noop) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return nil
}
