package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"credit-application/internal/domain/credit"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const creditKeyPrefix = "credit:"

// Store is the subset of redis.Cmdable the cache needs.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisCreditCache keeps JSON snapshots of the credit columns only. The
// owning customer is mutable and is never cached; entries expire by TTL.
type RedisCreditCache struct {
	client Store
	ttl    time.Duration
	logger *slog.Logger
}

var _ credit.Cache = (*RedisCreditCache)(nil)

func NewRedisCreditCache(client Store, ttl time.Duration, logger *slog.Logger) *RedisCreditCache {
	return &RedisCreditCache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "RedisCreditCache"),
	}
}

func creditKey(code uuid.UUID) string {
	return creditKeyPrefix + code.String()
}

func (c *RedisCreditCache) Get(ctx context.Context, code uuid.UUID) (*credit.Credit, bool) {
	raw, err := c.client.Get(ctx, creditKey(code)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "Failed to read credit from cache", "creditCode", code.String(), "error", err)
		}
		return nil, false
	}

	var snapshot creditSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		c.logger.WarnContext(ctx, "Discarding undecodable cache entry", "creditCode", code.String(), "error", err)
		return nil, false
	}
	return snapshot.toCredit(), true
}

func (c *RedisCreditCache) Set(ctx context.Context, cr *credit.Credit) {
	if cr == nil {
		return
	}
	body, err := json.Marshal(newCreditSnapshot(cr))
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to encode credit for cache", "error", err)
		return
	}
	if err := c.client.Set(ctx, creditKey(cr.CreditCode), body, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Failed to write credit to cache", "creditCode", cr.CreditCode.String(), "error", err)
	}
}
