// Package cache holds Redis-backed caches for values derived from the ledger.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	portsrepo "github.com/revlo/revlo_ledger/internal/core/ports/repositories"
)

const keyPrefix = "revlo:debt"

// RedisDebtCache stores debt summaries under a per-counterparty version.
// Entries of older versions are never read again and expire with the TTL.
type RedisDebtCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisDebtCache creates a debt summary cache on the given client.
func NewRedisDebtCache(client redis.UniversalClient, ttl time.Duration) *RedisDebtCache {
	return &RedisDebtCache{client: client, ttl: ttl}
}

var _ portsrepo.DebtSummaryCache = (*RedisDebtCache)(nil)

func versionKey(companyID, counterpartyID string) string {
	return fmt.Sprintf("%s:%s:%s:v", keyPrefix, companyID, counterpartyID)
}

func entryKey(companyID, counterpartyID string, version int64) string {
	return fmt.Sprintf("%s:%s:%s:%d", keyPrefix, companyID, counterpartyID, version)
}

func (c *RedisDebtCache) Get(ctx context.Context, companyID, counterpartyID string) (*domain.DebtSummary, int64, error) {
	version, err := c.client.Get(ctx, versionKey(companyID, counterpartyID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, fmt.Errorf("failed to read debt cache version: %w", err)
	}

	payload, err := c.client.Get(ctx, entryKey(companyID, counterpartyID, version)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, version, nil
	}
	if err != nil {
		return nil, version, fmt.Errorf("failed to read debt cache entry: %w", err)
	}

	var summary domain.DebtSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		// A corrupt entry is treated as a miss and overwritten by the next Set.
		return nil, version, nil
	}
	return &summary, version, nil
}

func (c *RedisDebtCache) Set(ctx context.Context, companyID, counterpartyID string, version int64, summary domain.DebtSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode debt summary: %w", err)
	}
	if err := c.client.Set(ctx, entryKey(companyID, counterpartyID, version), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write debt cache entry: %w", err)
	}
	return nil
}

func (c *RedisDebtCache) Invalidate(ctx context.Context, companyID, counterpartyID string) error {
	if err := c.client.Incr(ctx, versionKey(companyID, counterpartyID)).Err(); err != nil {
		return fmt.Errorf("failed to bump debt cache version: %w", err)
	}
	return nil
}
