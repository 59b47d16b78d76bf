package cache_test

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/repositories/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*cache.RedisDebtCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewRedisDebtCache(client, time.Minute), mr
}

func summary(remaining int64) domain.DebtSummary {
	return domain.DebtSummary{
		CounterpartyID: "cp1",
		TotalDebt:      decimal.NewFromInt(1000),
		TotalPaid:      decimal.NewFromInt(1000 - remaining),
		RemainingDebt:  decimal.NewFromInt(remaining),
		IsFullyPaid:    remaining <= 0,
	}
}

func TestRedisDebtCache_MissThenHit(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	got, version, err := c.Get(ctx, "c1", "cp1")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, version)

	require.NoError(t, c.Set(ctx, "c1", "cp1", version, summary(600)))

	got, _, err = c.Get(ctx, "c1", "cp1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.RemainingDebt.Equal(decimal.NewFromInt(600)))
}

func TestRedisDebtCache_InvalidateHidesStaleWrites(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	// A reader looks up version 0, then a mutation invalidates before the reader writes.
	_, staleVersion, err := c.Get(ctx, "c1", "cp1")
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx, "c1", "cp1"))
	require.NoError(t, c.Set(ctx, "c1", "cp1", staleVersion, summary(600)))

	got, version, err := c.Get(ctx, "c1", "cp1")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, int64(1), version)
}

func TestRedisDebtCache_ScopedByCompany(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "c1", "cp1", 0, summary(10)))

	got, _, err := c.Get(ctx, "c2", "cp1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisDebtCache_EntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "c1", "cp1", 0, summary(10)))
	mr.FastForward(2 * time.Minute)

	got, _, err := c.Get(ctx, "c1", "cp1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisDebtCache_CorruptEntryIsMiss(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("revlo:debt:c1:cp1:0", "{not json"))

	got, version, err := c.Get(ctx, "c1", "cp1")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, version)
}

func TestRedisDebtCache_ServerDown(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	_, _, err := c.Get(context.Background(), "c1", "cp1")
	assert.Error(t, err)
}
