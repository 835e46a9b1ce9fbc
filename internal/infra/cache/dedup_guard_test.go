package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSetNX struct {
	held map[string]bool
	keys []string
	ttls []time.Duration
}

func (f *fakeSetNX) SetNX(ctx context.Context, key string, _ any, expiration time.Duration) *redis.BoolCmd {
	f.keys = append(f.keys, key)
	f.ttls = append(f.ttls, expiration)

	cmd := redis.NewBoolCmd(ctx)
	if f.held[key] {
		cmd.SetVal(false)
	} else {
		f.held[key] = true
		cmd.SetVal(true)
	}

	return cmd
}

func (f *fakeSetNX) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	var n int64
	for _, key := range keys {
		if f.held[key] {
			delete(f.held, key)
			n++
		}
	}
	cmd.SetVal(n)

	return cmd
}

func TestRedisDedupGuard_ReleaseAllowsReclaim(t *testing.T) {
	fake := &fakeSetNX{held: map[string]bool{}}
	guard := NewRedisDedupGuard(fake)
	ctx := context.Background()

	ok, err := guard.Claim(ctx, "k", time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, guard.Release(ctx, "k"))

	ok, err = guard.Claim(ctx, "k", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisDedupGuard_ClaimsOnce(t *testing.T) {
	fake := &fakeSetNX{held: map[string]bool{}}
	guard := NewRedisDedupGuard(fake)

	first, err := guard.Claim(context.Background(), "cleaning_reminder:e1:2024-01-01:12:00", time.Hour)
	require.NoError(t, err)
	second, err := guard.Claim(context.Background(), "cleaning_reminder:e1:2024-01-01:12:00", time.Hour)
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	assert.Equal(t, dedupKeyPrefix+"cleaning_reminder:e1:2024-01-01:12:00", fake.keys[0])
	assert.Equal(t, time.Hour, fake.ttls[0])
}

func TestNoopDedupGuard_AlwaysClaims(t *testing.T) {
	guard := NewNoopDedupGuard()

	for range 2 {
		ok, err := guard.Claim(context.Background(), "k", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}
