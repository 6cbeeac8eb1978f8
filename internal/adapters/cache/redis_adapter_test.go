package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregory-bot/telecurehospital/internal/domain/providers"
	redisclient "github.com/gregory-bot/telecurehospital/internal/infrastructure/clients/redis"
)

func TestRedisAdapter_Namespace(t *testing.T) {
	a := &RedisAdapter{namespace: "telecure"}
	assert.Equal(t, "telecure:triage:analysis:abc", a.key("triage:analysis:abc"))

	bare := &RedisAdapter{}
	assert.Equal(t, "triage:analysis:abc", bare.key("triage:analysis:abc"))
}

func TestRedisAdapter_ClosedClientIsNotAMiss(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	require.NoError(t, rdb.Close())

	adapter := NewRedisAdapter(redisclient.NewClientFromRedis(rdb), "test")
	_, err := adapter.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.False(t, errors.Is(err, providers.ErrCacheMiss))
	assert.ErrorIs(t, err, redis.ErrClosed)
}
