package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantreports/core/internal/adapters/repository"
	"github.com/grantreports/core/internal/domain/entities"
	"github.com/grantreports/core/internal/ports"
)

// Needs a running redis; set TEST_REDIS_ADDR=localhost:6379 to enable.
func TestRedisSessionStore(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	store := repository.NewRedisSessionStore(client, "test:session:")
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Ping(ctx))

	id := uuid.NewString()
	data := entities.NewSessionData()
	data.Grants = append(data.Grants, &entities.Grant{ID: "g1", GrantName: "Community Fund", Status: entities.GrantStatusActive})

	require.NoError(t, store.Save(ctx, id, data, time.Minute))

	loaded, err := store.Load(ctx, id)
	require.NoError(t, err)
	require.Len(t, loaded.Grants, 1)
	assert.Equal(t, "Community Fund", loaded.Grants[0].GrantName)

	ttl, err := client.TTL(ctx, "test:session:"+id).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Delete(ctx, id))
	_, err = store.Load(ctx, id)
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}
