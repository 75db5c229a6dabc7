package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantreports/core/internal/adapters/repository"
	"github.com/grantreports/core/internal/domain/entities"
	"github.com/grantreports/core/internal/ports"
)

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := repository.NewMemorySessionStore()

	data := entities.NewSessionData()
	data.GrantName = "Community Fund"
	data.Reports = append(data.Reports, &entities.Report{ID: "r1", ReportName: "Annual Return"})

	require.NoError(t, store.Save(ctx, "abc", data, time.Hour))

	loaded, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Community Fund", loaded.GrantName)
	require.Len(t, loaded.Reports, 1)
	assert.Equal(t, "Annual Return", loaded.Reports[0].ReportName)

	// the store holds its own copy
	loaded.Reports[0].ReportName = "Changed"
	again, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Annual Return", again.Reports[0].ReportName)
}

func TestMemorySessionStoreMissingAndDeleted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := repository.NewMemorySessionStore()

	_, err := store.Load(ctx, "missing")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	require.NoError(t, store.Save(ctx, "abc", entities.NewSessionData(), time.Hour))
	require.NoError(t, store.Delete(ctx, "abc"))

	_, err = store.Load(ctx, "abc")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
	assert.NoError(t, store.Ping(ctx))
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store := repository.NewMemorySessionStore().WithClock(func() time.Time { return now })

	require.NoError(t, store.Save(ctx, "short", entities.NewSessionData(), time.Minute))
	require.NoError(t, store.Save(ctx, "long", entities.NewSessionData(), time.Hour))

	now = now.Add(2 * time.Minute)

	_, err := store.Load(ctx, "short")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
	assert.Equal(t, 2, store.Len())

	purged, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
	assert.Equal(t, 1, store.Len())

	_, err = store.Load(ctx, "long")
	assert.NoError(t, err)
}
