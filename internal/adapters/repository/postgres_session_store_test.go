package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantreports/core/internal/adapters/repository"
	"github.com/grantreports/core/internal/domain/entities"
	"github.com/grantreports/core/internal/infrastructure/database"
	"github.com/grantreports/core/internal/ports"
)

// Needs a scratch postgres database; set TEST_DATABASE_DSN to enable.
func TestPostgresSessionStore(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	conn, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	db := &database.DB{DB: conn}
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Migrate(database.MigrateUp, 0)
	require.NoError(t, err)

	ctx := context.Background()
	store := repository.NewPostgresSessionStore(conn)
	require.NoError(t, store.Ping(ctx))

	id := uuid.NewString()
	data := entities.NewSessionData()
	data.Reports = append(data.Reports, &entities.Report{ID: "r1", ReportName: "Annual Return"})

	require.NoError(t, store.Save(ctx, id, data, time.Minute))

	data.Reports[0].ReportName = "Final Return"
	require.NoError(t, store.Save(ctx, id, data, time.Minute))

	loaded, err := store.Load(ctx, id)
	require.NoError(t, err)
	require.Len(t, loaded.Reports, 1)
	assert.Equal(t, "Final Return", loaded.Reports[0].ReportName)

	expired := uuid.NewString()
	require.NoError(t, store.Save(ctx, expired, entities.NewSessionData(), -time.Minute))

	_, err = store.Load(ctx, expired)
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	purged, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, purged, int64(1))

	require.NoError(t, store.Delete(ctx, id))
	_, err = store.Load(ctx, id)
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}
