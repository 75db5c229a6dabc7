package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/grantreports/core/internal/domain/entities"
	"github.com/grantreports/core/internal/ports"
)

// PostgresSessionStore keeps sessions in the sessions table
type PostgresSessionStore struct {
	db  *sqlx.DB
	now func() time.Time
}

var _ ports.ExpiringSessionStore = (*PostgresSessionStore)(nil)

// NewPostgresSessionStore creates a session store on an open database
func NewPostgresSessionStore(db *sqlx.DB) *PostgresSessionStore {
	return &PostgresSessionStore{db: db, now: time.Now}
}

func (s *PostgresSessionStore) Load(ctx context.Context, id string) (*entities.SessionData, error) {
	query := `
		SELECT id, data, expires_at, updated_at
		FROM sessions
		WHERE id = $1 AND expires_at > $2`

	var record ports.SessionRecord
	err := s.db.GetContext(ctx, &record, query, id, s.now())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var data entities.SessionData
	if err := json.Unmarshal(record.Data, &data); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}

	return &data, nil
}

func (s *PostgresSessionStore) Save(ctx context.Context, id string, data *entities.SessionData, ttl time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", id, err)
	}

	query := `
		INSERT INTO sessions (id, data, expires_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET data = EXCLUDED.data, expires_at = EXCLUDED.expires_at, updated_at = EXCLUDED.updated_at`

	now := s.now()
	if _, err := s.db.ExecContext(ctx, query, id, raw, now.Add(ttl), now); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (s *PostgresSessionStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *PostgresSessionStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// PurgeExpired deletes expired rows and returns how many were removed
func (s *PostgresSessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, s.now())
	if err != nil {
		return 0, fmt.Errorf("purge expired sessions: %w", err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge expired sessions: %w", err)
	}

	return purged, nil
}
