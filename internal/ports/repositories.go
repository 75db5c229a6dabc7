package ports

import (
	"context"
	"errors"
	"time"

	"github.com/grantreports/core/internal/domain/entities"
)

// ErrSessionNotFound is returned by a SessionStore when the session does not
// exist or has expired
var ErrSessionNotFound = errors.New("session not found")

// SessionStore defines the interface for session data persistence.
// Stores are safe for concurrent use but do not serialise requests that
// share a session ID: the last Save wins.
type SessionStore interface {
	Load(ctx context.Context, id string) (*entities.SessionData, error)
	Save(ctx context.Context, id string, data *entities.SessionData, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// ExpiringSessionStore is implemented by stores that need explicit cleanup
// of expired sessions (redis expires keys on its own)
type ExpiringSessionStore interface {
	SessionStore
	PurgeExpired(ctx context.Context) (int64, error)
}

// SessionRecord represents a stored session row
type SessionRecord struct {
	ID        string    `json:"id" db:"id"`
	Data      []byte    `json:"data" db:"data"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsExpired checks if the session is past its expiry at the given time
func (r *SessionRecord) IsExpired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}
