package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/grantreports/core/internal/domain/entities"
	"github.com/grantreports/core/internal/ports"
)

// MemorySessionStore keeps sessions in process memory. Data is stored as
// JSON so callers never share pointers with the store.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]ports.SessionRecord
	now      func() time.Time
}

var _ ports.ExpiringSessionStore = (*MemorySessionStore)(nil)

// NewMemorySessionStore creates an empty in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]ports.SessionRecord),
		now:      time.Now,
	}
}

// WithClock replaces time.Now, for expiry tests
func (s *MemorySessionStore) WithClock(now func() time.Time) *MemorySessionStore {
	s.now = now
	return s
}

func (s *MemorySessionStore) Load(ctx context.Context, id string) (*entities.SessionData, error) {
	s.mu.RLock()
	record, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || record.IsExpired(s.now()) {
		return nil, ports.ErrSessionNotFound
	}

	var data entities.SessionData
	if err := json.Unmarshal(record.Data, &data); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}

	return &data, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, id string, data *entities.SessionData, ttl time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", id, err)
	}

	now := s.now()
	s.mu.Lock()
	s.sessions[id] = ports.SessionRecord{
		ID:        id,
		Data:      raw,
		ExpiresAt: now.Add(ttl),
		UpdatedAt: now,
	}
	s.mu.Unlock()

	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// PurgeExpired drops every expired session and returns how many were removed
func (s *MemorySessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int64
	for id, record := range s.sessions {
		if record.IsExpired(now) {
			delete(s.sessions, id)
			purged++
		}
	}

	return purged, nil
}

// Len returns the number of stored sessions, expired or not
func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
