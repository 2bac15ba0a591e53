package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"messenger-selfcheck/internal/domain"
	"messenger-selfcheck/internal/ports/output"
)

// Compile-time check to ensure MemorySessionStore implements SessionStore interface
var _ output.SessionStore = (*MemorySessionStore)(nil)

// catalogKey is the single shared cache key for the question catalog
const catalogKey = "questions"

// entry holds one serialized value with its own expiry
type entry struct {
	data      []byte
	expiresAt time.Time
}

func (e entry) expired() bool {
	return time.Now().After(e.expiresAt)
}

// MemorySessionStore struct - Output adapter for in-process TTL storage.
// Uses sync.Map for thread-safe concurrent access. Values are stored
// serialized, exactly as an external cache would hold them, so swapping in
// the Redis adapter changes nothing above the port. Expired entries are
// removed lazily on read.
type MemorySessionStore struct {
	entries    sync.Map
	sessionTTL time.Duration
	catalogTTL time.Duration
}

// NewMemorySessionStore creates a new in-memory session store.
// sessionTTL: idle period after which a session expires
// catalogTTL: lifetime of the cached question catalog
func NewMemorySessionStore(sessionTTL, catalogTTL time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessionTTL: sessionTTL,
		catalogTTL: catalogTTL,
	}
}

// GetSession retrieves the session for a user.
// Returns (nil, nil) when the session does not exist or has expired.
func (m *MemorySessionStore) GetSession(ctx context.Context, userID string) (*domain.Session, error) {
	data, ok := m.load(userID)
	if !ok {
		return nil, nil
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// Malformed payload reads back as a missing session
		m.entries.Delete(userID)
		return nil, nil
	}
	session.UserID = userID

	return &session, nil
}

// SaveSession creates or overwrites the session and resets its idle-expiry TTL
func (m *MemorySessionStore) SaveSession(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	m.entries.Store(session.UserID, entry{data: data, expiresAt: time.Now().Add(m.sessionTTL)})
	return nil
}

// DeleteSession removes the session for a user.
// This operation is idempotent - deleting a non-existent session does not return an error.
func (m *MemorySessionStore) DeleteSession(ctx context.Context, userID string) error {
	m.entries.Delete(userID)
	return nil
}

// GetCatalog retrieves the cached question catalog.
// Returns (nil, nil) when no unexpired cached copy exists.
func (m *MemorySessionStore) GetCatalog(ctx context.Context) (domain.Catalog, error) {
	data, ok := m.load(catalogKey)
	if !ok {
		return nil, nil
	}

	var catalog domain.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		m.entries.Delete(catalogKey)
		return nil, nil
	}

	return catalog, nil
}

// SaveCatalog caches the question catalog under its own short TTL
func (m *MemorySessionStore) SaveCatalog(ctx context.Context, catalog domain.Catalog) error {
	data, err := json.Marshal(catalog)
	if err != nil {
		return err
	}

	m.entries.Store(catalogKey, entry{data: data, expiresAt: time.Now().Add(m.catalogTTL)})
	return nil
}

// load returns the unexpired raw value for a key, lazily cleaning up expired entries
func (m *MemorySessionStore) load(key string) ([]byte, bool) {
	value, exists := m.entries.Load(key)
	if !exists {
		return nil, false
	}

	e, ok := value.(entry)
	if !ok || e.expired() {
		m.entries.Delete(key)
		return nil, false
	}

	return e.data, true
}
