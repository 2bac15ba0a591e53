package output

import (
	"context"

	"messenger-selfcheck/internal/domain"
)

// SessionStore interface - Output port
// Defines what the application needs for persisting conversation state in an
// external TTL cache. Two logical keys exist per deployment: one session per
// user, plus a single shared catalog cache entry. Each carries its own expiry;
// sessions untouched past their TTL read back as missing.
// Implementations must be safe for concurrent access.
type SessionStore interface {
	// GetSession retrieves the session for a user.
	// Returns (nil, nil) when the session does not exist or has expired;
	// an error is returned only on storage access failure.
	GetSession(ctx context.Context, userID string) (*domain.Session, error)

	// SaveSession creates or overwrites the session for session.UserID and
	// resets its idle-expiry TTL.
	SaveSession(ctx context.Context, session *domain.Session) error

	// DeleteSession removes the session for a user.
	// This operation is idempotent - deleting a non-existent session
	// should not return an error.
	DeleteSession(ctx context.Context, userID string) error

	// GetCatalog retrieves the cached question catalog.
	// Returns (nil, nil) when no unexpired cached copy exists.
	GetCatalog(ctx context.Context) (domain.Catalog, error)

	// SaveCatalog caches the question catalog under its own short TTL.
	SaveCatalog(ctx context.Context, catalog domain.Catalog) error
}
