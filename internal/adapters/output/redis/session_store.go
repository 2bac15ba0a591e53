package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"messenger-selfcheck/internal/domain"
	"messenger-selfcheck/internal/ports/output"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure RedisSessionStore implements SessionStore interface
var _ output.SessionStore = (*RedisSessionStore)(nil)

// catalogKey is the single shared cache key for the question catalog
const catalogKey = "questions"

// RedisSessionStore struct - Output adapter persisting sessions and the cached
// catalog in Redis. Idle expiry rides on Redis key TTLs: a session untouched
// past its TTL simply reads back as missing.
type RedisSessionStore struct {
	client     *goredis.Client
	sessionTTL time.Duration
	catalogTTL time.Duration
}

// NewRedisSessionStore func - Creates new Redis session store
func NewRedisSessionStore(addr string, sessionTTL, catalogTTL time.Duration) *RedisSessionStore {
	client := goredis.NewClient(&goredis.Options{
		Addr: addr,
	})

	logrus.Infof("Redis session store initialized: addr=%s, sessionTTL=%v, catalogTTL=%v", addr, sessionTTL, catalogTTL)

	return &RedisSessionStore{
		client:     client,
		sessionTTL: sessionTTL,
		catalogTTL: catalogTTL,
	}
}

// Ping verifies connectivity to Redis
func (r *RedisSessionStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// GetSession retrieves the session for a user.
// Returns (nil, nil) when the key is missing or expired.
func (r *RedisSessionStore) GetSession(ctx context.Context, userID string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, userID).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session from redis: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// Malformed payload reads back as a missing session
		logrus.Warnf("Dropping malformed session payload for userID=%s: %v", userID, err)
		r.client.Del(ctx, userID)
		return nil, nil
	}
	session.UserID = userID

	return &session, nil
}

// SaveSession creates or overwrites the session and resets its idle-expiry TTL
func (r *RedisSessionStore) SaveSession(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, session.UserID, data, r.sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to write session to redis: %w", err)
	}
	return nil
}

// DeleteSession removes the session for a user.
// This operation is idempotent - deleting a non-existent session does not return an error.
func (r *RedisSessionStore) DeleteSession(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, userID).Err(); err != nil {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}

// GetCatalog retrieves the cached question catalog.
// Returns (nil, nil) when no unexpired cached copy exists.
func (r *RedisSessionStore) GetCatalog(ctx context.Context) (domain.Catalog, error) {
	data, err := r.client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog cache from redis: %w", err)
	}

	var catalog domain.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		logrus.Warnf("Dropping malformed catalog cache payload: %v", err)
		r.client.Del(ctx, catalogKey)
		return nil, nil
	}

	return catalog, nil
}

// SaveCatalog caches the question catalog under its own short TTL
func (r *RedisSessionStore) SaveCatalog(ctx context.Context, catalog domain.Catalog) error {
	data, err := json.Marshal(catalog)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, catalogKey, data, r.catalogTTL).Err(); err != nil {
		return fmt.Errorf("failed to write catalog cache to redis: %w", err)
	}
	return nil
}
