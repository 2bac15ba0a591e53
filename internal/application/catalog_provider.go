package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"messenger-selfcheck/internal/domain"
	"messenger-selfcheck/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// CatalogProvider struct - Application service resolving the question catalog
// through a two-tier lookup: a time-bounded process-local memo, then the
// shared store cache, then the remote questions service. Both tiers are
// repopulated after a remote fetch.
//
// Concurrent lookups on a cold cache may each hit the remote service; the
// fetch is idempotent so no single-flight dedup is done.
type CatalogProvider struct {
	store   output.SessionStore
	client  output.QuestionsClient
	memoTTL time.Duration

	mu        sync.RWMutex
	memo      domain.Catalog
	fetchedAt time.Time
}

// NewCatalogProvider func - Creates new catalog provider
func NewCatalogProvider(store output.SessionStore, client output.QuestionsClient, memoTTL time.Duration) *CatalogProvider {
	return &CatalogProvider{
		store:   store,
		client:  client,
		memoTTL: memoTTL,
	}
}

// Questions returns the ordered question catalog
func (p *CatalogProvider) Questions(ctx context.Context) (domain.Catalog, error) {
	p.mu.RLock()
	if p.memo != nil && time.Since(p.fetchedAt) < p.memoTTL {
		memo := p.memo
		p.mu.RUnlock()
		return memo, nil
	}
	p.mu.RUnlock()

	catalog, err := p.store.GetCatalog(ctx)
	if err != nil {
		// A cache read failure only costs an extra remote fetch
		logrus.Warnf("Failed to read catalog cache: %v", err)
		catalog = nil
	}

	if catalog == nil {
		catalog, err = p.client.FetchQuestions(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}
		logrus.Infof("Fetched question catalog from remote service: %d questions", len(catalog))

		if err := p.store.SaveCatalog(ctx, catalog); err != nil {
			logrus.Warnf("Failed to cache question catalog: %v", err)
		}
	}

	p.mu.Lock()
	p.memo = catalog
	p.fetchedAt = time.Now()
	p.mu.Unlock()

	return catalog, nil
}
