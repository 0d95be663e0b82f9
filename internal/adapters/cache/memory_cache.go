package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mikey/scam-check/internal/core"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a cache entry is missing or expired
var ErrNotFound = errors.New("cache entry not found")

type entry struct {
	verdict   core.RiskVerdict
	expiresAt time.Time
}

// MemoryCache is an in-memory implementation of the VerdictCache interface
type MemoryCache struct {
	entries     map[string]entry
	mu          sync.RWMutex
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewMemoryCache creates a new in-memory verdict cache
func NewMemoryCache(logger *zap.Logger, cleanupFreq time.Duration) *MemoryCache {
	cache := &MemoryCache{
		entries:     make(map[string]entry),
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}

	// Start background cleanup
	go cache.startCleanupTask()

	return cache
}

// Get retrieves a cached verdict for an input
func (c *MemoryCache) Get(_ context.Context, input string) (*core.RiskVerdict, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[input]
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(e.expiresAt) {
		return nil, ErrNotFound
	}

	verdict := e.verdict
	return &verdict, nil
}

// Set stores a verdict with a TTL
func (c *MemoryCache) Set(_ context.Context, input string, verdict *core.RiskVerdict, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[input] = entry{
		verdict:   *verdict,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a cached verdict
func (c *MemoryCache) Delete(_ context.Context, input string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, input)
	return nil
}

// Cleanup removes expired entries
func (c *MemoryCache) Cleanup(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	expiredCount := 0

	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			expiredCount++
		}
	}

	c.logger.Debug("Cleaned up expired cache entries", zap.Int("expired_count", expiredCount))
	return nil
}

// startCleanupTask starts a background task to clean up expired entries
func (c *MemoryCache) startCleanupTask() {
	ticker := time.NewTicker(c.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Cleanup(context.Background()); err != nil {
				c.logger.Error("Failed to clean up cache", zap.Error(err))
			}
		case <-c.stopCh:
			return
		}
	}
}

// Stop stops the background cleanup task
func (c *MemoryCache) Stop() {
	close(c.stopCh)
}
