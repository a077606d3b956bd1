package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"fundtrack-go/internal/models"
	"fundtrack-go/internal/store"

	"go.uber.org/zap"
)

// cacheEnvelope wraps the cached summary with its write time so staleness
// is decided by wall-clock age on read.
type cacheEnvelope struct {
	Portfolio models.PortfolioSummary `json:"portfolio"`
	Timestamp int64                   `json:"timestamp"`
}

// SavePortfolioCache stores the valuation result stamped with the current
// time.
func (r *Repository) SavePortfolioCache(ctx context.Context, summary models.PortfolioSummary) error {
	lock := r.keyLock(store.KeyPortfolioCache)
	lock.Lock()
	defer lock.Unlock()

	data, err := json.Marshal(cacheEnvelope{
		Portfolio: summary,
		Timestamp: r.now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("unable to encode portfolio cache: %w", err)
	}
	return r.writeRaw(ctx, store.KeyPortfolioCache, string(data))
}

// GetPortfolioCache returns the cached summary while it is fresh. A stale
// entry is eagerly deleted and nil is returned; this single-entry TTL is
// the only cache-eviction policy in the system.
func (r *Repository) GetPortfolioCache(ctx context.Context) *models.PortfolioSummary {
	raw, ok := r.readRaw(ctx, store.KeyPortfolioCache)
	if !ok {
		return nil
	}

	var envelope cacheEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		zap.L().Warn("Corrupt portfolio cache blob", zap.Error(err))
		return nil
	}

	cacheAge := r.now().UnixMilli() - envelope.Timestamp
	if cacheAge > r.cacheTTL.Milliseconds() {
		lock := r.keyLock(store.KeyPortfolioCache)
		lock.Lock()
		defer lock.Unlock()

		if err := r.removeRaw(ctx, store.KeyPortfolioCache); err != nil {
			zap.L().Warn("Failed to evict stale portfolio cache", zap.Error(err))
		}
		return nil
	}

	return &envelope.Portfolio
}
