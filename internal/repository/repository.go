/**
 * Copyright 2025-present FundTrack Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package repository maps domain entities (users, funds, investments,
// transactions, settings, the portfolio cache) onto the flat key-value
// store. List entities use a whole-collection read-modify-write pattern;
// writes to the same collection key are serialized through per-key mutexes
// so concurrent callers cannot clobber each other.
//
// Failure semantics are asymmetric on purpose: a failed read degrades to a
// zero value or empty list so the app can still render, a failed write or
// delete is logged and returned so the caller can react.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"fundtrack-go/internal/models"
	"fundtrack-go/internal/store"

	"go.uber.org/zap"
)

type Repository struct {
	store      store.Store
	opTimeout  time.Duration
	sessionTTL time.Duration
	cacheTTL   time.Duration

	// now is swapped in tests to simulate clock advancement.
	now func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(st store.Store, cfg *models.Config) *Repository {
	return &Repository{
		store:      st,
		opTimeout:  cfg.Storage.OpTimeout,
		sessionTTL: cfg.Session.TTL,
		cacheTTL:   cfg.Cache.PortfolioTTL,
		now:        time.Now,
		locks:      make(map[string]*sync.Mutex),
	}
}

// keyLock returns the mutex serializing writes to a single storage key.
func (r *Repository) keyLock(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[key] = lock
	}
	return lock
}

func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.opTimeout)
}

// readRaw fetches a key, degrading any failure (absent key, I/O error,
// expired deadline) to "not present".
func (r *Repository) readRaw(ctx context.Context, key string) (string, bool) {
	opCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	raw, err := r.store.Get(opCtx, key)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			zap.L().Warn("Storage read failed, degrading to default",
				zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return raw, true
}

// writeRaw stores a value under a key. Write failures propagate.
func (r *Repository) writeRaw(ctx context.Context, key, value string) error {
	opCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.store.Set(opCtx, key, value); err != nil {
		zap.L().Error("Storage write failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("unable to write %s: %w", key, err)
	}
	return nil
}

// removeRaw deletes a key. Delete failures propagate; deleting an absent
// key is not an error.
func (r *Repository) removeRaw(ctx context.Context, key string) error {
	opCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.store.Remove(opCtx, key); err != nil {
		zap.L().Error("Storage delete failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("unable to remove %s: %w", key, err)
	}
	return nil
}

// getList reads a whole collection blob, degrading absent or corrupt data
// to an empty slice.
func getList[T any](ctx context.Context, r *Repository, key string) []T {
	raw, ok := r.readRaw(ctx, key)
	if !ok {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		zap.L().Warn("Corrupt collection blob, degrading to empty list",
			zap.String("key", key), zap.Error(err))
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// putList rewrites a whole collection blob.
func putList[T any](ctx context.Context, r *Repository, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("unable to encode %s: %w", key, err)
	}
	return r.writeRaw(ctx, key, string(data))
}

// ClearAllData bulk-removes every known key. Used for logout; irreversible.
func (r *Repository) ClearAllData(ctx context.Context) error {
	opCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.store.RemoveMany(opCtx, store.AllKeys()); err != nil {
		zap.L().Error("Failed to clear all data", zap.Error(err))
		return fmt.Errorf("unable to clear all data: %w", err)
	}

	zap.L().Info("All local data cleared")
	return nil
}
