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

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fundtrack-go/internal/models"
	"fundtrack-go/internal/store"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Compile-time check: *Service must satisfy store.Store.
var _ store.Store = (*Service)(nil)

// Service is the SQLite-backed key-value store. It is the durable on-device
// backend; the memstore package provides the ephemeral one.
type Service struct {
	db *sql.DB
}

func NewService(ctx context.Context, cfg models.DatabaseConfig) (*Service, error) {
	// Validate configuration
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if cfg.MaxOpenConns <= 0 {
		return nil, fmt.Errorf("max open connections must be positive, got %d", cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns < 0 {
		return nil, fmt.Errorf("max idle connections cannot be negative, got %d", cfg.MaxIdleConns)
	}
	if cfg.PingTimeout <= 0 {
		return nil, fmt.Errorf("ping timeout must be positive, got %v", cfg.PingTimeout)
	}

	zap.L().Info("Opening SQLite key-value store", zap.String("file", cfg.Path))
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_cache_size=1000")
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	// Set connection timeouts and limits
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test connection with timeout
	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, closeErr
		}
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	service := &Service{db: db}
	if err := service.initSchema(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, closeErr
		}
		return nil, fmt.Errorf("unable to initialize schema: %w", err)
	}

	zap.L().Info("Key-value store initialized successfully")
	return service, nil
}

func (s *Service) Close() {
	if err := s.db.Close(); err != nil {
		zap.L().Warn("Failed to close database connection", zap.Error(err))
	}
}

func (s *Service) initSchema() error {
	schema := `
	-- Flat string-keyed store; values are JSON blobs owned by the caller
	CREATE TABLE IF NOT EXISTS kv_store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_kv_store_updated_at ON kv_store(updated_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *Service) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, queryGetValue, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", store.ErrKeyNotFound, key)
		}
		zap.L().Error("Failed to read key", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("unable to read key %s: %w", key, err)
	}
	return value, nil
}

func (s *Service) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, queryUpsertValue, key, value); err != nil {
		zap.L().Error("Failed to write key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("unable to write key %s: %w", key, err)
	}
	return nil
}

// SetMany writes every entry inside a single transaction, so either all keys
// are updated or none are.
func (s *Service) SetMany(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for key, value := range entries {
		if _, err := tx.ExecContext(ctx, queryUpsertValue, key, value); err != nil {
			zap.L().Error("Failed to write key in batch", zap.String("key", key), zap.Error(err))
			return fmt.Errorf("unable to write key %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch write: %w", err)
	}
	return nil
}

func (s *Service) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, queryDeleteValue, key); err != nil {
		zap.L().Error("Failed to remove key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("unable to remove key %s: %w", key, err)
	}
	return nil
}

func (s *Service) RemoveMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, key := range keys {
		if _, err := tx.ExecContext(ctx, queryDeleteValue, key); err != nil {
			zap.L().Error("Failed to remove key in batch", zap.String("key", key), zap.Error(err))
			return fmt.Errorf("unable to remove key %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch removal: %w", err)
	}
	return nil
}
