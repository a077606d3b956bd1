package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fundtrack-go/internal/store"

	"go.uber.org/zap"
)

// ExportData serializes every present key into a single JSON object of
// key -> raw stored value. Unlike reads in the rest of the repository,
// export is a deliberate backup operation, so I/O failures propagate.
func (r *Repository) ExportData(ctx context.Context) (string, error) {
	exported := make(map[string]json.RawMessage)

	for _, key := range store.AllKeys() {
		opCtx, cancel := r.withTimeout(ctx)
		raw, err := r.store.Get(opCtx, key)
		cancel()
		if err != nil {
			if errors.Is(err, store.ErrKeyNotFound) {
				continue
			}
			zap.L().Error("Export failed", zap.String("key", key), zap.Error(err))
			return "", fmt.Errorf("unable to export %s: %w", key, err)
		}
		exported[key] = json.RawMessage(raw)
	}

	blob, err := json.Marshal(exported)
	if err != nil {
		return "", fmt.Errorf("unable to encode export: %w", err)
	}

	zap.L().Info("Data exported", zap.Int("keys", len(exported)))
	return string(blob), nil
}

// ImportData overwrites keys from a previously exported blob, one key at a
// time. There is no schema validation and no rollback on partial failure;
// callers should treat a failed import as corrupt state and re-import or
// wipe.
func (r *Repository) ImportData(ctx context.Context, blob string) error {
	var data map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		return fmt.Errorf("unable to decode import blob: %w", err)
	}

	for key, raw := range data {
		lock := r.keyLock(key)
		lock.Lock()
		err := r.writeRaw(ctx, key, string(raw))
		lock.Unlock()
		if err != nil {
			return fmt.Errorf("unable to import %s: %w", key, err)
		}
	}

	zap.L().Info("Data imported", zap.Int("keys", len(data)))
	return nil
}
