package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"fundtrack-go/internal/models"
	"fundtrack-go/internal/store"

	"go.uber.org/zap"
)

// SaveUser persists the profile blob together with a fresh session blob.
// Both keys go through SetMany so the SQLite backend commits them in one
// transaction; a crash can no longer leave a profile without a session.
func (r *Repository) SaveUser(ctx context.Context, user models.User) error {
	lock := r.keyLock(store.KeyUserProfile)
	lock.Lock()
	defer lock.Unlock()

	profile, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("unable to encode user profile: %w", err)
	}

	session, err := json.Marshal(models.Session{
		IsAuthenticated: true,
		UserId:          user.Id,
		Timestamp:       r.now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("unable to encode session: %w", err)
	}

	opCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	entries := map[string]string{
		store.KeyUserProfile: string(profile),
		store.KeyUserSession: string(session),
	}
	if err := r.store.SetMany(opCtx, entries); err != nil {
		zap.L().Error("Failed to save user", zap.String("user_id", user.Id), zap.Error(err))
		return fmt.Errorf("unable to save user: %w", err)
	}

	zap.L().Info("User saved", zap.String("user_id", user.Id), zap.String("email", user.Email))
	return nil
}

// GetUser returns the resident user, or nil when absent or unreadable.
func (r *Repository) GetUser(ctx context.Context) *models.User {
	raw, ok := r.readRaw(ctx, store.KeyUserProfile)
	if !ok {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		zap.L().Warn("Corrupt user profile blob", zap.Error(err))
		return nil
	}
	return &user
}

// ClearUser removes the profile and session but leaves the rest of the
// keyspace untouched.
func (r *Repository) ClearUser(ctx context.Context) error {
	opCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	keys := []string{store.KeyUserProfile, store.KeyUserSession}
	if err := r.store.RemoveMany(opCtx, keys); err != nil {
		zap.L().Error("Failed to clear user", zap.Error(err))
		return fmt.Errorf("unable to clear user: %w", err)
	}
	return nil
}

// CheckUserSession reports whether the persisted session is still within
// its TTL. Missing or unreadable sessions count as expired.
func (r *Repository) CheckUserSession(ctx context.Context) bool {
	raw, ok := r.readRaw(ctx, store.KeyUserSession)
	if !ok {
		return false
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		zap.L().Warn("Corrupt session blob", zap.Error(err))
		return false
	}

	sessionAge := r.now().UnixMilli() - session.Timestamp
	return session.IsAuthenticated && sessionAge < r.sessionTTL.Milliseconds()
}

// SaveSettings persists standalone user settings.
func (r *Repository) SaveSettings(ctx context.Context, settings models.UserSettings) error {
	lock := r.keyLock(store.KeyUserSettings)
	lock.Lock()
	defer lock.Unlock()

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("unable to encode settings: %w", err)
	}
	return r.writeRaw(ctx, store.KeyUserSettings, string(data))
}

// GetSettings returns stored settings, or nil when absent or unreadable.
func (r *Repository) GetSettings(ctx context.Context) *models.UserSettings {
	raw, ok := r.readRaw(ctx, store.KeyUserSettings)
	if !ok {
		return nil
	}

	var settings models.UserSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		zap.L().Warn("Corrupt settings blob", zap.Error(err))
		return nil
	}
	return &settings
}
