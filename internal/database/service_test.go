package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"fundtrack-go/internal/models"
	"fundtrack-go/internal/store"
)

func setupTestStore(t *testing.T) (*Service, func()) {
	service, err := NewService(context.Background(), models.DatabaseConfig{
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		PingTimeout:  5 * time.Second,
	})
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}

	cleanup := func() {
		service.Close()
	}

	return service, cleanup
}

func TestSetGetRoundTrip(t *testing.T) {
	service, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	if err := service.Set(ctx, "@user_profile", `{"id":"u1"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, err := service.Get(ctx, "@user_profile")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != `{"id":"u1"}` {
		t.Errorf("Expected stored value back, got %q", value)
	}
}

func TestSetOverwritesExistingValue(t *testing.T) {
	service, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	if err := service.Set(ctx, "k", "first"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := service.Set(ctx, "k", "second"); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}

	value, err := service.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "second" {
		t.Errorf("Expected overwritten value, got %q", value)
	}
}

func TestGetMissingKey(t *testing.T) {
	service, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := service.Get(context.Background(), "@no_such_key")
	if err == nil {
		t.Fatal("Expected error for missing key, got nil")
	}
	if !errors.Is(err, store.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got: %v", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	service, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	if err := service.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := service.Remove(ctx, "k"); err != nil {
		t.Fatalf("First Remove failed: %v", err)
	}
	if err := service.Remove(ctx, "k"); err != nil {
		t.Fatalf("Second Remove failed: %v", err)
	}

	if _, err := service.Get(ctx, "k"); !errors.Is(err, store.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound after removal, got: %v", err)
	}
}

func TestSetManyWritesAllEntries(t *testing.T) {
	service, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	entries := map[string]string{
		"@user_profile": `{"id":"u1"}`,
		"@user_session": `{"isAuthenticated":true,"userId":"u1","timestamp":1}`,
	}
	if err := service.SetMany(ctx, entries); err != nil {
		t.Fatalf("SetMany failed: %v", err)
	}

	for key, want := range entries {
		got, err := service.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get %s failed: %v", key, err)
		}
		if got != want {
			t.Errorf("Key %s: expected %q, got %q", key, want, got)
		}
	}
}

func TestRemoveManyLeavesOtherKeys(t *testing.T) {
	service, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		if err := service.Set(ctx, key, "v"); err != nil {
			t.Fatalf("Set %s failed: %v", key, err)
		}
	}

	if err := service.RemoveMany(ctx, []string{"a", "b"}); err != nil {
		t.Fatalf("RemoveMany failed: %v", err)
	}

	if _, err := service.Get(ctx, "a"); !errors.Is(err, store.ErrKeyNotFound) {
		t.Errorf("Expected key a removed, got: %v", err)
	}
	if _, err := service.Get(ctx, "c"); err != nil {
		t.Errorf("Expected key c untouched, got: %v", err)
	}
}

func TestNewServiceRejectsBadConfig(t *testing.T) {
	_, err := NewService(context.Background(), models.DatabaseConfig{
		Path:         "",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		PingTimeout:  time.Second,
	})
	if err == nil {
		t.Error("Expected error for empty database path")
	}

	_, err = NewService(context.Background(), models.DatabaseConfig{
		Path:         ":memory:",
		MaxOpenConns: 0,
		MaxIdleConns: 1,
		PingTimeout:  time.Second,
	})
	if err == nil {
		t.Error("Expected error for zero max open connections")
	}
}
