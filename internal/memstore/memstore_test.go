package memstore

import (
	"context"
	"errors"
	"testing"

	"fundtrack-go/internal/store"
)

func TestGetMissingKey(t *testing.T) {
	service := NewService()

	_, err := service.Get(context.Background(), "@no_such_key")
	if !errors.Is(err, store.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got: %v", err)
	}
}

func TestSetGetRemove(t *testing.T) {
	service := NewService()
	ctx := context.Background()

	if err := service.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, err := service.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "v" {
		t.Errorf("Expected %q, got %q", "v", value)
	}

	if err := service.Remove(ctx, "k"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := service.Remove(ctx, "k"); err != nil {
		t.Fatalf("Second Remove failed: %v", err)
	}

	if _, err := service.Get(ctx, "k"); !errors.Is(err, store.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound after removal, got: %v", err)
	}
}

func TestSetManyAndRemoveMany(t *testing.T) {
	service := NewService()
	ctx := context.Background()

	if err := service.SetMany(ctx, map[string]string{"a": "1", "b": "2", "c": "3"}); err != nil {
		t.Fatalf("SetMany failed: %v", err)
	}
	if service.Len() != 3 {
		t.Errorf("Expected 3 keys, got %d", service.Len())
	}

	if err := service.RemoveMany(ctx, []string{"a", "b"}); err != nil {
		t.Fatalf("RemoveMany failed: %v", err)
	}
	if service.Len() != 1 {
		t.Errorf("Expected 1 key after RemoveMany, got %d", service.Len())
	}
	if _, err := service.Get(ctx, "c"); err != nil {
		t.Errorf("Expected key c untouched, got: %v", err)
	}
}
