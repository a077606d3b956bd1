package memstore

import (
	"context"
	"fmt"
	"sync"

	"fundtrack-go/internal/store"
)

// Compile-time check: *Service must satisfy store.Store.
var _ store.Store = (*Service)(nil)

// Service is a mutex-guarded in-memory key-value store. It backs tests and
// ephemeral sessions; nothing survives process exit.
type Service struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewService() *Service {
	return &Service{
		values: make(map[string]string),
	}
}

func (s *Service) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", store.ErrKeyNotFound, key)
	}
	return value, nil
}

func (s *Service) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *Service) SetMany(_ context.Context, entries map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range entries {
		s.values[key] = value
	}
	return nil
}

func (s *Service) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

func (s *Service) RemoveMany(_ context.Context, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}

func (s *Service) Close() {}

// Len reports the number of stored keys. Test helper.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
