package usecases_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/samirrijal/placesbridge/internal/core/domain"
)

// --- Mock PlacesClient ---

type mockPlacesClient struct {
	mu     sync.Mutex
	calls  []domain.AutocompleteRequest
	findFn func(ctx context.Context, req domain.AutocompleteRequest) (*domain.AutocompleteResponse, error)
}

func (m *mockPlacesClient) FindAutocompletePredictions(ctx context.Context, req domain.AutocompleteRequest) (*domain.AutocompleteResponse, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()
	if m.findFn != nil {
		return m.findFn(ctx, req)
	}
	return &domain.AutocompleteResponse{}, nil
}

func (m *mockPlacesClient) Calls() []domain.AutocompleteRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.AutocompleteRequest(nil), m.calls...)
}

// --- Mock CacheService ---

type mockCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return v, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttlSeconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// --- Mock RequestLogRepository ---

type mockRequestLog struct {
	mu        sync.Mutex
	entries   []domain.RequestLogEntry
	insertErr error
	cutoff    time.Time
}

func (m *mockRequestLog) Insert(ctx context.Context, e *domain.RequestLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	m.entries = append(m.entries, *e)
	return nil
}

func (m *mockRequestLog) ListBySession(ctx context.Context, token domain.SessionToken, limit int) ([]domain.RequestLogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.RequestLogEntry
	for _, e := range m.entries {
		if e.SessionToken == token {
			out = append(out, e)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockRequestLog) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cutoff = cutoff
	var kept []domain.RequestLogEntry
	var n int64
	for _, e := range m.entries {
		if e.CreatedAt.Before(cutoff) {
			n++
			continue
		}
		kept = append(kept, e)
	}
	m.entries = kept
	return n, nil
}

// --- Mock EventPublisher ---

type mockEvents struct {
	mu        sync.Mutex
	published []domain.RequestLogEntry
}

func (m *mockEvents) PublishAutocompleteCompleted(ctx context.Context, e *domain.RequestLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, *e)
	return nil
}
