package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/company-mgmt/company-api-backend/internal/storage"
	"github.com/company-mgmt/company-api-backend/internal/tasks/domain"
)

// MemoryRepo is an in-memory Store used by unit tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]domain.Task
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]domain.Task)}
}

func (m *MemoryRepo) List(_ context.Context) ([]domain.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Task, 0, len(m.store))
	for _, t := range m.store {
		out = append(out, t)
	}
	return out, nil
}

func (m *MemoryRepo) Get(_ context.Context, id string) (*domain.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.store[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &t, nil
}

func (m *MemoryRepo) Create(_ context.Context, t *domain.Task) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	t.ID = uuid.New().String()
	t.CreatedAt = now
	t.UpdatedAt = now

	m.store[t.ID] = *t
	return t, nil
}

func (m *MemoryRepo) Update(_ context.Context, id string, t *domain.Task) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.store[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	t.ID = id
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now().UTC()

	m.store[id] = *t
	return t, nil
}

func (m *MemoryRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.store[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.store, id)
	return nil
}
