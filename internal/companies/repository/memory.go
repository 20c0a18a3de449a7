package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/company-mgmt/company-api-backend/internal/companies/domain"
	"github.com/company-mgmt/company-api-backend/internal/storage"
)

// MemoryRepo is an in-memory Store used by unit tests. It mirrors the
// Firestore repository's semantics, including non-idempotent deletes.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]domain.Company
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]domain.Company)}
}

func (m *MemoryRepo) List(_ context.Context) ([]domain.Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Company, 0, len(m.store))
	for _, c := range m.store {
		out = append(out, c)
	}
	return out, nil
}

func (m *MemoryRepo) Get(_ context.Context, id string) (*domain.Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.store[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &c, nil
}

func (m *MemoryRepo) Create(_ context.Context, c *domain.Company) (*domain.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	c.ID = uuid.New().String()
	c.CreatedAt = now
	c.UpdatedAt = now

	m.store[c.ID] = *c
	return c, nil
}

func (m *MemoryRepo) Update(_ context.Context, id string, c *domain.Company) (*domain.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.store[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	c.ID = id
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	m.store[id] = *c
	return c, nil
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
