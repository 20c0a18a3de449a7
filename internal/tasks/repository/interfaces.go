package repository

import (
	"context"

	"github.com/company-mgmt/company-api-backend/internal/tasks/domain"
)

// Store is the persistence contract the HTTP handlers and the template
// assignment service depend on.
type Store interface {
	List(ctx context.Context) ([]domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, id string, t *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
