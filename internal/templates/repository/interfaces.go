package repository

import (
	"context"

	"github.com/company-mgmt/company-api-backend/internal/templates/domain"
)

// Store is the persistence contract for task templates. Templates support a
// narrower surface than the other entities: no single-get endpoint exists,
// but Get is still needed by the assignment service.
type Store interface {
	List(ctx context.Context) ([]domain.TaskTemplate, error)
	Get(ctx context.Context, id string) (*domain.TaskTemplate, error)
	Create(ctx context.Context, t *domain.TaskTemplate) (*domain.TaskTemplate, error)
	Delete(ctx context.Context, id string) error
}
