package repository

import (
	"context"

	"github.com/company-mgmt/company-api-backend/internal/companies/domain"
)

// Store is the persistence contract the HTTP handlers depend on.
type Store interface {
	List(ctx context.Context) ([]domain.Company, error)
	Get(ctx context.Context, id string) (*domain.Company, error)
	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
	Update(ctx context.Context, id string, c *domain.Company) (*domain.Company, error)
	Delete(ctx context.Context, id string) error
}
