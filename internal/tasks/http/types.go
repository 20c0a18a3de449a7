package http

import (
	"github.com/company-mgmt/company-api-backend/internal/cache"
	"github.com/company-mgmt/company-api-backend/internal/tasks/domain"
	"github.com/company-mgmt/company-api-backend/internal/tasks/repository"
)

// Handler bundles the dependencies for task HTTP endpoints.
type Handler struct {
	store repository.Store
	lists *cache.ListCache
}

func New(store repository.Store) *Handler {
	return &Handler{store: store}
}

// WithListCache enables the short-lived cache on the list endpoint.
func (h *Handler) WithListCache(lists *cache.ListCache) *Handler {
	h.lists = lists
	return h
}

// taskRequest is the accepted create/update body. companyId is stored as-is;
// its existence is deliberately not checked against the companies collection.
type taskRequest struct {
	CompanyID   string `json:"companyId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	StartDate   string `json:"startDate"`
	DueDate     string `json:"dueDate"`
}

func (r *taskRequest) toDomain() *domain.Task {
	return &domain.Task{
		CompanyID:   r.CompanyID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		StartDate:   r.StartDate,
		DueDate:     r.DueDate,
	}
}
