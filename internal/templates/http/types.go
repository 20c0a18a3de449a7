package http

import (
	"github.com/company-mgmt/company-api-backend/internal/cache"
	"github.com/company-mgmt/company-api-backend/internal/templates/repository"
	"github.com/company-mgmt/company-api-backend/internal/templates/service"
)

// Handler bundles the dependencies for template HTTP endpoints.
type Handler struct {
	store  repository.Store
	assign *service.AssignService
	lists  *cache.ListCache
}

func New(store repository.Store, assign *service.AssignService) *Handler {
	return &Handler{store: store, assign: assign}
}

// WithListCache lets the assignment fan-out invalidate the cached task list.
func (h *Handler) WithListCache(lists *cache.ListCache) *Handler {
	h.lists = lists
	return h
}

type templateRequest struct {
	// user_id is taken from the authenticated context when present; the body
	// field is the fallback for unauthenticated deployments.
	UserID      string `json:"user_id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type assignRequest struct {
	CompanyIDs []string `json:"companyIds" binding:"required,min=1"`
	StartDate  string   `json:"startDate"`
	DueDate    string   `json:"dueDate"`
}
