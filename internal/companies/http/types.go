package http

import (
	"github.com/company-mgmt/company-api-backend/internal/cache"
	"github.com/company-mgmt/company-api-backend/internal/companies/repository"
)

// Handler bundles the dependencies for company HTTP endpoints.
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

// companyRequest is the accepted create/update body. The id is never taken
// from the client. address2 is the only optional attribute.
type companyRequest struct {
	Name                  string `json:"name" binding:"required"`
	EIN                   string `json:"EIN" binding:"required"`
	StartDate             string `json:"startDate" binding:"required"`
	StateIncorporated     string `json:"stateIncorporated" binding:"required"`
	ContactPersonName     string `json:"contactPersonName" binding:"required"`
	ContactPersonPhNumber string `json:"contactPersonPhNumber" binding:"required"`
	Address1              string `json:"address1" binding:"required"`
	Address2              string `json:"address2"`
	City                  string `json:"city" binding:"required"`
	State                 string `json:"state" binding:"required"`
	Zip                   string `json:"zip" binding:"required"`
}
