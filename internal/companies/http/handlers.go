package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/company-mgmt/company-api-backend/internal/api/http"
	"github.com/company-mgmt/company-api-backend/internal/cache"
	"github.com/company-mgmt/company-api-backend/internal/companies/domain"
	"github.com/company-mgmt/company-api-backend/internal/storage"
)

// Register attaches the company routes to the given router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/getall_companies", h.list)
	r.GET("/get_company/:id", h.get)
	r.POST("/create_company", h.create)
	r.PUT("/update_company/:id", h.update)
	r.DELETE("/delete_company/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []domain.Company
	if h.lists.GetJSON(ctx, cache.CompaniesListKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	items, err := h.store.List(ctx)
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}

	_ = h.lists.SetJSON(ctx, cache.CompaniesListKey, items)
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")

	company, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found", "id": id})
			return
		}
		httpapi.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *Handler) create(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.WriteValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	company, err := h.store.Create(ctx, req.toDomain())
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}

	_ = h.lists.Invalidate(ctx, cache.CompaniesListKey)
	c.JSON(http.StatusCreated, company)
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.WriteValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	company, err := h.store.Update(ctx, id, req.toDomain())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found", "id": id})
			return
		}
		httpapi.WriteError(c, err)
		return
	}

	_ = h.lists.Invalidate(ctx, cache.CompaniesListKey)
	c.JSON(http.StatusOK, company)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	ctx := c.Request.Context()
	if err := h.store.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found", "id": id})
			return
		}
		httpapi.WriteError(c, err)
		return
	}

	_ = h.lists.Invalidate(ctx, cache.CompaniesListKey)
	c.JSON(http.StatusOK, gin.H{"message": "company deleted", "id": id})
}

func (r *companyRequest) toDomain() *domain.Company {
	return &domain.Company{
		Name:                  r.Name,
		EIN:                   r.EIN,
		StartDate:             r.StartDate,
		StateIncorporated:     r.StateIncorporated,
		ContactPersonName:     r.ContactPersonName,
		ContactPersonPhNumber: r.ContactPersonPhNumber,
		Address1:              r.Address1,
		Address2:              r.Address2,
		City:                  r.City,
		State:                 r.State,
		Zip:                   r.Zip,
	}
}
