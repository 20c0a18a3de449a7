package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/company-mgmt/company-api-backend/internal/api/http"
	"github.com/company-mgmt/company-api-backend/internal/auth"
	"github.com/company-mgmt/company-api-backend/internal/cache"
	"github.com/company-mgmt/company-api-backend/internal/storage"
	"github.com/company-mgmt/company-api-backend/internal/templates/domain"
	"github.com/company-mgmt/company-api-backend/internal/templates/service"
)

// Register attaches the template routes to the given router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/getall_templates", h.list)
	r.POST("/create_template", h.create)
	r.DELETE("/delete_template/:id", h.delete)
	r.POST("/assign_template/:id", h.assignTemplate)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) create(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.WriteValidationError(c, err)
		return
	}

	userID := auth.UserID(c)
	if userID == "" {
		userID = req.UserID
	}

	tpl, err := h.store.Create(c.Request.Context(), &domain.TaskTemplate{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tpl)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found", "id": id})
			return
		}
		httpapi.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "template deleted", "id": id})
}

func (h *Handler) assignTemplate(c *gin.Context) {
	id := c.Param("id")

	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.WriteValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	created, err := h.assign.Assign(ctx, id, service.AssignInput{
		CompanyIDs: req.CompanyIDs,
		StartDate:  req.StartDate,
		DueDate:    req.DueDate,
	})
	// the fan-out writes tasks, so the cached task list is stale even when
	// the loop stopped partway through
	if len(created) > 0 {
		_ = h.lists.Invalidate(ctx, cache.TasksListKey)
	}
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found", "id": id})
			return
		}
		// fail-fast: report how far the fan-out got before the store error
		c.JSON(httpapi.ErrorStatus(err), gin.H{"error": err.Error(), "created": len(created)})
		return
	}

	c.JSON(http.StatusCreated, created)
}
