package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/company-mgmt/company-api-backend/internal/api/http"
	"github.com/company-mgmt/company-api-backend/internal/cache"
	"github.com/company-mgmt/company-api-backend/internal/storage"
	"github.com/company-mgmt/company-api-backend/internal/tasks/domain"
)

// Register attaches the task routes to the given router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/getall_tasks", h.list)
	r.GET("/get_task/:id", h.get)
	r.POST("/create_task", h.create)
	r.PUT("/update_task/:id", h.update)
	r.DELETE("/delete_task/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []domain.Task
	if h.lists.GetJSON(ctx, cache.TasksListKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	items, err := h.store.List(ctx)
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}

	_ = h.lists.SetJSON(ctx, cache.TasksListKey, items)
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")

	task, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found", "id": id})
			return
		}
		httpapi.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) create(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.WriteValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	task, err := h.store.Create(ctx, req.toDomain())
	if err != nil {
		httpapi.WriteError(c, err)
		return
	}

	_ = h.lists.Invalidate(ctx, cache.TasksListKey)
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.WriteValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	task, err := h.store.Update(ctx, id, req.toDomain())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found", "id": id})
			return
		}
		httpapi.WriteError(c, err)
		return
	}

	_ = h.lists.Invalidate(ctx, cache.TasksListKey)
	c.JSON(http.StatusOK, task)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	ctx := c.Request.Context()
	if err := h.store.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found", "id": id})
			return
		}
		httpapi.WriteError(c, err)
		return
	}

	_ = h.lists.Invalidate(ctx, cache.TasksListKey)
	c.JSON(http.StatusOK, gin.H{"message": "task deleted", "id": id})
}
