package handler

import (
	"github.com/gin-gonic/gin"
	inventoryapp "github.com/ims/backend/internal/application/inventory"
	"github.com/ims/backend/internal/interfaces/http/middleware"
)

// InventoryHandler handles inventory item endpoints
type InventoryHandler struct {
	BaseHandler
	itemService *inventoryapp.ItemService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(itemService *inventoryapp.ItemService) *InventoryHandler {
	return &InventoryHandler{itemService: itemService}
}

// Create adds a new inventory item
func (h *InventoryHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), middleware.GetPrincipal(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, item)
}

// List returns all inventory items, newest first
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.itemService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, items)
}

// GetByID returns a single inventory item
func (h *InventoryHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.itemService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// Update replaces an item's editable fields, stock level included
func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req inventoryapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// Delete removes an inventory item permanently
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
