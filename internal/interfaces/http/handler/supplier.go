package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/ims/backend/internal/application/partner"
	"github.com/ims/backend/internal/interfaces/http/middleware"
)

// SupplierHandler handles supplier endpoints
type SupplierHandler struct {
	BaseHandler
	supplierService *partnerapp.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService *partnerapp.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// Create adds a new supplier
func (h *SupplierHandler) Create(c *gin.Context) {
	var req partnerapp.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	supplier, err := h.supplierService.Create(c.Request.Context(), middleware.GetPrincipal(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, supplier)
}

// List returns all active suppliers, newest first
func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.supplierService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, suppliers)
}

// GetByID returns a single supplier
func (h *SupplierHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	supplier, err := h.supplierService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, supplier)
}

// Update replaces a supplier's editable fields
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req partnerapp.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	supplier, err := h.supplierService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, supplier)
}

// Delete deactivates a supplier. The row stays behind for the
// dashboard counters.
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	if err := h.supplierService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
