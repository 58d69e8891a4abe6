package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/ims/backend/internal/application/partner"
	"github.com/ims/backend/internal/interfaces/http/middleware"
)

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create adds a new customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req partnerapp.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), middleware.GetPrincipal(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, customer)
}

// List returns all active customers, newest first
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customers)
}

// GetByID returns a single customer
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// Update replaces a customer's editable fields
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	var req partnerapp.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// Delete removes a customer permanently
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
