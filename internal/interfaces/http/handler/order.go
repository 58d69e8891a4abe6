package handler

import (
	"github.com/gin-gonic/gin"
	tradeapp "github.com/ims/backend/internal/application/trade"
	"github.com/ims/backend/internal/interfaces/http/middleware"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	BaseHandler
	orderService *tradeapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create places an order. Lines referencing unknown inventory items
// are dropped; the response reports how many.
func (h *OrderHandler) Create(c *gin.Context) {
	var req tradeapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.orderService.Create(c.Request.Context(), middleware.GetPrincipal(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns all orders with their lines, newest first
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, orders)
}

// GetByID returns a single order with its lines
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// Update rewrites an order: previous allocations are returned to stock
// before the new lines are applied.
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req tradeapp.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.orderService.Update(c.Request.Context(), middleware.GetPrincipal(c), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes an order and restores its allocations to stock
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), middleware.GetPrincipal(c), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
