package partner

import (
	"time"

	"github.com/ims/backend/internal/domain/partner"
)

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Email   string `json:"email" binding:"omitempty,email,max=200"`
	Phone   string `json:"phone" binding:"max=50"`
	Address string `json:"address" binding:"max=500"`
}

// UpdateCustomerRequest replaces a customer's editable fields
type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Email   string `json:"email" binding:"omitempty,email,max=200"`
	Phone   string `json:"phone" binding:"max=50"`
	Address string `json:"address" binding:"max=500"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCustomerResponse converts a domain customer to its API representation
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
	}
}

// CreateSupplierRequest represents a request to create a new supplier
type CreateSupplierRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=100"`
	ContactPerson string `json:"contact_person" binding:"max=100"`
	Email         string `json:"email" binding:"omitempty,email,max=200"`
	Phone         string `json:"phone" binding:"max=50"`
	Address       string `json:"address" binding:"max=500"`
}

// UpdateSupplierRequest replaces a supplier's editable fields
type UpdateSupplierRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=100"`
	ContactPerson string `json:"contact_person" binding:"max=100"`
	Email         string `json:"email" binding:"omitempty,email,max=200"`
	Phone         string `json:"phone" binding:"max=50"`
	Address       string `json:"address" binding:"max=500"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToSupplierResponse converts a domain supplier to its API representation
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		Active:        s.Active,
		CreatedAt:     s.CreatedAt,
	}
}
