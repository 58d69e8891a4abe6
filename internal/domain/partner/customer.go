package partner

import (
	"strings"

	"github.com/ims/backend/internal/domain/shared"
)

// Customer represents a buyer that orders can be placed for
type Customer struct {
	shared.BaseEntity
	Name      string
	Email     string
	Phone     string
	Address   string
	Active    bool
	CreatedBy uint
}

// NewCustomer creates a new active customer
func NewCustomer(name, email, phone, address string, createdBy uint) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Customer name is required")
	}
	if len(name) > 100 {
		return nil, shared.NewValidationError("Customer name must be at most 100 characters")
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      strings.TrimSpace(email),
		Phone:      strings.TrimSpace(phone),
		Address:    strings.TrimSpace(address),
		Active:     true,
		CreatedBy:  createdBy,
	}, nil
}

// Update replaces the customer's editable fields
func (c *Customer) Update(name, email, phone, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Customer name is required")
	}
	if len(name) > 100 {
		return shared.NewValidationError("Customer name must be at most 100 characters")
	}

	c.Name = name
	c.Email = strings.TrimSpace(email)
	c.Phone = strings.TrimSpace(phone)
	c.Address = strings.TrimSpace(address)
	return nil
}

// Deactivate hides the customer from active listings
func (c *Customer) Deactivate() {
	c.Active = false
}
