package partner

import (
	"strings"

	"github.com/ims/backend/internal/domain/shared"
)

// Supplier represents a vendor inventory is sourced from.
// Suppliers are never hard-deleted; deactivation removes them from listings.
type Supplier struct {
	shared.BaseEntity
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Active        bool
	CreatedBy     uint
}

// NewSupplier creates a new active supplier
func NewSupplier(name, contactPerson, email, phone, address string, createdBy uint) (*Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Supplier name is required")
	}
	if len(name) > 100 {
		return nil, shared.NewValidationError("Supplier name must be at most 100 characters")
	}

	return &Supplier{
		BaseEntity:    shared.NewBaseEntity(),
		Name:          name,
		ContactPerson: strings.TrimSpace(contactPerson),
		Email:         strings.TrimSpace(email),
		Phone:         strings.TrimSpace(phone),
		Address:       strings.TrimSpace(address),
		Active:        true,
		CreatedBy:     createdBy,
	}, nil
}

// Update replaces the supplier's editable fields
func (s *Supplier) Update(name, contactPerson, email, phone, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Supplier name is required")
	}
	if len(name) > 100 {
		return shared.NewValidationError("Supplier name must be at most 100 characters")
	}

	s.Name = name
	s.ContactPerson = strings.TrimSpace(contactPerson)
	s.Email = strings.TrimSpace(email)
	s.Phone = strings.TrimSpace(phone)
	s.Address = strings.TrimSpace(address)
	return nil
}

// Deactivate soft-deletes the supplier
func (s *Supplier) Deactivate() {
	s.Active = false
}
