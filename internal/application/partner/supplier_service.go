package partner

import (
	"context"

	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/shared"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	suppliers partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(suppliers partner.SupplierRepository) *SupplierService {
	return &SupplierService{suppliers: suppliers}
}

// Create creates a new supplier owned by the principal
func (s *SupplierService) Create(ctx context.Context, principal identity.Principal, req CreateSupplierRequest) (*SupplierResponse, error) {
	if principal.IsAnonymous() {
		return nil, shared.ErrUnauthenticated
	}

	supplier, err := partner.NewSupplier(req.Name, req.ContactPerson, req.Email, req.Phone, req.Address, principal.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, id uint) (*SupplierResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves all active suppliers, newest first
func (s *SupplierService) List(ctx context.Context) ([]SupplierResponse, error) {
	suppliers, err := s.suppliers.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]SupplierResponse, len(suppliers))
	for i, supplier := range suppliers {
		responses[i] = ToSupplierResponse(supplier)
	}
	return responses, nil
}

// Update replaces a supplier's editable fields
func (s *SupplierService) Update(ctx context.Context, id uint, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := supplier.Update(req.Name, req.ContactPerson, req.Email, req.Phone, req.Address); err != nil {
		return nil, err
	}

	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Delete soft-deletes a supplier. The row is kept and hidden from
// listings.
func (s *SupplierService) Delete(ctx context.Context, id uint) error {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return err
	}

	supplier.Deactivate()
	return s.suppliers.Save(ctx, supplier)
}
