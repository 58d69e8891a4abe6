package partner

import (
	"context"

	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/shared"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customers partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customers partner.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// Create creates a new customer owned by the principal
func (s *CustomerService) Create(ctx context.Context, principal identity.Principal, req CreateCustomerRequest) (*CustomerResponse, error) {
	if principal.IsAnonymous() {
		return nil, shared.ErrUnauthenticated
	}

	customer, err := partner.NewCustomer(req.Name, req.Email, req.Phone, req.Address, principal.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uint) (*CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves all active customers, newest first
func (s *CustomerService) List(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.customers.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = ToCustomerResponse(customer)
	}
	return responses, nil
}

// Update replaces a customer's editable fields
func (s *CustomerService) Update(ctx context.Context, id uint, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := customer.Update(req.Name, req.Email, req.Phone, req.Address); err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete removes a customer permanently
func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	return s.customers.Delete(ctx, id)
}
