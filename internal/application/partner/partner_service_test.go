package partner

import (
	"context"
	"testing"

	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCustomerRepository struct {
	mock.Mock
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id uint) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*partner.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepository) FindActive(ctx context.Context) ([]*partner.Customer, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]*partner.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCustomerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockSupplierRepository struct {
	mock.Mock
}

func (m *mockSupplierRepository) FindByID(ctx context.Context, id uint) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*partner.Supplier), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSupplierRepository) FindActive(ctx context.Context) ([]*partner.Supplier, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.([]*partner.Supplier), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *mockSupplierRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var testPrincipal = identity.Principal{UserID: 1, Username: "jane"}

func TestCustomerService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps the creator", func(t *testing.T) {
		repo := new(mockCustomerRepository)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(c *partner.Customer) bool {
			return c.CreatedBy == 1 && c.Active
		})).Return(nil)
		svc := NewCustomerService(repo)

		customer, err := svc.Create(ctx, testPrincipal, CreateCustomerRequest{Name: "Acme Ltd"})
		require.NoError(t, err)
		assert.Equal(t, "Acme Ltd", customer.Name)
		repo.AssertExpectations(t)
	})

	t.Run("anonymous principal", func(t *testing.T) {
		svc := NewCustomerService(new(mockCustomerRepository))
		_, err := svc.Create(ctx, identity.Anonymous(), CreateCustomerRequest{Name: "Acme Ltd"})
		assert.ErrorIs(t, err, shared.ErrUnauthenticated)
	})

	t.Run("validation failure", func(t *testing.T) {
		svc := NewCustomerService(new(mockCustomerRepository))
		_, err := svc.Create(ctx, testPrincipal, CreateCustomerRequest{Name: "   "})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	})
}

func TestCustomerService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces fields", func(t *testing.T) {
		existing, err := partner.NewCustomer("Old Name", "", "", "", 1)
		require.NoError(t, err)
		existing.ID = 3

		repo := new(mockCustomerRepository)
		repo.On("FindByID", mock.Anything, uint(3)).Return(existing, nil)
		repo.On("Save", mock.Anything, existing).Return(nil)
		svc := NewCustomerService(repo)

		customer, err := svc.Update(ctx, 3, UpdateCustomerRequest{Name: "New Name", Phone: "555"})
		require.NoError(t, err)
		assert.Equal(t, "New Name", customer.Name)
		assert.Equal(t, "555", customer.Phone)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockCustomerRepository)
		repo.On("FindByID", mock.Anything, uint(9)).Return(nil, shared.ErrNotFound)
		svc := NewCustomerService(repo)

		_, err := svc.Update(ctx, 9, UpdateCustomerRequest{Name: "X"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestSupplierService_DeleteIsSoft(t *testing.T) {
	ctx := context.Background()

	supplier, err := partner.NewSupplier("Parts Co", "", "", "", "", 1)
	require.NoError(t, err)
	supplier.ID = 5

	repo := new(mockSupplierRepository)
	repo.On("FindByID", mock.Anything, uint(5)).Return(supplier, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(s *partner.Supplier) bool {
		return !s.Active
	})).Return(nil)
	svc := NewSupplierService(repo)

	require.NoError(t, svc.Delete(ctx, 5))
	repo.AssertExpectations(t)
}

func TestSupplierService_Create(t *testing.T) {
	ctx := context.Background()

	repo := new(mockSupplierRepository)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	svc := NewSupplierService(repo)

	supplier, err := svc.Create(ctx, testPrincipal, CreateSupplierRequest{
		Name:          "Parts Co",
		ContactPerson: "Sam Smith",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sam Smith", supplier.ContactPerson)
	assert.True(t, supplier.Active)
}
