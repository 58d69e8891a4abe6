package inventory

import (
	"context"

	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/inventory"
	"github.com/ims/backend/internal/domain/shared"
)

// ItemService handles inventory item business operations
type ItemService struct {
	items inventory.ItemRepository
}

// NewItemService creates a new ItemService
func NewItemService(items inventory.ItemRepository) *ItemService {
	return &ItemService{items: items}
}

// Create creates a new inventory item owned by the principal
func (s *ItemService) Create(ctx context.Context, principal identity.Principal, req CreateItemRequest) (*ItemResponse, error) {
	if principal.IsAnonymous() {
		return nil, shared.ErrUnauthenticated
	}

	item, err := inventory.NewItem(req.Name, req.SKU, req.Category, req.Quantity, req.ReorderLevel, req.Price, principal.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// GetByID retrieves an inventory item by ID
func (s *ItemService) GetByID(ctx context.Context, id uint) (*ItemResponse, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// List retrieves all inventory items, newest first
func (s *ItemService) List(ctx context.Context) ([]ItemResponse, error) {
	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToItemResponse(item)
	}
	return responses, nil
}

// Update replaces an item's editable fields, quantity included
func (s *ItemService) Update(ctx context.Context, id uint, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.Update(req.Name, req.SKU, req.Category, req.Quantity, req.ReorderLevel, req.Price); err != nil {
		return nil, err
	}

	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// Delete removes an inventory item permanently
func (s *ItemService) Delete(ctx context.Context, id uint) error {
	return s.items.Delete(ctx, id)
}
