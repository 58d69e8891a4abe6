package models

import (
	"time"

	"github.com/ims/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// InventoryItemModel is the persistence model for the inventory Item.
// SKU is a business key, not a database unique constraint.
type InventoryItemModel struct {
	BaseModel
	Name         string           `gorm:"type:varchar(100);not null"`
	SKU          string           `gorm:"type:varchar(50);not null;index"`
	Category     string           `gorm:"type:varchar(100)"`
	Quantity     int              `gorm:"not null;default:0"`
	ReorderLevel int              `gorm:"not null;default:10"`
	Price        *decimal.Decimal `gorm:"type:decimal(18,2)"`
	UpdatedAt    *time.Time
	CreatedBy    uint `gorm:"index"`
}

// TableName returns the table name for GORM
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}

// ToDomain converts the persistence model to a domain Item entity.
func (m *InventoryItemModel) ToDomain() *inventory.Item {
	return &inventory.Item{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		SKU:          m.SKU,
		Category:     m.Category,
		Quantity:     m.Quantity,
		ReorderLevel: m.ReorderLevel,
		Price:        m.Price,
		UpdatedAt:    m.UpdatedAt,
		CreatedBy:    m.CreatedBy,
	}
}

// FromDomain populates the persistence model from a domain Item entity.
func (m *InventoryItemModel) FromDomain(i *inventory.Item) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.Name = i.Name
	m.SKU = i.SKU
	m.Category = i.Category
	m.Quantity = i.Quantity
	m.ReorderLevel = i.ReorderLevel
	m.Price = i.Price
	m.UpdatedAt = i.UpdatedAt
	m.CreatedBy = i.CreatedBy
}

// InventoryItemModelFromDomain creates a new persistence model from a domain Item entity.
func InventoryItemModelFromDomain(i *inventory.Item) *InventoryItemModel {
	m := &InventoryItemModel{}
	m.FromDomain(i)
	return m
}
