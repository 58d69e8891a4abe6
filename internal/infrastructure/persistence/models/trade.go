package models

import (
	"time"

	"github.com/ims/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order aggregate root.
// Items cascade on delete.
type OrderModel struct {
	ID          uint             `gorm:"primaryKey;autoIncrement"`
	CustomerID  uint             `gorm:"not null;index"`
	OrderDate   time.Time        `gorm:"not null;index"`
	Status      string           `gorm:"type:varchar(50);not null;default:'Pending';index"`
	TotalAmount *decimal.Decimal `gorm:"type:decimal(18,2)"`
	CreatedBy   uint             `gorm:"index"`
	Items       []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the persistence model for a single order line.
// The line total is computed from quantity and unit price, never stored.
type OrderItemModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	OrderID     uint            `gorm:"not null;index"`
	InventoryID uint            `gorm:"not null;index"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *trade.Order {
	order := &trade.Order{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		OrderDate:   m.OrderDate,
		Status:      m.Status,
		TotalAmount: m.TotalAmount,
		CreatedBy:   m.CreatedBy,
	}
	for _, item := range m.Items {
		order.Items = append(order.Items, trade.OrderItem{
			ID:          item.ID,
			OrderID:     item.OrderID,
			InventoryID: item.InventoryID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return order
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.ID = o.ID
	m.CustomerID = o.CustomerID
	m.OrderDate = o.OrderDate
	m.Status = o.Status
	m.TotalAmount = o.TotalAmount
	m.CreatedBy = o.CreatedBy
	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		m.Items[i] = OrderItemModel{
			ID:          item.ID,
			OrderID:     item.OrderID,
			InventoryID: item.InventoryID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// SaleModel is the persistence model for a sale record.
type SaleModel struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	OrderID    uint            `gorm:"not null;index"`
	ProductID  uint            `gorm:"not null;index"`
	Quantity   int             `gorm:"not null"`
	SaleAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt  time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// ToDomain converts the persistence model to a domain Sale.
func (m *SaleModel) ToDomain() *trade.Sale {
	return &trade.Sale{
		ID:         m.ID,
		OrderID:    m.OrderID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		SaleAmount: m.SaleAmount,
		CreatedAt:  m.CreatedAt,
	}
}

// SaleModelFromDomain creates a new persistence model from a domain Sale.
func SaleModelFromDomain(s *trade.Sale) *SaleModel {
	return &SaleModel{
		ID:         s.ID,
		OrderID:    s.OrderID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		SaleAmount: s.SaleAmount,
		CreatedAt:  s.CreatedAt,
	}
}
